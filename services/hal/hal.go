// services/hal/hal.go
package hal

import (
	"image/color"
	"sync/atomic"

	"pedsignal-go/errcode"
	"pedsignal-go/types"
	"pedsignal-go/x/logx"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var log = logx.New("hal")

// DefaultFont fits "Crossing allowed" inside the frame of a 128 px panel.
var DefaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Parts are the opened peripherals a Board is assembled from.
type Parts struct {
	Red, Green Pin

	Pixels       PixelWriter
	PixelCount   int
	PWM          PWM
	PWMChannel   uint8
	BuzzerDutyPc uint8

	Display Displayer
	Font    tinyfont.Fonter
}

// Board is the Signal Output Driver: it implements Signals over the opened
// peripherals. Driver failures are logged once per fault edge and counted;
// they never reach the caller.
type Board struct {
	ind    *Indicator
	matrix *Matrix
	buzzer *Buzzer
	panel  *Panel

	faults      atomic.Uint32
	matrixFault atomic.Bool
	panelFault  atomic.Bool
}

var _ Signals = (*Board)(nil)

func NewBoard(p Parts) *Board {
	font := p.Font
	if font == nil {
		font = DefaultFont
	}
	return &Board{
		ind:    NewIndicator(p.Red, p.Green),
		matrix: NewMatrix(p.Pixels, p.PixelCount),
		buzzer: NewBuzzer(p.PWM, p.PWMChannel, p.BuzzerDutyPc),
		panel:  NewPanel(p.Display, font),
	}
}

func (b *Board) SetIndicator(red, green bool) { b.ind.Set(red, green) }

func (b *Board) SetMatrixPixel(index int, c color.RGBA) { b.matrix.Set(index, c) }
func (b *Board) ClearMatrix()                           { b.matrix.Clear() }
func (b *Board) FlushMatrix() {
	b.report(&b.matrixFault, errcode.MatrixIO, "matrix.flush", b.matrix.Flush())
}

func (b *Board) SetBuzzer(d types.Duty) { b.buzzer.Set(d) }

func (b *Board) ClearDisplay()                    { b.panel.Clear() }
func (b *Board) DrawFrame()                       { b.panel.Frame() }
func (b *Board) DrawText(text string, x, y int16) { b.panel.Text(text, x, y) }
func (b *Board) FlushDisplay() {
	b.report(&b.panelFault, errcode.DisplayIO, "display.flush", b.panel.Flush())
}

// Faults is the number of failed driver writes since boot.
func (b *Board) Faults() uint32 { return b.faults.Load() }

// Matrix exposes the pixel buffer for diagnostics.
func (b *Board) Matrix() *Matrix { return b.matrix }

func (b *Board) report(flag *atomic.Bool, c errcode.Code, op string, err error) {
	if err == nil {
		if flag.Swap(false) {
			log.Info("driver recovered", "op", op)
		}
		return
	}
	b.faults.Add(1)
	if !flag.Swap(true) {
		log.Warn("driver write failed", "op", op, "code", string(c), "err", err)
	}
}
