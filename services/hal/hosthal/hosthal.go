// services/hal/hosthal/hosthal.go
//go:build !rp2040 && !rp2350

// Package hosthal provides in-memory peripherals so the controller can run on
// a development host (tests and the simulator).
package hosthal

import (
	"image/color"
	"sync"

	"pedsignal-go/services/hal"
	"pedsignal-go/types"
)

// ----------------------------- GPIO ------------------------------------------

// FakePin implements hal.Pin.
type FakePin struct {
	mu     sync.RWMutex
	number int
	level  bool
	writes int
}

func NewFakePin(number int, level bool) *FakePin { return &FakePin{number: number, level: level} }

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.writes++
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

// ----------------------------- PWM -------------------------------------------

// FakePWM implements hal.PWM with a fixed top.
type FakePWM struct {
	mu     sync.Mutex
	top    uint32
	levels map[uint8]uint32
}

func NewFakePWM(top uint32) *FakePWM {
	return &FakePWM{top: top, levels: map[uint8]uint32{}}
}

func (p *FakePWM) Set(ch uint8, v uint32) {
	p.mu.Lock()
	p.levels[ch] = v
	p.mu.Unlock()
}

func (p *FakePWM) Top() uint32 { return p.top }

func (p *FakePWM) Level(ch uint8) uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.levels[ch]
}

// ----------------------------- LED chain -------------------------------------

// FakePixels implements hal.PixelWriter and keeps the last frame written.
type FakePixels struct {
	mu     sync.Mutex
	frame  []color.RGBA
	writes int
	err    error
}

func (f *FakePixels) WriteColors(buf []color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.frame = append(f.frame[:0], buf...)
	f.writes++
	return nil
}

// FailWith makes subsequent writes fail with err (nil restores).
func (f *FakePixels) FailWith(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// Frame returns a copy of the last frame written.
func (f *FakePixels) Frame() []color.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]color.RGBA(nil), f.frame...)
}

func (f *FakePixels) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// ----------------------------- Display ---------------------------------------

// FakeDisplay implements hal.Displayer as a monochrome framebuffer. Pixels
// become visible only after Display, like the real panel.
type FakeDisplay struct {
	mu      sync.Mutex
	w, h    int16
	buf     []bool
	shown   []bool
	flushes int
	err     error
}

func NewFakeDisplay(w, h int16) *FakeDisplay {
	n := int(w) * int(h)
	return &FakeDisplay{w: w, h: h, buf: make([]bool, n), shown: make([]bool, n)}
}

func (d *FakeDisplay) Size() (int16, int16) { return d.w, d.h }

func (d *FakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.mu.Lock()
	d.buf[int(y)*int(d.w)+int(x)] = c.R|c.G|c.B != 0
	d.mu.Unlock()
}

func (d *FakeDisplay) Display() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	copy(d.shown, d.buf)
	d.flushes++
	return nil
}

func (d *FakeDisplay) FailWith(err error) {
	d.mu.Lock()
	d.err = err
	d.mu.Unlock()
}

// Lit reports whether a pixel is on in the last displayed frame.
func (d *FakeDisplay) Lit(x, y int16) bool {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown[int(y)*int(d.w)+int(x)]
}

// LitIn counts lit pixels of the displayed frame inside [x0,x1)x[y0,y1).
func (d *FakeDisplay) LitIn(x0, y0, x1, y1 int16) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for y := y0; y < y1 && y < d.h; y++ {
		for x := x0; x < x1 && x < d.w; x++ {
			if d.shown[int(y)*int(d.w)+int(x)] {
				n++
			}
		}
	}
	return n
}

func (d *FakeDisplay) Flushes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushes
}

// ----------------------------- Board -----------------------------------------

// pwmTop is the RP2 wrap for a 440 Hz buzzer at the default system clock.
const pwmTop = 59609

// Rig exposes the fakes behind an opened host board.
type Rig struct {
	Red, Green *FakePin
	ButtonPin  *FakePin
	Buzzer     *FakePWM
	Pixels     *FakePixels
	Display    *FakeDisplay

	activeLow bool
}

// Press drives the button line to its pressed level.
func (r *Rig) Press() { r.ButtonPin.Set(!r.activeLow) }

// Release returns the button line to idle.
func (r *Rig) Release() { r.ButtonPin.Set(r.activeLow) }

// BuzzerOn reports whether the buzzer channel is at a non-zero duty.
func (r *Rig) BuzzerOn() bool { return r.Buzzer.Level(0) != 0 }

// Open assembles a Board over fresh fakes for the given plan.
func Open(p types.BoardPlan) (*hal.Board, *hal.Button, *Rig, error) {
	if err := hal.ValidatePlan(p); err != nil {
		return nil, nil, nil, err
	}
	rig := &Rig{
		Red:       NewFakePin(p.IndicatorRed, false),
		Green:     NewFakePin(p.IndicatorGreen, false),
		ButtonPin: NewFakePin(p.Button, p.ButtonActiveLo), // idle on pull-up
		Buzzer:    NewFakePWM(pwmTop),
		Pixels:    &FakePixels{},
		Display:   NewFakeDisplay(p.DisplayW, p.DisplayH),
		activeLow: p.ButtonActiveLo,
	}
	b := hal.NewBoard(hal.Parts{
		Red:          rig.Red,
		Green:        rig.Green,
		Pixels:       rig.Pixels,
		PixelCount:   p.MatrixPixels,
		PWM:          rig.Buzzer,
		BuzzerDutyPc: p.BuzzerDutyPc,
		Display:      rig.Display,
	})
	return b, hal.NewButton(rig.ButtonPin, p.ButtonActiveLo), rig, nil
}
