package hal

import (
	"image/color"

	"pedsignal-go/x/mathx"

	"tinygo.org/x/tinyfont"
)

var (
	ink   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	paper = color.RGBA{}
)

// frameInset is where the border sits; text is kept inside it.
const frameInset = 3

// Panel renders the status text on a monochrome display. Drawing only changes
// the driver's buffer; Flush pushes it to the glass.
type Panel struct {
	dev  Displayer
	font tinyfont.Fonter
	w, h int16
}

func NewPanel(dev Displayer, font tinyfont.Fonter) *Panel {
	w, h := dev.Size()
	return &Panel{dev: dev, font: font, w: w, h: h}
}

func (p *Panel) Clear() { p.fill(0, 0, p.w, p.h, paper) }

// Frame draws a one pixel border inset from the edges.
func (p *Panel) Frame() {
	x0, y0 := int16(frameInset), int16(frameInset)
	x1, y1 := p.w-frameInset-1, p.h-frameInset-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0; x <= x1; x++ {
		p.dev.SetPixel(x, y0, ink)
		p.dev.SetPixel(x, y1, ink)
	}
	for y := y0; y <= y1; y++ {
		p.dev.SetPixel(x0, y, ink)
		p.dev.SetPixel(x1, y, ink)
	}
}

// Text erases the text band around baseline y inside the frame, then writes
// s starting at x. An empty s only erases.
func (p *Panel) Text(s string, x, y int16) {
	adv := int16(p.font.GetYAdvance())
	top := mathx.Clamp(y-adv+1, frameInset+1, p.h-frameInset-1)
	bottom := mathx.Clamp(y+adv/4+1, frameInset+1, p.h-frameInset-1)
	p.fill(frameInset+1, top, p.w-frameInset-1, bottom, paper)
	if s != "" {
		tinyfont.WriteLine(p.dev, p.font, x, y, s, ink)
	}
}

func (p *Panel) Flush() error { return p.dev.Display() }

// fill paints the half-open rectangle [x0,x1)x[y0,y1).
func (p *Panel) fill(x0, y0, x1, y1 int16, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.dev.SetPixel(x, y, c)
		}
	}
}
