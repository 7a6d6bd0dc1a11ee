//go:build !rp2040 && !rp2350

package main

import (
	"image/color"
	"sync"

	"pedsignal-go/services/hal"
	"pedsignal-go/types"
)

// Tracer forwards every call to the board and logs output changes. The
// indicator colour is also pushed to the lamp mirror when one is set.
type Tracer struct {
	next hal.Signals
	lamp *LampMirror

	mu         sync.Mutex
	red, green bool
	buzzer     types.Duty
	text       string
	pending    string
}

var _ hal.Signals = (*Tracer)(nil)

func NewTracer(next hal.Signals, lamp *LampMirror) *Tracer {
	return &Tracer{next: next, lamp: lamp}
}

func (t *Tracer) SetIndicator(red, green bool) {
	t.next.SetIndicator(red, green)
	t.mu.Lock()
	changed := red != t.red || green != t.green
	t.red, t.green = red, green
	t.mu.Unlock()
	if !changed {
		return
	}
	log.Info("indicator", "lamp", lampName(red, green))
	if t.lamp != nil {
		t.lamp.Offer(red, green)
	}
}

func (t *Tracer) SetMatrixPixel(index int, c color.RGBA) {
	t.next.SetMatrixPixel(index, c)
	log.Debug("matrix pixel", "index", index, "r", c.R, "g", c.G, "b", c.B)
}

func (t *Tracer) ClearMatrix() { t.next.ClearMatrix() }
func (t *Tracer) FlushMatrix() { t.next.FlushMatrix() }

func (t *Tracer) SetBuzzer(d types.Duty) {
	t.next.SetBuzzer(d)
	t.mu.Lock()
	changed := d != t.buzzer
	t.buzzer = d
	t.mu.Unlock()
	if changed {
		log.Debug("buzzer", "duty", d.String())
	}
}

func (t *Tracer) ClearDisplay() {
	t.next.ClearDisplay()
	t.mu.Lock()
	t.pending = ""
	t.mu.Unlock()
}

func (t *Tracer) DrawFrame() { t.next.DrawFrame() }

func (t *Tracer) DrawText(text string, x, y int16) {
	t.next.DrawText(text, x, y)
	t.mu.Lock()
	t.pending = text
	t.mu.Unlock()
}

func (t *Tracer) FlushDisplay() {
	t.next.FlushDisplay()
	t.mu.Lock()
	text := t.pending
	changed := text != t.text
	t.text = text
	t.mu.Unlock()
	if changed {
		log.Info("display", "text", text)
	}
}

func lampName(red, green bool) string {
	switch {
	case red && green:
		return "yellow"
	case red:
		return "red"
	case green:
		return "green"
	default:
		return "off"
	}
}
