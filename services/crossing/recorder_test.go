package crossing

import (
	"image/color"
	"sync"

	"pedsignal-go/types"
)

// outputs is a snapshot of everything a recorder has been told.
type outputs struct {
	Red, Green bool
	Buzzer     types.Duty
	Pixels     [25]color.RGBA
	Text       string
	Framed     bool
	Flushes    int
}

// recorder is an in-memory hal.Signals. Matrix and display changes become
// visible only on flush, like the real board.
type recorder struct {
	mu      sync.Mutex
	cur     outputs
	pending [25]color.RGBA
	text    string
	framed  bool
	calls   int
}

func (r *recorder) SetIndicator(red, green bool) {
	r.mu.Lock()
	r.cur.Red, r.cur.Green = red, green
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) SetMatrixPixel(i int, c color.RGBA) {
	r.mu.Lock()
	if i >= 0 && i < len(r.pending) {
		r.pending[i] = c
	}
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) ClearMatrix() {
	r.mu.Lock()
	r.pending = [25]color.RGBA{}
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) FlushMatrix() {
	r.mu.Lock()
	r.cur.Pixels = r.pending
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) SetBuzzer(d types.Duty) {
	r.mu.Lock()
	r.cur.Buzzer = d
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) ClearDisplay() {
	r.mu.Lock()
	r.text, r.framed = "", false
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) DrawFrame() {
	r.mu.Lock()
	r.framed = true
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) DrawText(text string, _, _ int16) {
	r.mu.Lock()
	r.text = text
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) FlushDisplay() {
	r.mu.Lock()
	r.cur.Text, r.cur.Framed = r.text, r.framed
	r.cur.Flushes++
	r.calls++
	r.mu.Unlock()
}

func (r *recorder) snapshot() outputs {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur
}

// writes counts every call made on the recorder.
func (r *recorder) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// lit returns the indices of non-dark pixels.
func (o outputs) lit() []int {
	var idx []int
	for i, c := range o.Pixels {
		if c != (color.RGBA{}) {
			idx = append(idx, i)
		}
	}
	return idx
}

// traceStep is the observable state while one step holds.
type traceStep struct {
	Phase types.Phase
	Hold  int64 // ms
	Out   outputs
}

// trace applies one cycle of p to a fresh recorder and captures the outputs
// held during each step.
func trace(p Program) []traceStep {
	r := &recorder{}
	out := make([]traceStep, 0, len(p))
	for _, s := range p {
		s.Do(r)
		out = append(out, traceStep{Phase: s.Phase, Hold: s.Hold.Milliseconds(), Out: r.snapshot()})
	}
	return out
}
