package crossing

import (
	"image/color"
	"time"

	"pedsignal-go/services/hal"
	"pedsignal-go/types"
)

// Step is one entry of a task program: apply the outputs, then hold.
// Do must only write outputs; it never blocks or reads the mode.
type Step struct {
	Phase types.Phase
	Hold  time.Duration
	Do    func(hal.Signals)
}

// Program is a cyclic list of steps.
type Program []Step

// Period is the length of one full cycle.
func (p Program) Period() time.Duration {
	var d time.Duration
	for _, s := range p {
		d += s.Hold
	}
	return d
}

// Matrix pictogram pixels (5x5 serpentine chain).
const (
	PixelRed    = 17
	PixelGreen  = 7
	PixelYellow = 12
)

// Display text and placement. y is the text baseline.
const (
	TextGreen  = "Crossing allowed"
	TextYellow = "Caution"
	TextRed    = "Stop"

	textBaseline int16 = 40
	textXWide    int16 = 4
	textXNarrow  int16 = 30
)

// Task names, also used in bus topics.
const (
	NameIndicator = "indicator"
	NameAudio     = "audio"
	NameMatrix    = "matrix"
	NameDisplay   = "display"
	NameNight     = "night"
)

func indicator(red, green bool) func(hal.Signals) {
	return func(s hal.Signals) { s.SetIndicator(red, green) }
}

func buzzer(d types.Duty) func(hal.Signals) {
	return func(s hal.Signals) { s.SetBuzzer(d) }
}

func pixel(index int, c color.RGBA) func(hal.Signals) {
	return func(s hal.Signals) {
		s.ClearMatrix()
		if index >= 0 {
			s.SetMatrixPixel(index, c)
		}
		s.FlushMatrix()
	}
}

func screen(text string, x int16) func(hal.Signals) {
	return func(s hal.Signals) {
		s.ClearDisplay()
		s.DrawFrame()
		s.DrawText(text, x, textBaseline)
		s.FlushDisplay()
	}
}

// IndicatorProgram drives the red/green pedestrian lamp. Yellow is both on.
func IndicatorProgram(t IndicatorTiming) Program {
	return Program{
		{types.PhaseGreen, t.Green, indicator(false, true)},
		{types.PhaseYellow, t.Yellow, indicator(true, true)},
		{types.PhaseRed, t.Red, indicator(true, false)},
		{types.PhaseSettle, t.Settle, indicator(false, false)},
	}
}

// AudioProgram is the accessibility cadence: long tone on green, fast
// chirps on yellow, short tone on red.
func AudioProgram(t AudioTiming) Program {
	p := Program{
		{types.PhaseGreen, t.GreenTone, buzzer(types.DutyOn)},
		{types.PhaseGreen, t.GreenSilence, buzzer(types.DutyOff)},
	}
	for i := 0; i < t.Pulses; i++ {
		p = append(p,
			Step{types.PhaseYellow, t.Pulse, buzzer(types.DutyOn)},
			Step{types.PhaseYellow, t.Pulse, buzzer(types.DutyOff)},
		)
	}
	return append(p,
		Step{types.PhaseRed, t.RedTone, buzzer(types.DutyOn)},
		Step{types.PhaseRed, t.RedSilence, buzzer(types.DutyOff)},
		Step{types.PhaseSettle, t.Settle, buzzer(types.DutyOff)},
	)
}

// MatrixProgram shows one pictogram pixel at a time. It runs red first.
func MatrixProgram(t MatrixTiming) Program {
	return Program{
		{types.PhaseRed, t.Red, pixel(PixelRed, types.ColorRed)},
		{types.PhaseGreen, t.Green, pixel(PixelGreen, types.ColorGreen)},
		{types.PhaseYellow, t.Yellow, pixel(PixelYellow, types.ColorYellow)},
		{types.PhaseSettle, t.Settle, pixel(-1, types.ColorOff)},
	}
}

// DisplayProgram redraws the framed status text each step.
func DisplayProgram(t DisplayTiming) Program {
	return Program{
		{types.PhaseGreen, t.Green, screen(TextGreen, textXWide)},
		{types.PhaseYellow, t.Yellow, screen(TextYellow, textXNarrow)},
		{types.PhaseRed, t.Red, screen(TextRed, textXNarrow)},
	}
}

// NightProgram blinks yellow with a chirp and keeps the other outputs dark.
func NightProgram(t NightTiming) Program {
	return Program{
		{types.PhaseBlinkOn, t.On, func(s hal.Signals) {
			s.ClearMatrix()
			s.FlushMatrix()
			s.ClearDisplay()
			s.FlushDisplay()
			s.SetIndicator(true, true)
			s.SetBuzzer(types.DutyOn)
		}},
		{types.PhaseBlinkOff, t.Off, func(s hal.Signals) {
			s.SetIndicator(false, false)
			s.SetBuzzer(types.DutyOff)
		}},
	}
}

// blank drives every output to idle.
func blank(s hal.Signals) {
	s.SetIndicator(false, false)
	s.SetBuzzer(types.DutyOff)
	s.ClearMatrix()
	s.FlushMatrix()
	s.ClearDisplay()
	s.FlushDisplay()
}
