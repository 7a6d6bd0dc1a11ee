package crossing

import "time"

const ms = time.Millisecond

// Table holds every hold duration used by the step programs and the input
// monitor. The pedestrian programs stay in phase only because they read the
// same literals from here.
type Table struct {
	Indicator IndicatorTiming
	Audio     AudioTiming
	Matrix    MatrixTiming
	Display   DisplayTiming
	Night     NightTiming
	Monitor   MonitorTiming
}

type IndicatorTiming struct {
	Green, Yellow, Red, Settle time.Duration
}

type AudioTiming struct {
	GreenTone, GreenSilence time.Duration
	Pulse                   time.Duration // each half of a yellow chirp
	Pulses                  int
	RedTone, RedSilence     time.Duration
	Settle                  time.Duration
}

type MatrixTiming struct {
	Red, Green, Yellow, Settle time.Duration
}

// DisplayTiming has no settle step; the display cycle is 100 ms shorter than
// the others and slides against them.
type DisplayTiming struct {
	Green, Yellow, Red time.Duration
}

type NightTiming struct {
	On, Off time.Duration
}

type MonitorTiming struct {
	Poll     time.Duration
	Debounce time.Duration
}

// Timing is the table the controller runs with.
var Timing = Table{
	Indicator: IndicatorTiming{Green: 3000 * ms, Yellow: 1000 * ms, Red: 2000 * ms, Settle: 100 * ms},
	Audio: AudioTiming{
		GreenTone: 1000 * ms, GreenSilence: 2000 * ms,
		Pulse: 100 * ms, Pulses: 5,
		RedTone: 500 * ms, RedSilence: 1500 * ms,
		Settle: 100 * ms,
	},
	Matrix:  MatrixTiming{Red: 4000 * ms, Green: 1500 * ms, Yellow: 500 * ms, Settle: 100 * ms},
	Display: DisplayTiming{Green: 3000 * ms, Yellow: 1000 * ms, Red: 2000 * ms},
	Night:   NightTiming{On: 1500 * ms, Off: 500 * ms},
	Monitor: MonitorTiming{Poll: 50 * ms, Debounce: 100 * ms},
}
