// Command boardtest walks every output of the board plan once per cycle so
// the wiring can be checked by eye and ear before the controller is flashed.
package main

import (
	"time"

	"pedsignal-go/services/hal"
	"pedsignal-go/types"
	"pedsignal-go/x/logx"
)

// ---------- Configuration ----------

const (
	dwell       = 700 * time.Millisecond
	beep        = 150 * time.Millisecond
	cyclesToRun = 0 // 0 = loop forever
)

var log = logx.New("boardtest")

// check drives one output into a visible state. Outputs are blanked between
// checks.
type check struct {
	name string
	do   func(s hal.Signals)
}

func checks(pixels int) []check {
	cs := []check{
		{"indicator_red", func(s hal.Signals) { s.SetIndicator(true, false) }},
		{"indicator_green", func(s hal.Signals) { s.SetIndicator(false, true) }},
		{"indicator_yellow", func(s hal.Signals) { s.SetIndicator(true, true) }},
		{"buzzer", func(s hal.Signals) { s.SetBuzzer(types.DutyOn) }},
		{"display", func(s hal.Signals) {
			s.ClearDisplay()
			s.DrawFrame()
			s.DrawText("board test", 4, 40)
			s.FlushDisplay()
		}},
	}
	// One pass over the chain, rotating colours so a swapped channel shows.
	for i := 0; i < pixels; i++ {
		c := types.ColorRed
		switch i % 3 {
		case 1:
			c = types.ColorGreen
		case 2:
			c = types.ColorYellow
		}
		cs = append(cs, check{"matrix", func(s hal.Signals) {
			s.ClearMatrix()
			s.SetMatrixPixel(i, c)
			s.FlushMatrix()
		}})
	}
	return cs
}

func idle(s hal.Signals) {
	s.SetIndicator(false, false)
	s.SetBuzzer(types.DutyOff)
	s.ClearMatrix()
	s.FlushMatrix()
	s.ClearDisplay()
	s.FlushDisplay()
}

// runCycle applies every check in turn and returns the names of the checks
// during which the driver fault counter moved.
func runCycle(s hal.Signals, faults func() uint32, cs []check, sleep func(time.Duration)) []string {
	var failed []string
	for _, c := range cs {
		before := faults()
		c.do(s)
		bad := faults() != before
		if c.name == "buzzer" {
			sleep(beep)
			s.SetBuzzer(types.DutyOff)
		}
		sleep(dwell)
		idle(s)
		if bad && (len(failed) == 0 || failed[len(failed)-1] != c.name) {
			failed = append(failed, c.name)
		}
	}
	return failed
}

// flashResult shows the verdict on the indicator: two short green blinks
// for a clean cycle, one long red blink otherwise.
func flashResult(s hal.Signals, pass bool, sleep func(time.Duration)) {
	if pass {
		for i := 0; i < 2; i++ {
			s.SetIndicator(false, true)
			sleep(120 * time.Millisecond)
			s.SetIndicator(false, false)
			sleep(200 * time.Millisecond)
		}
		return
	}
	s.SetIndicator(true, false)
	sleep(400 * time.Millisecond)
	s.SetIndicator(false, false)
	sleep(200 * time.Millisecond)
}

// run loops the checks and reports each cycle.
func run(b *hal.Board, pixels int, sleep func(time.Duration)) {
	cs := checks(pixels)
	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		failed := runCycle(b, b.Faults, cs, sleep)
		if len(failed) == 0 {
			log.Info("cycle passed", "cycle", cycle, "checks", len(cs))
		} else {
			for _, name := range failed {
				log.Warn("check failed", "cycle", cycle, "check", name)
			}
		}
		flashResult(b, len(failed) == 0, sleep)
	}
}
