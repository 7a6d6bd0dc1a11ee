package crossing

import (
	"context"
	"sync/atomic"

	"pedsignal-go/types"

	"github.com/jonboulle/clockwork"
)

// Button is a sampled input; Pressed already accounts for polarity.
type Button interface {
	Pressed() bool
}

// Switcher applies a mode. *ModeSwitch implements it.
type Switcher interface {
	SwitchTo(ctx context.Context, mode types.Mode) error
}

// Monitor polls the button on a fixed grid and owns the mode value.
//
// A press counts only if a second read after the debounce interval still
// sees it pressed. After a counted press the button must be seen released
// before another press can count, so holding it toggles once.
type Monitor struct {
	btn Button
	sw  Switcher
	clk clockwork.Clock
	tm  MonitorTiming

	mode    atomic.Uint32 // types.Mode, written only by Run
	last    types.Mode    // mode last handed to the switcher
	latched bool
}

func NewMonitor(btn Button, sw Switcher, clk clockwork.Clock, tm MonitorTiming, initial types.Mode) *Monitor {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	m := &Monitor{btn: btn, sw: sw, clk: clk, tm: tm, last: initial}
	m.mode.Store(uint32(initial))
	return m
}

// Mode is the monitor's current mode.
func (m *Monitor) Mode() types.Mode { return types.Mode(m.mode.Load()) }

// Run polls until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	next := m.clk.Now().Add(m.tm.Poll)
	tm := m.clk.NewTimer(m.tm.Poll)
	defer tm.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tm.Chan():
		}

		if !m.sample(ctx, tm) {
			return nil
		}

		if mode := m.Mode(); mode != m.last {
			if err := m.sw.SwitchTo(ctx, mode); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Error("mode switch failed", "mode", mode.String(), "err", err)
			} else {
				m.last = mode
			}
		}

		// Stay on the poll grid; skip slots missed while debouncing.
		now := m.clk.Now()
		next = next.Add(m.tm.Poll)
		for !next.After(now) {
			next = next.Add(m.tm.Poll)
		}
		resetTimer(tm, next.Sub(now))
	}
}

// sample reads the button and toggles the mode on a confirmed press. It
// returns false if ctx ended while debouncing.
func (m *Monitor) sample(ctx context.Context, tm clockwork.Timer) bool {
	if !m.btn.Pressed() {
		m.latched = false
		return true
	}
	if m.latched {
		return true
	}

	resetTimer(tm, m.tm.Debounce)
	select {
	case <-ctx.Done():
		return false
	case <-tm.Chan():
	}
	if !m.btn.Pressed() {
		log.Debug("press rejected")
		return true
	}
	m.latched = true
	mode := m.Mode().Toggle()
	m.mode.Store(uint32(mode))
	log.Info("button press", "mode", mode.String())
	return true
}
