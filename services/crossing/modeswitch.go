package crossing

import (
	"context"
	"sync"

	"pedsignal-go/bus"
	"pedsignal-go/services/hal"
	"pedsignal-go/types"

	"github.com/jonboulle/clockwork"
)

// SwitchStats counts control operations since boot.
type SwitchStats struct {
	Transitions uint32
	Suspends    uint32
	Resumes     uint32
}

// ModeSwitch makes exactly one task set runnable. Switches are serialized;
// the outgoing set is fully parked and the outputs blanked before any task
// of the incoming set resumes.
type ModeSwitch struct {
	mu     sync.Mutex
	normal []*Task
	night  []*Task
	sig    hal.Signals
	clk    clockwork.Clock
	conn   *bus.Connection

	active    types.Mode
	activeSet bool
	stats     SwitchStats
}

// NewModeSwitch starts with no active set. conn may be nil.
func NewModeSwitch(normal, night []*Task, sig hal.Signals, clk clockwork.Clock, conn *bus.Connection) *ModeSwitch {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &ModeSwitch{normal: normal, night: night, sig: sig, clk: clk, conn: conn}
}

func (m *ModeSwitch) set(mode types.Mode) []*Task {
	if mode == types.ModeNight {
		return m.night
	}
	return m.normal
}

// SwitchTo parks the other set, blanks the outputs and resumes the set of
// mode. It is a no-op when mode is already active. On error the active mode
// is left unchanged and the error carries errcode.Stopped.
func (m *ModeSwitch) SwitchTo(ctx context.Context, mode types.Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.activeSet && m.active == mode {
		return nil
	}
	for _, t := range m.set(mode.Toggle()) {
		if err := t.Suspend(ctx); err != nil {
			return err
		}
		m.stats.Suspends++
	}
	blank(m.sig)
	for _, t := range m.set(mode) {
		if err := t.Resume(ctx); err != nil {
			return err
		}
		m.stats.Resumes++
	}
	m.active, m.activeSet = mode, true
	m.stats.Transitions++

	st := types.ModeState{Mode: mode, Transitions: m.stats.Transitions, TSms: m.clk.Now().UnixMilli()}
	if m.conn != nil {
		m.conn.Publish(m.conn.NewMessage(bus.T("crossing", "mode"), st, true))
	}
	log.Info("mode switched", "mode", mode.String(), "transitions", st.Transitions)
	return nil
}

// Active returns the running mode; ok is false before the first switch.
func (m *ModeSwitch) Active() (mode types.Mode, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active, m.activeSet
}

func (m *ModeSwitch) Stats() SwitchStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
