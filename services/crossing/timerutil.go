package crossing

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// resetTimer stops, drains and re-arms a timer.
func resetTimer(t clockwork.Timer, d time.Duration) {
	stopTimer(t)
	if d < 0 {
		d = 0
	}
	t.Reset(d)
}

func stopTimer(t clockwork.Timer) {
	if !t.Stop() {
		drainTimer(t)
	}
}

func drainTimer(t clockwork.Timer) {
	select {
	case <-t.Chan():
	default:
	}
}
