//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"sync"
	"time"

	"pedsignal-go/services/hal/hosthal"
)

// Presser drives the host button line like a finger would: down for Hold,
// then up. Overlapping presses merge into one.
type Presser struct {
	Rig  *hosthal.Rig
	Hold time.Duration

	mu   sync.Mutex
	down bool
}

// Press holds the button for Hold and returns once it is released.
func (p *Presser) Press(ctx context.Context) {
	p.mu.Lock()
	if p.down {
		p.mu.Unlock()
		return
	}
	p.down = true
	p.Rig.Press()
	p.mu.Unlock()

	select {
	case <-ctx.Done():
	case <-time.After(p.Hold):
	}

	p.mu.Lock()
	p.Rig.Release()
	p.down = false
	p.mu.Unlock()
	log.Debug("button pressed", "hold", p.Hold)
}

// After schedules a press d after now.
func (p *Presser) After(ctx context.Context, d time.Duration) {
	go func() {
		select {
		case <-ctx.Done():
		case <-time.After(d):
			p.Press(ctx)
		}
	}()
}
