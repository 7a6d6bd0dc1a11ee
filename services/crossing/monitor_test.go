package crossing

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"pedsignal-go/errcode"
	"pedsignal-go/types"

	"github.com/jonboulle/clockwork"
)

type fakeButton struct{ down atomic.Bool }

func (b *fakeButton) Pressed() bool { return b.down.Load() }

type fakeSwitcher struct {
	mu    sync.Mutex
	calls []types.Mode
	fail  int // number of upcoming calls that fail
}

func (s *fakeSwitcher) SwitchTo(_ context.Context, m types.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, m)
	if s.fail > 0 {
		s.fail--
		return errcode.Error
	}
	return nil
}

func (s *fakeSwitcher) failNext(n int) {
	s.mu.Lock()
	s.fail = n
	s.mu.Unlock()
}

func (s *fakeSwitcher) Calls() []types.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Mode(nil), s.calls...)
}

func startMonitor(t *testing.T) (*Monitor, *fakeButton, *fakeSwitcher, clockwork.FakeClock) {
	t.Helper()
	btn := &fakeButton{}
	sw := &fakeSwitcher{}
	clk := clockwork.NewFakeClock()
	m := NewMonitor(btn, sw, clk, Timing.Monitor, types.ModeNormal)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run: %v", err)
		}
	})
	clk.BlockUntil(1)
	return m, btn, sw, clk
}

func TestMonitor_ConfirmedPressEntersNight(t *testing.T) {
	m, btn, sw, clk := startMonitor(t)

	btn.down.Store(true)
	step(clk, 50*ms) // first read, debounce armed
	if len(sw.Calls()) != 0 {
		t.Fatal("switched before the confirming read")
	}
	step(clk, 100*ms) // confirming read

	if got := sw.Calls(); len(got) != 1 || got[0] != types.ModeNight {
		t.Fatalf("switch calls = %v, want [night]", got)
	}
	if m.Mode() != types.ModeNight {
		t.Fatalf("Mode() = %v", m.Mode())
	}
}

func TestMonitor_TransientLowIgnored(t *testing.T) {
	m, btn, sw, clk := startMonitor(t)

	btn.down.Store(true)
	step(clk, 50*ms)
	btn.down.Store(false)
	step(clk, 100*ms)
	step(clk, 50*ms)

	if got := sw.Calls(); len(got) != 0 {
		t.Fatalf("switch calls = %v, want none", got)
	}
	if m.Mode() != types.ModeNormal {
		t.Fatal("mode changed on a bounce")
	}
}

func TestMonitor_HeldButtonTogglesOnce(t *testing.T) {
	_, btn, sw, clk := startMonitor(t)

	btn.down.Store(true)
	step(clk, 50*ms)
	step(clk, 100*ms)
	for i := 0; i < 20; i++ {
		step(clk, 50*ms)
	}
	if got := sw.Calls(); len(got) != 1 {
		t.Fatalf("held button switched %d times, want 1", len(got))
	}

	btn.down.Store(false)
	step(clk, 50*ms)
	btn.down.Store(true)
	step(clk, 50*ms)
	step(clk, 100*ms)

	got := sw.Calls()
	if len(got) != 2 || got[1] != types.ModeNormal {
		t.Fatalf("switch calls = %v, want [night normal]", got)
	}
}

func TestMonitor_FailedSwitchRetriedNextPoll(t *testing.T) {
	m, btn, sw, clk := startMonitor(t)
	sw.failNext(1)

	btn.down.Store(true)
	step(clk, 50*ms)
	step(clk, 100*ms) // confirmed, switch fails
	if got := sw.Calls(); len(got) != 1 {
		t.Fatalf("switch calls = %v, want one failed attempt", got)
	}
	if m.Mode() != types.ModeNight {
		t.Fatalf("Mode() = %v, want night after the press", m.Mode())
	}

	step(clk, 50*ms) // retry on the next poll
	for i := 0; i < 5; i++ {
		step(clk, 50*ms)
	}
	got := sw.Calls()
	if len(got) != 2 || got[0] != types.ModeNight || got[1] != types.ModeNight {
		t.Fatalf("switch calls = %v, want [night night]", got)
	}
}
