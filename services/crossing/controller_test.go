//go:build !rp2040 && !rp2350

package crossing_test

import (
	"context"
	"image/color"
	"testing"
	"time"

	"pedsignal-go/bus"
	"pedsignal-go/errcode"
	"pedsignal-go/services/config"
	"pedsignal-go/services/crossing"
	"pedsignal-go/services/hal/hosthal"
	"pedsignal-go/types"

	"github.com/jonboulle/clockwork"
)

func nextMode(t *testing.T, sub *bus.Subscription) types.ModeState {
	t.Helper()
	select {
	case m := <-sub.Channel():
		return m.Payload.(types.ModeState)
	case <-time.After(2 * time.Second):
		t.Fatal("no mode published")
	}
	return types.ModeState{}
}

func TestController_BootAndButtonPress(t *testing.T) {
	board, btn, rig, err := hosthal.Open(config.BitDogLab)
	if err != nil {
		t.Fatalf("hosthal.Open: %v", err)
	}
	b := bus.NewBus(32)
	conn := b.NewConnection("crossing")
	modes := conn.Subscribe(bus.T("crossing", "mode"))

	clk := clockwork.NewFakeClock()
	ctrl := crossing.New(crossing.Config{Conn: conn, Signals: board, Button: btn, Clock: clk})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx) }()

	if st := nextMode(t, modes); st.Mode != types.ModeNormal || st.Transitions != 1 {
		t.Fatalf("boot mode = %+v", st)
	}
	clk.BlockUntil(5) // four pedestrian holds and the monitor poll

	if rig.Red.Get() || !rig.Green.Get() {
		t.Fatal("pedestrian lamp not green at boot")
	}
	if !rig.BuzzerOn() {
		t.Fatal("green tone not playing at boot")
	}
	if f := rig.Pixels.Frame(); f[crossing.PixelRed] != types.ColorRed {
		t.Fatalf("matrix pixel %d = %v, want red", crossing.PixelRed, f[crossing.PixelRed])
	}

	// Scenario: hold the button past the debounce interval.
	rig.Press()
	clk.Advance(50 * time.Millisecond)
	clk.BlockUntil(5)
	clk.Advance(100 * time.Millisecond)

	if st := nextMode(t, modes); st.Mode != types.ModeNight || st.Transitions != 2 {
		t.Fatalf("mode after press = %+v", st)
	}
	for _, task := range ctrl.Tasks() {
		want := task.Set() == types.ModeNight
		if task.Runnable() != want {
			t.Fatalf("task %s runnable=%v in night mode", task.Name(), task.Runnable())
		}
	}
	if !rig.Red.Get() || !rig.Green.Get() || !rig.BuzzerOn() {
		t.Fatal("night blink not on")
	}
	for i, c := range rig.Pixels.Frame() {
		if c != (color.RGBA{}) {
			t.Fatalf("matrix pixel %d lit in night mode", i)
		}
	}
	if ctrl.Monitor().Mode() != types.ModeNight {
		t.Fatal("monitor mode not night")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if err := ctrl.Run(context.Background()); errcode.Of(err) != errcode.AlreadyStarted {
		t.Fatalf("second Run = %v, want already_started", err)
	}
}
