//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env"

	"pedsignal-go/services/config"
	"pedsignal-go/services/hal/hosthal"
)

func TestSimConfig_Env(t *testing.T) {
	t.Setenv("SIM_PRESS_AT", "2s,8500ms")
	t.Setenv("SIM_RUN_FOR", "30s")
	t.Setenv("LIFX_GROUP", "CROSSING")

	var cfg SimConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	if cfg.Board != "bitdoglab" || cfg.LogLevel != "info" || cfg.PressHold != 250*time.Millisecond {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.RunFor != 30*time.Second {
		t.Fatalf("RunFor = %v", cfg.RunFor)
	}
	if len(cfg.PressAt) != 2 || cfg.PressAt[0] != 2*time.Second || cfg.PressAt[1] != 8500*time.Millisecond {
		t.Fatalf("PressAt = %v", cfg.PressAt)
	}
	if cfg.LightGroupName != "CROSSING" || cfg.MaxBrightness != 0.65 {
		t.Fatalf("lifx config = %q %v", cfg.LightGroupName, cfg.MaxBrightness)
	}
}

func TestLampColor(t *testing.T) {
	red := lampColor(true, false, 1)
	if red.Hue != 0 || red.Saturation != 0xFFFF || red.Brightness != 0xFFFF {
		t.Fatalf("red = %+v", red)
	}
	green := lampColor(false, true, 1)
	if want := uint16(0xFFFF / 3); green.Hue < want-1 || green.Hue > want+1 {
		t.Fatalf("green hue = %d, want ~%d", green.Hue, want)
	}
	amber := lampColor(true, true, 1)
	if amber.Hue == 0 || amber.Hue >= green.Hue {
		t.Fatalf("amber hue = %d, want between red and green", amber.Hue)
	}
	if off := lampColor(false, false, 1); off.Brightness != 0 {
		t.Fatalf("off brightness = %d", off.Brightness)
	}
	if dim := lampColor(true, false, 0.5); dim.Brightness > 0x8000 {
		t.Fatalf("brightness not capped: %d", dim.Brightness)
	}
}

func TestLampMirror_OfferLatestWins(t *testing.T) {
	l := newLampMirror(LampConfig{GroupName: "x"})
	l.Offer(false, true)
	l.Offer(true, true)
	l.Offer(true, false)

	if got := <-l.updates; got != [2]bool{true, false} {
		t.Fatalf("queued = %v, want red", got)
	}
	select {
	case v := <-l.updates:
		t.Fatalf("stale update %v left in queue", v)
	default:
	}
}

func TestTracer_ForwardsAndMirrors(t *testing.T) {
	board, _, rig, err := hosthal.Open(config.BitDogLab)
	if err != nil {
		t.Fatal(err)
	}
	lamp := newLampMirror(LampConfig{})
	tr := NewTracer(board, lamp)

	tr.SetIndicator(true, false)
	if !rig.Red.Get() || rig.Green.Get() {
		t.Fatal("indicator not forwarded")
	}
	if got := <-lamp.updates; got != [2]bool{true, false} {
		t.Fatalf("lamp got %v", got)
	}

	// Unchanged state is not mirrored again.
	tr.SetIndicator(true, false)
	select {
	case v := <-lamp.updates:
		t.Fatalf("duplicate lamp update %v", v)
	default:
	}

	tr.ClearDisplay()
	tr.DrawText("Stop", 30, 40)
	tr.FlushDisplay()
	if rig.Display.Flushes() != 1 {
		t.Fatalf("display flushes = %d", rig.Display.Flushes())
	}
}

func TestReadPresses(t *testing.T) {
	_, btn, rig, err := hosthal.Open(config.BitDogLab)
	if err != nil {
		t.Fatal(err)
	}
	p := &Presser{Rig: rig, Hold: 20 * time.Millisecond}

	seen := make(chan bool, 1)
	go func() {
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			if btn.Pressed() {
				seen <- true
				return
			}
			time.Sleep(time.Millisecond)
		}
		seen <- false
	}()

	readPresses(context.Background(), strings.NewReader("\n"), p)
	if !<-seen {
		t.Fatal("button never pressed")
	}
	if btn.Pressed() {
		t.Fatal("button left pressed")
	}
}
