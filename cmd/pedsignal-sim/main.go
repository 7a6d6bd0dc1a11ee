//go:build !rp2040 && !rp2350

// Command pedsignal-sim runs the crossing controller on a development host
// against in-memory peripherals. Press Enter to press the button.
package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env"

	"pedsignal-go/bus"
	"pedsignal-go/services/config"
	"pedsignal-go/services/crossing"
	"pedsignal-go/services/hal/hosthal"
	"pedsignal-go/services/heartbeat"
	"pedsignal-go/types"
	"pedsignal-go/x/logx"
)

var log = logx.New("sim")

type SimConfig struct {
	Board     string          `env:"SIM_BOARD" envDefault:"bitdoglab"`
	LogLevel  string          `env:"SIM_LOG_LEVEL" envDefault:"info"`
	RunFor    time.Duration   `env:"SIM_RUN_FOR" envDefault:"0s"` // 0 runs until interrupted
	PressAt   []time.Duration `env:"SIM_PRESS_AT" envSeparator:","`
	PressHold time.Duration   `env:"SIM_PRESS_HOLD" envDefault:"250ms"`
	Heartbeat time.Duration   `env:"SIM_HEARTBEAT" envDefault:"5s"`

	LightGroupName string  `env:"LIFX_GROUP"` // empty disables the LIFX mirror
	MaxBrightness  float64 `env:"LIFX_MAX_BRIGHTNESS" envDefault:"0.65"`
}

func main() {
	var cfg SimConfig
	if err := env.Parse(&cfg); err != nil {
		log.Error("failed to parse environment variables", "err", err)
		os.Exit(2)
	}
	logx.SetLevel("", logx.ParseLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.RunFor > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, cfg.RunFor)
		defer stop()
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info("shutting down")
		cancel()
	}()

	if err := Run(ctx, cfg, os.Stdin); err != nil {
		log.Error("simulator stopped", "err", err)
		os.Exit(1)
	}
}

// Run wires the controller to a host board and blocks until ctx ends.
func Run(ctx context.Context, cfg SimConfig, stdin io.Reader) error {
	plan, err := config.Board(cfg.Board)
	if err != nil {
		return err
	}
	board, button, rig, err := hosthal.Open(plan)
	if err != nil {
		return err
	}

	var lamp *LampMirror
	if cfg.LightGroupName != "" {
		lamp, err = NewLampMirror(ctx, LampConfig{GroupName: cfg.LightGroupName, MaxBrightness: cfg.MaxBrightness})
		if err != nil {
			log.Warn("LIFX mirror disabled", "err", err)
			lamp = nil
		}
	}

	ctx = context.WithValue(ctx, config.CtxBoardKey, plan.Name)
	b := bus.NewBus(16)
	config.NewService().Start(ctx, b.NewConnection("config"))
	if err := heartbeat.NewService(cfg.Heartbeat).Start(ctx, b.NewConnection("heartbeat")); err != nil {
		return err
	}
	go watchBus(ctx, b.NewConnection("monitor"))

	presser := &Presser{Rig: rig, Hold: cfg.PressHold}
	for _, at := range cfg.PressAt {
		presser.After(ctx, at)
	}
	if stdin != nil {
		go readPresses(ctx, stdin, presser)
	}

	ctrl := crossing.New(crossing.Config{
		Conn:    b.NewConnection("crossing"),
		Signals: NewTracer(board, lamp),
		Button:  button,
	})
	log.Info("simulator running", "board", plan.Name, "presses", len(cfg.PressAt), "lifx", lamp != nil)
	return ctrl.Run(ctx)
}

// readPresses presses the button for every line read.
func readPresses(ctx context.Context, r io.Reader, p *Presser) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		p.Press(ctx)
	}
}

// watchBus logs mode changes and config as they appear on the bus.
func watchBus(ctx context.Context, conn *bus.Connection) {
	modes := conn.Subscribe(bus.T("crossing", "mode"))
	cfgs := conn.Subscribe(bus.T("config", "#"))
	defer conn.Disconnect()

	for {
		select {
		case <-ctx.Done():
			return
		case m := <-modes.Channel():
			if st, ok := m.Payload.(types.ModeState); ok {
				log.Info("mode", "mode", st.Mode.String(), "transitions", st.Transitions)
			}
		case m := <-cfgs.Channel():
			if p, ok := m.Payload.(types.BoardPlan); ok {
				log.Info("board plan", "topic", m.Topic.String(), "board", p.Name)
			}
		}
	}
}
