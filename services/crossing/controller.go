// Package crossing runs the pedestrian crossing: four phase-locked cycle
// tasks for normal operation, one blink task for night mode, the mode switch
// that hands the outputs between them, and the button monitor.
package crossing

import (
	"context"
	"sync/atomic"

	"pedsignal-go/bus"
	"pedsignal-go/errcode"
	"pedsignal-go/services/hal"
	"pedsignal-go/types"
	"pedsignal-go/x/logx"

	"github.com/jonboulle/clockwork"
)

var log = logx.New("crossing")

type Config struct {
	Conn    *bus.Connection // optional, for mode and task telemetry
	Signals hal.Signals
	Button  Button
	Clock   clockwork.Clock // real clock when nil
	Timing  *Table          // Timing when nil
}

type Controller struct {
	tasks   []*Task
	sw      *ModeSwitch
	mon     *Monitor
	started atomic.Bool
}

func New(cfg Config) *Controller {
	clk := cfg.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	tm := cfg.Timing
	if tm == nil {
		tm = &Timing
	}
	task := func(name string, set types.Mode, p Program) *Task {
		return NewTask(name, set, p, cfg.Signals, clk, cfg.Conn)
	}
	normal := []*Task{
		task(NameIndicator, types.ModeNormal, IndicatorProgram(tm.Indicator)),
		task(NameAudio, types.ModeNormal, AudioProgram(tm.Audio)),
		task(NameMatrix, types.ModeNormal, MatrixProgram(tm.Matrix)),
		task(NameDisplay, types.ModeNormal, DisplayProgram(tm.Display)),
	}
	night := []*Task{task(NameNight, types.ModeNight, NightProgram(tm.Night))}

	sw := NewModeSwitch(normal, night, cfg.Signals, clk, cfg.Conn)
	return &Controller{
		tasks: append(append([]*Task(nil), normal...), night...),
		sw:    sw,
		mon:   NewMonitor(cfg.Button, sw, clk, tm.Monitor, types.ModeNormal),
	}
}

// Run starts every task parked, enters normal mode and then polls the
// button until ctx is cancelled. It returns errcode.AlreadyStarted if called
// twice.
func (c *Controller) Run(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return errcode.AlreadyStarted
	}
	for _, t := range c.tasks {
		if err := t.Start(ctx); err != nil {
			return err
		}
	}
	if err := c.sw.SwitchTo(ctx, types.ModeNormal); err != nil {
		return err
	}
	log.Info("controller started", "tasks", len(c.tasks))
	return c.mon.Run(ctx)
}

func (c *Controller) Tasks() []*Task      { return c.tasks }
func (c *Controller) Switch() *ModeSwitch { return c.sw }
func (c *Controller) Monitor() *Monitor   { return c.mon }
