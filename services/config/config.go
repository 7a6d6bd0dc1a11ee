package config

import (
	"context"

	"pedsignal-go/bus"
	"pedsignal-go/errcode"
	"pedsignal-go/types"
	"pedsignal-go/x/logx"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxBoardKey  = "board" // context key used for the board name
)

var log = logx.New(serviceName)

// BoardLookup allows overriding how board plans are resolved.
var BoardLookup = func(name string) (types.BoardPlan, bool) {
	p, ok := boards[name]
	return p, ok
}

// Board returns the compile-time plan for a named board.
func Board(name string) (types.BoardPlan, error) {
	p, ok := BoardLookup(name)
	if !ok {
		return types.BoardPlan{}, &errcode.E{C: errcode.UnknownBoard, Op: "config.board", Msg: name}
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// publishConfig publishes the selected board plan as a retained message so
// diagnostics can see the wiring the firmware booted with.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	name, _ := ctx.Value(CtxBoardKey).(string)
	if name == "" {
		return &errcode.E{C: errcode.InvalidParams, Op: "config.publish", Msg: "missing board name in context"}
	}
	p, err := Board(name)
	if err != nil {
		return err
	}
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "board"), p, true))
	return nil
}

// Start publishes the board plan in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			log.Warn("board config not published", "err", err)
		}
	}()
}
