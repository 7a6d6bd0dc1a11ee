//go:build rp2040 || rp2350

package main

import (
	"context"
	"time"

	"pedsignal-go/bus"
	"pedsignal-go/errcode"
	"pedsignal-go/services/config"
	"pedsignal-go/services/crossing"
	"pedsignal-go/services/hal"
	"pedsignal-go/services/heartbeat"
	"pedsignal-go/x/logx"
)

const boardName = "bitdoglab"

var log = logx.New("main")

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	plan, err := config.Board(boardName)
	if err != nil {
		halt(err)
	}
	if w := hal.OpenDiagUART(plan); w != nil {
		logx.SetOutput(w)
	}

	board, button, err := hal.Open(plan)
	if err != nil {
		halt(err)
	}

	ctx := context.WithValue(context.Background(), config.CtxBoardKey, boardName)
	b := bus.NewBus(4)

	config.NewService().Start(ctx, b.NewConnection("config"))
	if err := heartbeat.NewService(10*time.Second).Start(ctx, b.NewConnection("heartbeat")); err != nil {
		log.Warn("heartbeat not started", "err", err)
	}

	ctrl := crossing.New(crossing.Config{
		Conn:    b.NewConnection("crossing"),
		Signals: board,
		Button:  button,
	})
	// Never returns on the device.
	halt(ctrl.Run(ctx))
}

// halt parks the firmware after a fatal error, repeating the code so it can
// be read from a late-attached console.
func halt(err error) {
	code := errcode.Of(err)
	log.Error("halted", "code", string(code), "err", err)
	for {
		println("[main] halted:", string(code))
		time.Sleep(5 * time.Second)
	}
}
