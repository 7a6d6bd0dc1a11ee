//go:build rp2040 || rp2350

package main

import (
	"time"

	"pedsignal-go/services/config"
	"pedsignal-go/services/hal"
	"pedsignal-go/x/logx"
)

func main() {
	time.Sleep(2 * time.Second)

	plan, err := config.Board("bitdoglab")
	if err != nil {
		fail(err)
	}
	if w := hal.OpenDiagUART(plan); w != nil {
		logx.SetOutput(w)
	}
	b, _, err := hal.Open(plan)
	if err != nil {
		fail(err)
	}
	run(b, plan.MatrixPixels, time.Sleep)
}

func fail(err error) {
	for {
		log.Error("board open failed", "err", err)
		time.Sleep(5 * time.Second)
	}
}
