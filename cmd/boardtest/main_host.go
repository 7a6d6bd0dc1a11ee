//go:build !rp2040 && !rp2350

package main

import (
	"os"
	"time"

	"pedsignal-go/services/config"
	"pedsignal-go/services/hal/hosthal"
)

// On a host the sequence runs once against in-memory peripherals.
func main() {
	b, _, _, err := hosthal.Open(config.BitDogLab)
	if err != nil {
		log.Error("board open failed", "err", err)
		os.Exit(1)
	}
	failed := runCycle(b, b.Faults, checks(config.BitDogLab.MatrixPixels), func(time.Duration) {})
	log.Info("dry run complete", "failed", len(failed))
}
