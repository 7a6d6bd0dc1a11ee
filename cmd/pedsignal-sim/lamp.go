//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pdf/golifx"
	"github.com/pdf/golifx/common"
	"github.com/pdf/golifx/protocol"

	"pedsignal-go/x/mathx"
)

type LampConfig struct {
	GroupName     string
	MaxBrightness float64
}

// LampMirror repeats the pedestrian indicator on a LIFX light group. Updates
// are latest-wins so a slow network never holds up the crossing tasks.
type LampMirror struct {
	config  LampConfig
	client  *golifx.Client
	updates chan [2]bool

	groupMu sync.RWMutex
	group   common.Group
}

func NewLampMirror(ctx context.Context, config LampConfig) (*LampMirror, error) {
	client, err := golifx.NewClient(&protocol.V2{})
	if err != nil {
		return nil, err
	}
	l := newLampMirror(config)
	l.client = client
	go l.discoverLoop(ctx)
	go l.applyLoop(ctx)
	return l, nil
}

func newLampMirror(config LampConfig) *LampMirror {
	if config.MaxBrightness <= 0 || config.MaxBrightness > 1 {
		config.MaxBrightness = 1
	}
	return &LampMirror{config: config, updates: make(chan [2]bool, 1)}
}

// Offer queues a lamp state, replacing any state not yet applied.
func (l *LampMirror) Offer(red, green bool) {
	v := [2]bool{red, green}
	for {
		select {
		case l.updates <- v:
			return
		default:
		}
		select {
		case <-l.updates:
		default:
		}
	}
}

func (l *LampMirror) discoverLoop(ctx context.Context) {
	discoveryInterval := 15 * time.Second
	l.client.SetDiscoveryInterval(discoveryInterval)
	defer l.client.Close()

	ticker := time.NewTicker(discoveryInterval)
	defer ticker.Stop()
	for {
		l.discover()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (l *LampMirror) discover() {
	g, err := l.client.GetGroupByLabel(l.config.GroupName)
	if err != nil {
		log.Warn("LIFX group not found", "group", l.config.GroupName, "err", err)
		return
	}
	l.groupMu.Lock()
	l.group = g
	l.groupMu.Unlock()
	log.Info("LIFX group found", "group", g.GetLabel())
}

func (l *LampMirror) applyLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case v := <-l.updates:
			l.groupMu.RLock()
			g := l.group
			l.groupMu.RUnlock()
			if g == nil {
				continue
			}
			if err := g.SetColor(lampColor(v[0], v[1], l.config.MaxBrightness), 0); err != nil {
				log.Warn("failed to set LIFX group colour", "err", err)
			}
		}
	}
}

// lampColor maps the indicator lines onto a LIFX colour. Both lines on is
// yellow, both off is dark.
func lampColor(red, green bool, maxBrightness float64) common.Color {
	var r, g uint8
	if red {
		r = 0xff
	}
	if green {
		g = 0xff
	}
	if red && green {
		g = 0xb0 // amber
	}
	hue, saturation, brightness := rgbToHsb(r, g, 0)
	brightness = uint16(mathx.Clamp(float64(brightness), 0, maxBrightness*0xFFFF))
	return common.Color{
		Hue:        hue,
		Saturation: saturation,
		Brightness: brightness,
		Kelvin:     3500,
	}
}

func rgbToHsb(r, g, b uint8) (uint16, uint16, uint16) {
	red := float64(r) / 255.0
	green := float64(g) / 255.0
	blue := float64(b) / 255.0

	max := math.Max(red, math.Max(green, blue))
	min := math.Min(red, math.Min(green, blue))
	delta := max - min

	var h, s float64
	v := max

	if delta != 0 {
		s = delta / max

		deltaR := (((max - red) / 6) + (delta / 2)) / delta
		deltaG := (((max - green) / 6) + (delta / 2)) / delta
		deltaB := (((max - blue) / 6) + (delta / 2)) / delta

		switch max {
		case red:
			h = deltaB - deltaG
		case green:
			h = (1.0 / 3.0) + deltaR - deltaB
		default:
			h = (2.0 / 3.0) + deltaG - deltaR
		}
		if h < 0 {
			h += 1
		}
		if h > 1 {
			h -= 1
		}
	}

	return uint16(math.Round(h * 0xFFFF)), uint16(math.Round(s * 0xFFFF)), uint16(math.Round(v * 0xFFFF))
}
