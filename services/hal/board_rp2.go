// services/hal/board_rp2.go
//go:build rp2040 || rp2350

package hal

import (
	"image/color"
	"io"
	"machine"

	"pedsignal-go/errcode"
	"pedsignal-go/types"
	"pedsignal-go/x/timex"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
	"tinygo.org/x/drivers/ssd1306"
)

// pwmGroup is the method set shared by machine.PWM0..PWM7.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
}

func pwmSlice(pin int) pwmGroup {
	slices := [...]pwmGroup{
		machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
		machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
	}
	// RP2 maps GPIO n onto slice (n/2) mod 8.
	return slices[(pin/2)%len(slices)]
}

// Open configures every peripheral of the plan and returns the assembled
// Board plus the mode button. Any error here is fatal for the firmware.
func Open(p types.BoardPlan) (*Board, *Button, error) {
	if err := ValidatePlan(p); err != nil {
		return nil, nil, err
	}

	red := machine.Pin(p.IndicatorRed)
	green := machine.Pin(p.IndicatorGreen)
	for _, pin := range []machine.Pin{red, green} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}

	btn := machine.Pin(p.Button)
	if p.ButtonActiveLo {
		btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	} else {
		btn.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	}

	chain, err := openChain(machine.Pin(p.MatrixPin))
	if err != nil {
		return nil, nil, err
	}

	// Buzzer PWM.
	pwm := pwmSlice(p.BuzzerPin)
	if err := pwm.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(p.BuzzerFreqHz)}); err != nil {
		return nil, nil, errcode.Wrap(errcode.NoChannel, "buzzer.configure", err)
	}
	ch, err := pwm.Channel(machine.Pin(p.BuzzerPin))
	if err != nil {
		return nil, nil, errcode.Wrap(errcode.NoChannel, "buzzer.channel", err)
	}

	// Status display on I²C.
	i2c := machine.I2C0
	if p.DisplayBus == "i2c1" {
		i2c = machine.I2C1
	}
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: p.DisplayHz,
		SDA:       machine.Pin(p.DisplaySDA),
		SCL:       machine.Pin(p.DisplaySCL),
	}); err != nil {
		return nil, nil, errcode.Wrap(errcode.DisplayIO, "display.i2c", err)
	}
	disp := ssd1306.NewI2C(i2c)
	disp.Configure(ssd1306.Config{
		Address: p.DisplayAddr,
		Width:   p.DisplayW,
		Height:  p.DisplayH,
	})
	disp.ClearDisplay()

	b := NewBoard(Parts{
		Red:          red,
		Green:        green,
		Pixels:       chain,
		PixelCount:   p.MatrixPixels,
		PWM:          pwm,
		PWMChannel:   ch,
		BuzzerDutyPc: p.BuzzerDutyPc,
		Display:      &disp,
	})
	b.ClearMatrix()
	b.FlushMatrix()
	b.ClearDisplay()
	b.FlushDisplay()

	log.Info("board open", "board", p.Name)
	return b, NewButton(btn, p.ButtonActiveLo), nil
}

// pioChain drives the addressable LED chain from a PIO state machine.
type pioChain struct {
	ws  *piolib.WS2812B
	raw []uint32
}

// openChain claims a free state machine on PIO0, then PIO1.
func openChain(pin machine.Pin) (*pioChain, error) {
	sm, err := claimFirst("matrix.claim",
		pio.PIO0.ClaimStateMachine,
		pio.PIO1.ClaimStateMachine,
	)
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		sm.Unclaim()
		return nil, errcode.Wrap(errcode.NoChannel, "matrix.open", err)
	}
	return &pioChain{ws: ws}, nil
}

func (c *pioChain) WriteColors(buf []color.RGBA) error {
	c.raw = packGRB(c.raw, buf)
	return c.ws.WriteRaw(c.raw)
}

// OpenDiagUART configures the diagnostics UART of the plan. It returns nil
// when the plan has no diagnostics port.
func OpenDiagUART(p types.BoardPlan) io.Writer {
	if p.DiagUARTBaud == 0 {
		return nil
	}
	hw := uartx.UART0
	if p.DiagUART == "uart1" {
		hw = uartx.UART1
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: p.DiagUARTBaud,
		TX:       machine.Pin(p.DiagTX),
		RX:       machine.Pin(p.DiagRX),
	}); err != nil {
		log.Warn("diag uart not configured", "uart", p.DiagUART, "err", err)
		return nil
	}
	return hw
}
