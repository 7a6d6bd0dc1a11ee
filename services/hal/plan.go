package hal

import (
	"pedsignal-go/errcode"
	"pedsignal-go/types"
)

// maxGPIO is the highest user GPIO on RP2 boards (GP0..GP28).
const maxGPIO = 28

// pinClaims records which role owns each GPIO while a plan is opened.
type pinClaims map[int]string

func (c pinClaims) claim(role string, pin int) error {
	if pin < 0 || pin > maxGPIO {
		return &errcode.E{C: errcode.UnknownPin, Op: "claim", Msg: role}
	}
	if owner, taken := c[pin]; taken {
		return &errcode.E{C: errcode.PinInUse, Op: "claim", Msg: role + " conflicts with " + owner}
	}
	c[pin] = role
	return nil
}

// ValidatePlan checks that every output of the plan gets its own pin and a
// known bus before any peripheral is touched.
func ValidatePlan(p types.BoardPlan) error {
	c := pinClaims{}
	for _, r := range []struct {
		role string
		pin  int
	}{
		{"indicator_red", p.IndicatorRed},
		{"indicator_green", p.IndicatorGreen},
		{"button", p.Button},
		{"matrix", p.MatrixPin},
		{"buzzer", p.BuzzerPin},
		{"display_sda", p.DisplaySDA},
		{"display_scl", p.DisplaySCL},
	} {
		if err := c.claim(r.role, r.pin); err != nil {
			return err
		}
	}
	if p.DiagUARTBaud > 0 {
		switch p.DiagUART {
		case "uart0", "uart1":
		default:
			return &errcode.E{C: errcode.UnknownBus, Op: "plan", Msg: p.DiagUART}
		}
		if err := c.claim("diag_tx", p.DiagTX); err != nil {
			return err
		}
		if err := c.claim("diag_rx", p.DiagRX); err != nil {
			return err
		}
	}
	switch p.DisplayBus {
	case "i2c0", "i2c1":
	default:
		return &errcode.E{C: errcode.UnknownBus, Op: "plan", Msg: p.DisplayBus}
	}
	if p.MatrixPixels <= 0 || p.DisplayW <= 0 || p.DisplayH <= 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "plan", Msg: "empty matrix or display"}
	}
	return nil
}
