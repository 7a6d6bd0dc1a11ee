package hal

import (
	"pedsignal-go/types"
	"pedsignal-go/x/mathx"
)

// Buzzer maps the logical on/off duty onto one PWM channel.
type Buzzer struct {
	pwm PWM
	ch  uint8
	on  uint32
	cur types.Duty
}

// NewBuzzer sets the ON level to dutyPc percent of the PWM top (30 when
// zero, at most 100).
func NewBuzzer(pwm PWM, ch uint8, dutyPc uint8) *Buzzer {
	if dutyPc == 0 {
		dutyPc = 30
	}
	dutyPc = mathx.Clamp(dutyPc, 1, 100)
	b := &Buzzer{
		pwm: pwm,
		ch:  ch,
		on:  pwm.Top() * uint32(dutyPc) / 100,
	}
	b.Set(types.DutyOff)
	return b
}

func (b *Buzzer) Set(d types.Duty) {
	b.cur = d
	if d == types.DutyOn {
		b.pwm.Set(b.ch, b.on)
		return
	}
	b.pwm.Set(b.ch, 0)
}

func (b *Buzzer) Duty() types.Duty { return b.cur }
