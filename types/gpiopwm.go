package types

import "image/color"

// ------------------------
// Buzzer
// ------------------------

// Duty is the logical buzzer level. The driver maps it onto the PWM top.
type Duty uint8

const (
	DutyOff Duty = iota
	DutyOn
)

func (d Duty) String() string {
	if d == DutyOn {
		return "on"
	}
	return "off"
}

// ------------------------
// Matrix colours
// ------------------------

// MatrixLevel keeps the 5x5 matrix readable without glare.
const MatrixLevel = 32

var (
	ColorOff    = color.RGBA{}
	ColorRed    = color.RGBA{R: MatrixLevel, A: 0xff}
	ColorGreen  = color.RGBA{G: MatrixLevel, A: 0xff}
	ColorYellow = color.RGBA{R: MatrixLevel, G: MatrixLevel, A: 0xff}
)
