// services/hal/types.go
package hal

import (
	"image/color"

	"pedsignal-go/types"

	"tinygo.org/x/drivers"
)

// Signals is the output boundary used by the crossing tasks. Calls are
// synchronous and never report errors to the caller; the Board logs and
// counts driver faults instead.
type Signals interface {
	SetIndicator(red, green bool)

	SetMatrixPixel(index int, c color.RGBA)
	ClearMatrix()
	FlushMatrix()

	SetBuzzer(d types.Duty)

	ClearDisplay()
	DrawFrame()
	DrawText(text string, x, y int16)
	FlushDisplay()
}

// ---- Peripheral handles (satisfied by machine types on RP2, fakes on host) ----

// Pin is a digital line. machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
	Get() bool
}

// PWM is one PWM slice. The RP2 machine.PWMx groups satisfy it.
type PWM interface {
	Set(channel uint8, value uint32)
	Top() uint32
}

// PixelWriter streams a whole frame to an addressable LED chain.
type PixelWriter interface {
	WriteColors(buf []color.RGBA) error
}

// Displayer is the tinygo drivers display contract (ssd1306 satisfies it).
type Displayer = drivers.Displayer
