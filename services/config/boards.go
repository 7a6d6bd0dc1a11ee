package config

import "pedsignal-go/types"

// -----------------------------------------------------------------------------
// Board plans
//
// Wiring is fixed at build time; there is no runtime or environment
// configuration on the device.
// -----------------------------------------------------------------------------

// BitDogLab is the RP2040 teaching board the controller was built for:
// RGB LED on GP11/12/13 (blue unused), button A on GP5, 5x5 WS2812 matrix on
// GP7, buzzer A on GP21, an SSD1306 OLED on I²C1 (GP14/GP15) and the
// UART0 header (GP0/GP1) for diagnostics.
var BitDogLab = types.BoardPlan{
	Name: "bitdoglab",

	IndicatorRed:   13,
	IndicatorGreen: 11,
	Button:         5,
	ButtonActiveLo: true,

	MatrixPin:    7,
	MatrixPixels: 25,

	BuzzerPin:    21,
	BuzzerFreqHz: 440,
	BuzzerDutyPc: 30,

	DisplayBus:  "i2c1",
	DisplaySDA:  14,
	DisplaySCL:  15,
	DisplayHz:   400_000,
	DisplayAddr: 0x3C,
	DisplayW:    128,
	DisplayH:    64,

	DiagUART:     "uart0",
	DiagTX:       0,
	DiagRX:       1,
	DiagUARTBaud: 115_200,
}

var boards = map[string]types.BoardPlan{
	BitDogLab.Name: BitDogLab,
}
