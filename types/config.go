package types

// BoardPlan is the compile-time wiring of one board. Pins use RP2 GP numbering.
type BoardPlan struct {
	Name string `json:"name"`

	IndicatorRed   int  `json:"indicator_red"`
	IndicatorGreen int  `json:"indicator_green"`
	Button         int  `json:"button"`
	ButtonActiveLo bool `json:"button_active_low"`

	MatrixPin    int `json:"matrix_pin"`
	MatrixPixels int `json:"matrix_pixels"`

	BuzzerPin    int    `json:"buzzer_pin"`
	BuzzerFreqHz uint32 `json:"buzzer_freq_hz"`
	BuzzerDutyPc uint8  `json:"buzzer_duty_pc"` // ON duty in percent of the PWM top

	DisplayBus  string `json:"display_bus"` // "i2c0" or "i2c1"
	DisplaySDA  int    `json:"display_sda"`
	DisplaySCL  int    `json:"display_scl"`
	DisplayHz   uint32 `json:"display_hz"`
	DisplayAddr uint16 `json:"display_addr"`
	DisplayW    int16  `json:"display_w"`
	DisplayH    int16  `json:"display_h"`

	DiagUART     string `json:"diag_uart"` // "uart0" or "uart1"
	DiagTX       int    `json:"diag_tx"`
	DiagRX       int    `json:"diag_rx"`
	DiagUARTBaud uint32 `json:"diag_uart_baud"` // 0 disables the UART log mirror
}
