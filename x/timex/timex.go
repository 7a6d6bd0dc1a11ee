// Package timex holds small time conversions shared by drivers.
package timex

// PeriodFromHz returns the period in nanoseconds for freqHz, the unit
// machine.PWMConfig expects. Zero is treated as 1 Hz.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return 1_000_000_000 / uint64(freqHz)
}
