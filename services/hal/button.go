package hal

// Button is a sampled push button. With activeLow the line idles high on its
// pull-up and reads low while pressed.
type Button struct {
	pin       Pin
	activeLow bool
}

func NewButton(pin Pin, activeLow bool) *Button {
	return &Button{pin: pin, activeLow: activeLow}
}

func (b *Button) Pressed() bool {
	if b.activeLow {
		return !b.pin.Get()
	}
	return b.pin.Get()
}
