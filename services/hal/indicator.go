package hal

// Indicator drives the two-colour pedestrian LED. Yellow is red+green.
type Indicator struct {
	red, green Pin
}

func NewIndicator(red, green Pin) *Indicator {
	return &Indicator{red: red, green: green}
}

func (i *Indicator) Set(red, green bool) {
	i.red.Set(red)
	i.green.Set(green)
}

func (i *Indicator) State() (red, green bool) { return i.red.Get(), i.green.Get() }
