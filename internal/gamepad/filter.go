package gamepad

// Filter snaps small axis readings to zero and large ones to full scale.
type Filter struct {
	Deadzone float64 // |v| below this reads as 0
	Maximize float64 // |v| above this reads as +-1
}

// DefaultFilter returns the standard 0.03 / 0.97 thresholds.
func DefaultFilter() Filter {
	return Filter{Deadzone: 0.03, Maximize: 0.97}
}

// Apply filters one axis value.
func (f Filter) Apply(v float64) float64 {
	switch {
	case v > -f.Deadzone && v < f.Deadzone:
		return 0
	case v > f.Maximize:
		return 1
	case v < -f.Maximize:
		return -1
	}
	return v
}
