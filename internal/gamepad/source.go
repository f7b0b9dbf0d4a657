package gamepad

// SourceKind tells how a standard control reads the hardware.
type SourceKind int

const (
	SourceAbsent     SourceKind = iota // control not present, always 0
	SourceButton                       // raw button value
	SourceAxis                         // raw axis value
	SourceRangedAxis                   // raw axis rescaled into 0..1
)

// Source locates the raw reading behind one standard control. It is resolved
// once when a device connects.
type Source struct {
	Kind  SourceKind
	Index int

	// Zero and One calibrate a ranged axis: the raw value read as 0 and as 1.
	Zero float64
	One  float64
}

// DirectButton reads raw button i.
func DirectButton(i int) Source {
	return Source{Kind: SourceButton, Index: i}
}

// DirectAxis reads raw axis i.
func DirectAxis(i int) Source {
	return Source{Kind: SourceAxis, Index: i}
}

// RangedAxis reads raw axis i normalized against zero/one and clamped to 0..1.
// One may be below zero for axes that grow towards negative values.
func RangedAxis(i int, zero, one float64) Source {
	return Source{Kind: SourceRangedAxis, Index: i, Zero: zero, One: one}
}

// Absent is a control the hardware does not have.
func Absent() Source {
	return Source{Kind: SourceAbsent, Index: -1}
}

// Read returns the control value from a raw device state. Indexes missing
// from the state read as 0.
func (s Source) Read(raw RawState) float64 {
	switch s.Kind {
	case SourceButton:
		return at(raw.Buttons, s.Index)
	case SourceAxis:
		return at(raw.Axes, s.Index)
	case SourceRangedAxis:
		if s.One == s.Zero {
			return 0
		}
		v := (at(raw.Axes, s.Index) - s.Zero) / (s.One - s.Zero)
		return min(max(v, 0), 1)
	}
	return 0
}

func at(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}
