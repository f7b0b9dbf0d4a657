package gamepad

// RawState is one device as a platform reports it: hardware indexes, no
// mapping applied.
type RawState struct {
	Index   int    // platform slot, stable while connected
	ID      string // hardware identity string
	Buttons []float64
	Axes    []float64
}

// Clone returns a deep copy.
func (r RawState) Clone() RawState {
	r.Buttons = append([]float64(nil), r.Buttons...)
	r.Axes = append([]float64(nil), r.Axes...)
	return r
}

// Device is a connected controller with normalized standard controls.
type Device struct {
	Index   int
	ID      string
	Type    ControllerType
	Mapping string // name of the resolved mapping

	buttonSrc [NumButtons]Source
	axisSrc   [NumAxes]Source
	filter    Filter

	buttons [NumButtons]float64
	down    [NumButtons]bool
	axes    [NumAxes]float64
	raw     RawState
}

func newDevice(raw RawState, platform string, table Table, filter Filter) *Device {
	t := ResolveControllerType(raw.ID)
	m := table.Resolve(platform, t)

	d := &Device{
		Index:   raw.Index,
		ID:      raw.ID,
		Type:    t,
		Mapping: m.Name,
		filter:  filter,
		raw:     raw.Clone(),
	}
	for i := range d.buttonSrc {
		d.buttonSrc[i] = m.Button(Button(i))
	}
	for i := range d.axisSrc {
		d.axisSrc[i] = m.Axis(Axis(i))
	}
	return d
}

// Button returns the current value of a standard button, 0..1.
func (d *Device) Button(b Button) float64 {
	return d.buttons[b]
}

// IsDown reports whether a standard button is pressed.
func (d *Device) IsDown(b Button) bool {
	return d.down[b]
}

// Axis returns the filtered value of a standard axis, -1..1.
func (d *Device) Axis(a Axis) float64 {
	return d.axes[a]
}

// Raw returns the last raw state the device was updated from.
func (d *Device) Raw() RawState {
	return d.raw
}

// update reads every control in standard order and fires the resulting
// edge and value events.
func (d *Device) update(raw RawState, fire func(Event)) {
	d.raw = raw

	for i, src := range d.buttonSrc {
		v := src.Read(raw)
		prev := d.buttons[i]
		d.buttons[i] = v
		c := Control{Index: i}

		pressed := v > 0.5
		if pressed != d.down[i] {
			d.down[i] = pressed
			kind := EventButtonUp
			if pressed {
				kind = EventButtonDown
			}
			fire(Event{Kind: kind, Device: d, Control: c, Value: v})
		}
		if v != 0 && v != 1 && v != prev {
			fire(Event{Kind: EventAxisChanged, Device: d, Control: c, Value: v})
		}
	}

	for i, src := range d.axisSrc {
		v := d.filter.Apply(src.Read(raw))
		if v == d.axes[i] {
			continue
		}
		d.axes[i] = v
		fire(Event{Kind: EventAxisChanged, Device: d, Control: Control{IsAxis: true, Index: i}, Value: v})
	}
}
