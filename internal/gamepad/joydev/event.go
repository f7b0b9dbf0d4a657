// Package joydev reads gamepads through the Linux joystick API
// (/dev/input/js*). It implements gamepad.EventSource: one reader goroutine
// per device keeps a raw snapshot that the normalizer copies each tick.
package joydev

import (
	"encoding/binary"
	"math"
)

// Event types from linux/joystick.h.
const (
	typeButton = 0x01
	typeAxis   = 0x02
	typeInit   = 0x80 // synthetic events describing the initial state

	eventSize = 8
)

// jsEvent mirrors struct js_event.
type jsEvent struct {
	Time   uint32 // ms, driver clock
	Value  int16
	Type   uint8
	Number uint8
}

func decodeEvent(b []byte) jsEvent {
	return jsEvent{
		Time:   binary.LittleEndian.Uint32(b[0:4]),
		Value:  int16(binary.LittleEndian.Uint16(b[4:6])),
		Type:   b[6],
		Number: b[7],
	}
}

func encodeEvent(e jsEvent) []byte {
	b := make([]byte, eventSize)
	binary.LittleEndian.PutUint32(b[0:4], e.Time)
	binary.LittleEndian.PutUint16(b[4:6], uint16(e.Value))
	b[6] = e.Type
	b[7] = e.Number
	return b
}

// normalizeAxis converts a raw axis value to -1..1.
func normalizeAxis(raw int16) float64 {
	return max(float64(raw)/math.MaxInt16, -1)
}

// apply folds one event into a raw state, growing the control slices as
// new indexes appear.
func (e jsEvent) apply(buttons, axes []float64) ([]float64, []float64) {
	n := int(e.Number)
	switch e.Type &^ typeInit {
	case typeButton:
		buttons = grow(buttons, n+1)
		buttons[n] = 0
		if e.Value != 0 {
			buttons[n] = 1
		}
	case typeAxis:
		axes = grow(axes, n+1)
		axes[n] = normalizeAxis(e.Value)
	}
	return buttons, axes
}

func grow(s []float64, n int) []float64 {
	if len(s) >= n {
		return s
	}
	return append(s, make([]float64, n-len(s))...)
}
