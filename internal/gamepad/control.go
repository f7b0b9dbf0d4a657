// Package gamepad normalizes heterogeneous gamepad hardware into a standard
// control-name space. Platforms supply raw button and axis readings, a
// mapping table translates them per controller, and subscribers receive
// named button/axis events.
package gamepad

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownControl is returned when a control name is not a standard control.
var ErrUnknownControl = errors.New("gamepad: unknown control")

// Button indexes the standard buttons.
type Button int

const (
	ButtonFace1 Button = iota // bottom face button (A, cross)
	ButtonFace2               // right face button (B, circle)
	ButtonFace3               // left face button (X, square)
	ButtonFace4               // top face button (Y, triangle)
	ButtonLeftTopShoulder
	ButtonRightTopShoulder
	ButtonLeftBottomShoulder
	ButtonRightBottomShoulder
	ButtonSelectBack
	ButtonStartForward
	ButtonLeftStick
	ButtonRightStick
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight
	ButtonHome

	NumButtons = int(ButtonHome) + 1
)

var buttonNames = [NumButtons]string{
	"face_1",
	"face_2",
	"face_3",
	"face_4",
	"left_top_shoulder",
	"right_top_shoulder",
	"left_bottom_shoulder",
	"right_bottom_shoulder",
	"select_back",
	"start_forward",
	"left_stick",
	"right_stick",
	"dpad_up",
	"dpad_down",
	"dpad_left",
	"dpad_right",
	"home",
}

func (b Button) String() string {
	if b < 0 || int(b) >= NumButtons {
		return fmt.Sprintf("button_%d", int(b))
	}
	return buttonNames[b]
}

// Axis indexes the standard axes.
type Axis int

const (
	AxisLeftStickX Axis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY

	NumAxes = int(AxisRightStickY) + 1
)

var axisNames = [NumAxes]string{
	"left_stick_x",
	"left_stick_y",
	"right_stick_x",
	"right_stick_y",
}

func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return fmt.Sprintf("axis_%d", int(a))
	}
	return axisNames[a]
}

// Control is a standard button or axis.
type Control struct {
	IsAxis bool
	Index  int
}

// Name returns the standard control name.
func (c Control) Name() string {
	if c.IsAxis {
		return Axis(c.Index).String()
	}
	return Button(c.Index).String()
}

// ParseControl resolves a standard control name such as "dpad_left" or
// "left_stick_x".
func ParseControl(name string) (Control, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range buttonNames {
		if n == name {
			return Control{Index: i}, nil
		}
	}
	for i, n := range axisNames {
		if n == name {
			return Control{IsAxis: true, Index: i}, nil
		}
	}
	return Control{}, fmt.Errorf("%w %q", ErrUnknownControl, name)
}
