package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical input.
// Keyboard keys and gamepad controls both resolve to actions, so the game
// never needs to know where an intent came from.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // shift the piece one column left
	ActionRight             // shift the piece one column right
	ActionDown              // soft drop, one row
	ActionDrop              // hard drop, until the piece locks
	ActionRotateCW          // rotate clockwise
	ActionRotateCCW         // rotate counter-clockwise
	ActionPause             // pause/unpause (Normal mode only)
	ActionToggleMode        // switch between Normal and Fill mode
	ActionRestart           // clear the board and start over
	ActionBack              // leave the current screen
	ActionQuit              // exit the session
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionDown:       "down",
	ActionDrop:       "drop",
	ActionRotateCW:   "rotate_cw",
	ActionRotateCCW:  "rotate_ccw",
	ActionPause:      "pause",
	ActionToggleMode: "toggle_mode",
	ActionRestart:    "restart",
	ActionBack:       "back",
	ActionQuit:       "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves a config name (e.g. "rotate_cw") to an Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}

// InputFrame represents the input state for a single player during one
// simulation tick.
//
// Actions holds edge-triggered intents (pressed this tick). Held holds
// level-triggered hold flags that persist across ticks until released;
// games use them for auto-repeat.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold sets or releases the hold flag of an action.
func (f *InputFrame) Hold(a Action, held bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if held {
		f.Held[a] = true
		return
	}
	delete(f.Held, a)
}

// IsHeld reports whether the action's hold flag is set.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets the triggered actions for the next frame. Hold flags survive
// until their control is released.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Release drops every hold flag.
func (f *InputFrame) Release() {
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
