package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/padtris/internal/core"
	"github.com/vovakirdan/padtris/internal/gamepad"
)

// StickThreshold is how far a stick half must travel before it counts as
// pressed.
const StickThreshold = 0.5

// maxStatusErrors is how many recent errors the status line keeps.
const maxStatusErrors = 3

// Binding maps one standard control to an action. Axis bindings cover one
// half of the axis, selected by Sign.
type Binding struct {
	Control gamepad.Control
	Sign    int // -1 or +1 for axis halves, 0 for buttons
	Action  core.Action
}

// ParseBindings turns config bindings ("dpad_left": "left",
// "left_stick_x-": "left") into Bindings. Action "none" drops the control.
func ParseBindings(m map[string]string) ([]Binding, error) {
	out := make([]Binding, 0, len(m))
	for name, actionName := range m {
		if strings.EqualFold(strings.TrimSpace(actionName), "none") {
			continue
		}
		b, err := parseBinding(name, actionName)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func parseBinding(name, actionName string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	sign := 0
	switch {
	case strings.HasSuffix(name, "-"):
		sign = -1
		name = strings.TrimSuffix(name, "-")
	case strings.HasSuffix(name, "+"):
		sign = 1
		name = strings.TrimSuffix(name, "+")
	}

	ctrl, err := gamepad.ParseControl(name)
	if err != nil {
		return Binding{}, fmt.Errorf("tui: binding %q: %w", name, err)
	}
	if ctrl.IsAxis && sign == 0 {
		return Binding{}, fmt.Errorf("tui: binding %q: axis needs a - or + suffix", name)
	}
	if !ctrl.IsAxis && sign != 0 {
		return Binding{}, fmt.Errorf("tui: binding %q: button cannot take a suffix", name)
	}

	action, err := core.ParseAction(actionName)
	if err != nil {
		return Binding{}, fmt.Errorf("tui: binding %q: %w", name, err)
	}
	return Binding{Control: ctrl, Sign: sign, Action: action}, nil
}

type holdKey struct {
	device int
	ctrl   gamepad.Control
	sign   int
}

// PadBinder feeds normalized gamepad events into an InputFrame.
// Button presses set the action and its hold flag; releases clear the hold.
// Stick halves behave like buttons once past StickThreshold. Every event
// also updates a one-line status text. Errors are kept after it until
// newer errors push them out.
type PadBinder struct {
	frame   *core.InputFrame
	buttons map[gamepad.Control]core.Action
	axes    map[gamepad.Control][2]core.Action // [negative, positive]
	holds   map[holdKey]core.Action
	status  string
	errs    []string
	subs    []gamepad.Subscription
}

// NewPadBinder creates a binder that writes into frame.
func NewPadBinder(frame *core.InputFrame, bindings []Binding) *PadBinder {
	p := &PadBinder{
		frame:   frame,
		buttons: make(map[gamepad.Control]core.Action),
		axes:    make(map[gamepad.Control][2]core.Action),
		holds:   make(map[holdKey]core.Action),
	}
	for _, b := range bindings {
		if !b.Control.IsAxis {
			p.buttons[b.Control] = b.Action
			continue
		}
		pair := p.axes[b.Control]
		if b.Sign < 0 {
			pair[0] = b.Action
		} else {
			pair[1] = b.Action
		}
		p.axes[b.Control] = pair
	}
	return p
}

// Attach subscribes the binder to the normalizer.
func (p *PadBinder) Attach(n *gamepad.Normalizer) {
	p.subs = append(p.subs,
		n.Bind(gamepad.EventConnected, p.onConnected),
		n.Bind(gamepad.EventDisconnected, p.onDisconnected),
		n.Bind(gamepad.EventButtonDown, p.onButtonDown),
		n.Bind(gamepad.EventButtonUp, p.onButtonUp),
		n.Bind(gamepad.EventAxisChanged, p.onAxisChanged),
		n.Bind(gamepad.EventTick, p.onTick),
	)
}

// Detach removes every subscription made by Attach and drops the holds it
// set, since no release event will arrive for them.
func (p *PadBinder) Detach(n *gamepad.Normalizer) {
	for _, s := range p.subs {
		n.Unbind(s)
	}
	p.subs = nil
	clear(p.holds)
	p.frame.Release()
}

// Status returns the latest status text followed by the recent errors.
func (p *PadBinder) Status() string {
	if len(p.errs) == 0 {
		return p.status
	}
	errs := "err: " + strings.Join(p.errs, "; ")
	if p.status == "" {
		return errs
	}
	return p.status + "  " + errs
}

// AppendError adds err to the status line. A repeat of the newest error is
// not added again.
func (p *PadBinder) AppendError(err error) {
	msg := err.Error()
	if n := len(p.errs); n > 0 && p.errs[n-1] == msg {
		return
	}
	p.errs = append(p.errs, msg)
	if len(p.errs) > maxStatusErrors {
		p.errs = p.errs[len(p.errs)-maxStatusErrors:]
	}
}

// SetStatus replaces the status line.
func (p *PadBinder) SetStatus(s string) {
	p.status = s
}

func (p *PadBinder) onConnected(e gamepad.Event) {
	d := e.Device
	p.status = fmt.Sprintf("pad %d connected: %s (%s, %s)", d.Index, d.ID, d.Type, d.Mapping)
}

func (p *PadBinder) onDisconnected(e gamepad.Event) {
	idx := e.Device.Index
	for k := range p.holds {
		if k.device == idx {
			p.release(k)
		}
	}
	p.status = fmt.Sprintf("pad %d disconnected", idx)
}

func (p *PadBinder) onButtonDown(e gamepad.Event) {
	p.status = fmt.Sprintf("%s %.2f", e.Control.Name(), e.Value)
	a, ok := p.buttons[e.Control]
	if !ok {
		return
	}
	p.press(holdKey{device: e.Device.Index, ctrl: e.Control}, a)
}

func (p *PadBinder) onButtonUp(e gamepad.Event) {
	p.status = fmt.Sprintf("%s %.2f", e.Control.Name(), e.Value)
	p.release(holdKey{device: e.Device.Index, ctrl: e.Control})
}

func (p *PadBinder) onAxisChanged(e gamepad.Event) {
	p.status = fmt.Sprintf("%s %+.2f", e.Control.Name(), e.Value)
}

// onTick samples every bound stick half once per tick, so a stick held past
// the threshold behaves exactly like a held button.
func (p *PadBinder) onTick(e gamepad.Event) {
	for _, d := range e.Devices {
		for ctrl, pair := range p.axes {
			v := d.Axis(gamepad.Axis(ctrl.Index))
			p.sampleHalf(d.Index, ctrl, -1, pair[0], v <= -StickThreshold)
			p.sampleHalf(d.Index, ctrl, 1, pair[1], v >= StickThreshold)
		}
	}
}

func (p *PadBinder) sampleHalf(device int, ctrl gamepad.Control, sign int, a core.Action, active bool) {
	if a == core.ActionNone {
		return
	}
	k := holdKey{device: device, ctrl: ctrl, sign: sign}
	_, held := p.holds[k]
	switch {
	case active && !held:
		p.press(k, a)
	case !active && held:
		p.release(k)
	}
}

func (p *PadBinder) press(k holdKey, a core.Action) {
	p.holds[k] = a
	p.frame.Set(a)
	p.frame.Hold(a, true)
}

// release drops one hold; the action's hold flag stays set while any other
// control still holds the same action.
func (p *PadBinder) release(k holdKey) {
	a, ok := p.holds[k]
	if !ok {
		return
	}
	delete(p.holds, k)
	for _, other := range p.holds {
		if other == a {
			return
		}
	}
	p.frame.Hold(a, false)
}
