package gamepad

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Normalizer turns platform readings into standard control events.
// All methods run on the caller's goroutine; it is not safe for concurrent use.
type Normalizer struct {
	platforms []Platform
	platform  Platform
	table     Table
	filter    Filter
	logger    *log.Logger

	bus     Bus
	devices map[int]*Device
	order   []int // device indexes in connect order
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithPlatforms sets the platform strategies, tried in order.
func WithPlatforms(p ...Platform) Option {
	return func(n *Normalizer) {
		n.platforms = p
	}
}

// WithTable sets the mapping table.
func WithTable(t Table) Option {
	return func(n *Normalizer) {
		n.table = t
	}
}

// WithFilter overrides the axis deadzone/saturation thresholds.
func WithFilter(f Filter) Option {
	return func(n *Normalizer) {
		n.filter = f
	}
}

// WithLogger sets the logger for connect and mapping messages.
func WithLogger(l *log.Logger) Option {
	return func(n *Normalizer) {
		n.logger = l
	}
}

// New creates a normalizer. Without options it has no platforms and uses
// the built-in mapping table.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		filter:  DefaultFilter(),
		devices: make(map[int]*Device),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.table == nil {
		n.table = DefaultTable()
	}
	if n.logger == nil {
		n.logger = log.New(io.Discard)
	}
	return n
}

// Init selects the first supported platform. When none is supported the
// null platform is used and ErrUnsupportedPlatform returned; the normalizer
// stays usable but never reports devices.
func (n *Normalizer) Init() error {
	for _, p := range n.platforms {
		if p.Supported() {
			n.platform = p
			n.logger.Info("gamepad platform selected", "platform", p.Name())
			return nil
		}
	}
	n.platform = nullPlatform{}
	n.logger.Warn("no gamepad platform available")
	return fmt.Errorf("%w (tried %d)", ErrUnsupportedPlatform, len(n.platforms))
}

// Platform returns the selected platform name, empty before Init.
func (n *Normalizer) Platform() string {
	if n.platform == nil {
		return ""
	}
	return n.platform.Name()
}

// Bind adds an event handler.
func (n *Normalizer) Bind(kind EventKind, h Handler) Subscription {
	return n.bus.Bind(kind, h)
}

// Unbind removes an event handler.
func (n *Normalizer) Unbind(s Subscription) bool {
	return n.bus.Unbind(s)
}

// Devices returns the connected devices in connect order.
func (n *Normalizer) Devices() []*Device {
	out := make([]*Device, 0, len(n.order))
	for _, idx := range n.order {
		out = append(out, n.devices[idx])
	}
	return out
}

// Update runs one tick: refresh the platform and fire connect/disconnect
// events, update every device in connect order, then fire one tick event
// if any device is connected.
func (n *Normalizer) Update() {
	if n.platform == nil {
		_ = n.Init()
	}

	delta := n.platform.Refresh()

	for _, idx := range delta.Disconnected {
		d, ok := n.devices[idx]
		if !ok {
			continue
		}
		delete(n.devices, idx)
		n.order = slices.DeleteFunc(n.order, func(i int) bool { return i == idx })
		n.logger.Info("gamepad disconnected", "index", idx, "id", d.ID)
		n.bus.Fire(Event{Kind: EventDisconnected, Device: d})
	}

	for _, raw := range delta.Connected {
		if old, ok := n.devices[raw.Index]; ok {
			// Reattached without a detach in between.
			n.order = slices.DeleteFunc(n.order, func(i int) bool { return i == raw.Index })
			n.bus.Fire(Event{Kind: EventDisconnected, Device: old})
		}
		d := newDevice(raw, n.platform.Name(), n.table, n.filter)
		n.devices[raw.Index] = d
		n.order = append(n.order, raw.Index)
		n.logger.Info("gamepad connected", "index", d.Index, "id", d.ID, "type", d.Type, "mapping", d.Mapping)
		n.bus.Fire(Event{Kind: EventConnected, Device: d})
	}

	current := make(map[int]RawState, len(delta.Pads))
	for _, raw := range delta.Pads {
		current[raw.Index] = raw
	}
	for _, idx := range n.order {
		d := n.devices[idx]
		raw, ok := current[idx]
		if !ok {
			raw = d.raw
		}
		d.update(raw, n.bus.Fire)
	}

	if len(n.order) > 0 {
		n.bus.Fire(Event{Kind: EventTick, Devices: n.Devices()})
	}
}
