package gamepad

// EventKind identifies what happened.
type EventKind int

const (
	EventConnected EventKind = iota
	EventDisconnected
	EventButtonDown
	EventButtonUp
	EventAxisChanged
	EventTick
)

var eventKindNames = [...]string{
	EventConnected:    "connected",
	EventDisconnected: "disconnected",
	EventButtonDown:   "button_down",
	EventButtonUp:     "button_up",
	EventAxisChanged:  "axis_changed",
	EventTick:         "tick",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is delivered to bound handlers.
type Event struct {
	Kind EventKind

	// Device is the source device; nil for tick events.
	Device *Device

	// Control and Value are set for button and axis events.
	Control Control
	Value   float64

	// Devices lists every connected device on tick events.
	Devices []*Device
}

// Handler receives events.
type Handler func(Event)

// Subscription identifies one binding for Unbind.
type Subscription struct {
	kind EventKind
	id   uint64
}

type subscriber struct {
	id uint64
	h  Handler
}

// Bus is an observer list per event kind. The zero value is ready to use.
// It is not safe for concurrent use.
type Bus struct {
	next uint64
	subs map[EventKind][]subscriber
}

// Bind adds a handler for an event kind. Handlers run in bind order.
func (b *Bus) Bind(kind EventKind, h Handler) Subscription {
	if b.subs == nil {
		b.subs = make(map[EventKind][]subscriber)
	}
	b.next++
	b.subs[kind] = append(b.subs[kind], subscriber{id: b.next, h: h})
	return Subscription{kind: kind, id: b.next}
}

// Unbind removes a binding. Reports whether it was bound.
func (b *Bus) Unbind(s Subscription) bool {
	list := b.subs[s.kind]
	for i, sub := range list {
		if sub.id == s.id {
			b.subs[s.kind] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Fire delivers an event to the handlers bound when it starts; handlers may
// bind or unbind while it runs.
func (b *Bus) Fire(e Event) {
	for _, sub := range b.subs[e.Kind] {
		sub.h(e)
	}
}
