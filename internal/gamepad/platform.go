package gamepad

import (
	"errors"
	"slices"
)

// ErrUnsupportedPlatform is returned when no platform can supply gamepads.
var ErrUnsupportedPlatform = errors.New("gamepad: no gamepad platform available")

// Platform names used to select mappings.
const (
	PlatformFirefox = "firefox"
	PlatformWebKit  = "webkit"
	PlatformLinux   = "linux"
	PlatformNull    = "null"
)

// Delta is what a platform reports on each refresh.
type Delta struct {
	Connected    []RawState // devices attached since the last refresh
	Disconnected []int      // indexes detached since the last refresh
	Pads         []RawState // current state of every attached device
}

// Platform is a strategy for discovering devices and reading their state.
type Platform interface {
	Name() string
	Supported() bool
	Refresh() Delta
}

// PadSource enumerates attached devices and their raw state.
type PadSource interface {
	Pads() []RawState
}

// HotplugEvent reports an attach or detach.
type HotplugEvent struct {
	Attached bool
	Pad      RawState
}

// EventSource is a PadSource that also reports hotplug events.
type EventSource interface {
	PadSource
	Events() []HotplugEvent
}

// eventPlatform learns about devices from hotplug events.
type eventPlatform struct {
	name  string
	src   EventSource
	known map[int]bool
}

// NewEventPlatform returns an event-based platform. It is supported only
// when src reports hotplug events.
func NewEventPlatform(name string, src PadSource) Platform {
	es, _ := src.(EventSource)
	return &eventPlatform{name: name, src: es, known: make(map[int]bool)}
}

func (p *eventPlatform) Name() string    { return p.name }
func (p *eventPlatform) Supported() bool { return p.src != nil }

func (p *eventPlatform) Refresh() Delta {
	var d Delta
	if p.src == nil {
		return d
	}
	for _, ev := range p.src.Events() {
		if ev.Attached {
			p.known[ev.Pad.Index] = true
			d.Connected = append(d.Connected, ev.Pad)
			continue
		}
		if p.known[ev.Pad.Index] {
			delete(p.known, ev.Pad.Index)
			d.Disconnected = append(d.Disconnected, ev.Pad.Index)
		}
	}
	for _, pad := range p.src.Pads() {
		if p.known[pad.Index] {
			d.Pads = append(d.Pads, pad)
		}
	}
	return d
}

// pollingPlatform diffs the device list on every refresh.
type pollingPlatform struct {
	name  string
	src   PadSource
	known map[int]bool
}

// NewPollingPlatform returns a platform that compares the attached device
// list between refreshes.
func NewPollingPlatform(name string, src PadSource) Platform {
	return &pollingPlatform{name: name, src: src, known: make(map[int]bool)}
}

func (p *pollingPlatform) Name() string    { return p.name }
func (p *pollingPlatform) Supported() bool { return p.src != nil }

func (p *pollingPlatform) Refresh() Delta {
	var d Delta
	if p.src == nil {
		return d
	}
	d.Pads = p.src.Pads()

	seen := make(map[int]bool, len(d.Pads))
	for _, pad := range d.Pads {
		seen[pad.Index] = true
		if !p.known[pad.Index] {
			p.known[pad.Index] = true
			d.Connected = append(d.Connected, pad)
		}
	}
	for idx := range p.known {
		if !seen[idx] {
			delete(p.known, idx)
			d.Disconnected = append(d.Disconnected, idx)
		}
	}
	slices.Sort(d.Disconnected)
	return d
}

// nullPlatform never reports a device.
type nullPlatform struct{}

func (nullPlatform) Name() string    { return PlatformNull }
func (nullPlatform) Supported() bool { return true }
func (nullPlatform) Refresh() Delta  { return Delta{} }
