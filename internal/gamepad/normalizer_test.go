package gamepad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePads is a polling source.
type fakePads struct {
	pads []RawState
}

func (f *fakePads) Pads() []RawState {
	out := make([]RawState, len(f.pads))
	for i, p := range f.pads {
		out[i] = p.Clone()
	}
	return out
}

// fakeHotplug is an event source.
type fakeHotplug struct {
	fakePads
	events []HotplugEvent
}

func (f *fakeHotplug) Events() []HotplugEvent {
	ev := f.events
	f.events = nil
	return ev
}

func (f *fakeHotplug) attach(p RawState) {
	f.pads = append(f.pads, p)
	f.events = append(f.events, HotplugEvent{Attached: true, Pad: p})
}

func xboxPad(index int) RawState {
	return RawState{
		Index:   index,
		ID:      "Xbox 360 Controller (XInput STANDARD GAMEPAD)",
		Buttons: make([]float64, 11),
		Axes:    []float64{0, 0, -1, 0, 0, -1, 0, 0},
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) bindAll(n *Normalizer) {
	for k := EventConnected; k <= EventTick; k++ {
		n.Bind(k, func(e Event) { r.events = append(r.events, e) })
	}
}

func (r *recorder) kinds() []EventKind {
	var out []EventKind
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

func TestInitSelectsFirstSupported(t *testing.T) {
	polling := &fakePads{}
	n := New(WithPlatforms(
		NewEventPlatform(PlatformFirefox, polling), // no hotplug events: unsupported
		NewPollingPlatform(PlatformWebKit, polling),
	))
	require.NoError(t, n.Init())
	assert.Equal(t, PlatformWebKit, n.Platform())
}

func TestInitFallsBackToNull(t *testing.T) {
	n := New(WithPlatforms(NewPollingPlatform(PlatformLinux, nil)))
	err := n.Init()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedPlatform))
	assert.Equal(t, PlatformNull, n.Platform())

	var rec recorder
	rec.bindAll(n)
	n.Update()
	assert.Empty(t, rec.events, "null platform never reports devices")
}

func TestUpdateConnectPressRelease(t *testing.T) {
	src := &fakePads{pads: []RawState{xboxPad(0)}}
	n := New(WithPlatforms(NewPollingPlatform(PlatformFirefox, src)))
	var rec recorder
	rec.bindAll(n)

	n.Update()
	require.Equal(t, []EventKind{EventConnected, EventTick}, rec.kinds())
	dev := rec.events[0].Device
	assert.Equal(t, TypeXbox, dev.Type)
	assert.Equal(t, "xbox/firefox", dev.Mapping)
	assert.Len(t, rec.events[1].Devices, 1)

	// Press A.
	rec.reset()
	src.pads[0].Buttons[0] = 1
	n.Update()
	require.Equal(t, []EventKind{EventButtonDown, EventTick}, rec.kinds())
	assert.Equal(t, "face_1", rec.events[0].Control.Name())
	assert.True(t, dev.IsDown(ButtonFace1))

	// Held: no new edge.
	rec.reset()
	n.Update()
	assert.Equal(t, []EventKind{EventTick}, rec.kinds())

	rec.reset()
	src.pads[0].Buttons[0] = 0
	n.Update()
	require.Equal(t, []EventKind{EventButtonUp, EventTick}, rec.kinds())
	assert.False(t, dev.IsDown(ButtonFace1))
}

func TestUpdateAnalogTriggerFiresAxisChanged(t *testing.T) {
	src := &fakePads{pads: []RawState{xboxPad(0)}}
	n := New(WithPlatforms(NewPollingPlatform(PlatformFirefox, src)))
	var rec recorder
	n.Update()
	rec.bindAll(n)

	// Left trigger half way: ranged axis 2 from -1 to 1 reads 0.5.
	src.pads[0].Axes[2] = 0
	n.Update()
	require.Equal(t, []EventKind{EventAxisChanged, EventTick}, rec.kinds())
	assert.Equal(t, "left_bottom_shoulder", rec.events[0].Control.Name())
	assert.Equal(t, 0.5, rec.events[0].Value)

	// Further: crosses 0.5, press edge then value change.
	rec.reset()
	src.pads[0].Axes[2] = 0.5
	n.Update()
	require.Equal(t, []EventKind{EventButtonDown, EventAxisChanged, EventTick}, rec.kinds())
	assert.Equal(t, 0.75, rec.events[1].Value)

	// Fully pressed reads exactly 1: edge already fired, no value event.
	rec.reset()
	src.pads[0].Axes[2] = 1
	n.Update()
	assert.Equal(t, []EventKind{EventTick}, rec.kinds())
}

func TestUpdateAxisFilteredAndDpadFromHat(t *testing.T) {
	src := &fakePads{pads: []RawState{xboxPad(0)}}
	n := New(WithPlatforms(NewPollingPlatform(PlatformFirefox, src)))
	n.Update()
	var rec recorder
	rec.bindAll(n)

	src.pads[0].Axes[0] = 0.02 // inside the deadzone
	n.Update()
	assert.Equal(t, []EventKind{EventTick}, rec.kinds())

	rec.reset()
	src.pads[0].Axes[0] = -0.99
	n.Update()
	require.Equal(t, []EventKind{EventAxisChanged, EventTick}, rec.kinds())
	assert.Equal(t, "left_stick_x", rec.events[0].Control.Name())
	assert.Equal(t, -1.0, rec.events[0].Value)

	// Hat x at -1 is d-pad left.
	rec.reset()
	src.pads[0].Axes[6] = -1
	n.Update()
	require.Equal(t, []EventKind{EventButtonDown, EventTick}, rec.kinds())
	assert.Equal(t, "dpad_left", rec.events[0].Control.Name())
}

func TestPollingDisconnect(t *testing.T) {
	src := &fakePads{pads: []RawState{xboxPad(0), xboxPad(1)}}
	n := New(WithPlatforms(NewPollingPlatform(PlatformLinux, src)))
	n.Update()
	require.Len(t, n.Devices(), 2)

	var rec recorder
	rec.bindAll(n)
	src.pads = src.pads[1:]
	n.Update()

	require.Equal(t, []EventKind{EventDisconnected, EventTick}, rec.kinds())
	assert.Equal(t, 0, rec.events[0].Device.Index)
	require.Len(t, n.Devices(), 1)
	assert.Equal(t, 1, n.Devices()[0].Index)

	rec.reset()
	src.pads = nil
	n.Update()
	assert.Equal(t, []EventKind{EventDisconnected}, rec.kinds(), "no tick without devices")
}

func TestEventPlatformHotplug(t *testing.T) {
	src := &fakeHotplug{}
	n := New(WithPlatforms(
		NewEventPlatform(PlatformLinux, src),
		NewPollingPlatform(PlatformLinux, src),
	))
	var rec recorder
	rec.bindAll(n)

	n.Update()
	assert.Empty(t, rec.events)

	pad := xboxPad(3)
	pad.Buttons[1] = 1
	src.attach(pad)
	n.Update()
	require.Equal(t, []EventKind{EventConnected, EventButtonDown, EventTick}, rec.kinds())
	assert.Equal(t, "xbox/linux", rec.events[0].Device.Mapping)
	assert.Equal(t, "face_2", rec.events[1].Control.Name())

	rec.reset()
	src.pads = nil
	src.events = []HotplugEvent{{Attached: false, Pad: pad}}
	n.Update()
	assert.Equal(t, []EventKind{EventDisconnected}, rec.kinds())
	assert.Empty(t, n.Devices())
}

func TestWithTableAndFilter(t *testing.T) {
	table := Table{{
		Name:    "swapped",
		Buttons: []Source{DirectButton(1), DirectButton(0)},
		Axes:    []Source{DirectAxis(1), DirectAxis(0)},
	}}
	src := &fakePads{pads: []RawState{{Index: 0, ID: "whatever", Buttons: []float64{0, 1}, Axes: []float64{0.1, 0}}}}
	n := New(
		WithPlatforms(NewPollingPlatform(PlatformLinux, src)),
		WithTable(table),
		WithFilter(Filter{Deadzone: 0.2, Maximize: 0.9}),
	)
	n.Update()

	dev := n.Devices()[0]
	assert.Equal(t, "swapped", dev.Mapping)
	assert.Equal(t, []float64{0, 1}, dev.Raw().Buttons, "raw state is kept unmapped")
	assert.True(t, dev.IsDown(ButtonFace1))
	assert.False(t, dev.IsDown(ButtonFace2))
	assert.Equal(t, 0.0, dev.Axis(AxisLeftStickY), "0.1 is inside the custom deadzone")
}
