package hub

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"

	"padview/internal/device"
	"padview/internal/gamepad"
)

func connectedState(id string) device.State {
	var dev gamepad.Device
	dev.Buttons.A = true
	dev.Sticks.Left.Position = gamepad.Vector{X: 0.5, Y: -0.5}
	return device.State{Phase: device.PhaseConnected, Device: dev, DeviceID: id}
}

func TestNewView(t *testing.T) {
	v := NewView(device.Initial())
	test.That(t, v.Phase, test.ShouldEqual, "readyToConnect")
	test.That(t, v.Device, test.ShouldBeNil)
	test.That(t, v.DeviceID, test.ShouldEqual, "")

	v = NewView(connectedState("pad1"))
	test.That(t, v.Phase, test.ShouldEqual, "connected")
	test.That(t, v.DeviceID, test.ShouldEqual, "pad1")
	test.That(t, v.Device, test.ShouldNotBeNil)
	test.That(t, v.Device.Buttons.A, test.ShouldBeTrue)
}

func TestComputeViewDeltaPhaseChange(t *testing.T) {
	old := NewView(device.Initial())
	next := NewView(connectedState("pad1"))

	d := ComputeViewDelta(old, next)
	test.That(t, d.IsEmpty(), test.ShouldBeFalse)
	test.That(t, *d.Phase, test.ShouldEqual, "connected")
	test.That(t, *d.DeviceID, test.ShouldEqual, "pad1")
	test.That(t, d.Device, test.ShouldNotBeNil)
	test.That(t, d.Device.Buttons.A, test.ShouldBeTrue)
}

func TestComputeViewDeltaConnectEdgeCarriesAllGroups(t *testing.T) {
	// On the nil→device edge the client rebuilds its whole device view from
	// the delta, so every group must be present even when it equals its
	// defaults (here: only one button is pressed, everything else is idle).
	var dev gamepad.Device
	dev.Buttons.A = true
	old := NewView(device.Initial())
	next := NewView(device.State{Phase: device.PhaseConnected, Device: dev, DeviceID: "pad1"})

	d := ComputeViewDelta(old, next)
	test.That(t, d.Device, test.ShouldNotBeNil)
	test.That(t, d.Device.Buttons, test.ShouldNotBeNil)
	test.That(t, d.Device.Bumpers, test.ShouldNotBeNil)
	test.That(t, d.Device.Triggers, test.ShouldNotBeNil)
	test.That(t, d.Device.Dpad, test.ShouldNotBeNil)
	test.That(t, d.Device.Sticks, test.ShouldNotBeNil)
	test.That(t, d.Device.Buttons.A, test.ShouldBeTrue)
	test.That(t, *d.Device.Triggers, test.ShouldResemble, gamepad.TriggerState{})
}

func TestComputeViewDeltaDisconnectEdgeResetsAllGroups(t *testing.T) {
	// The device→nil edge must zero every group so no stale reading survives
	// a disconnect→reconnect cycle on the client.
	old := NewView(connectedState("pad1"))
	next := NewView(device.State{Phase: device.PhaseDisconnected})

	d := ComputeViewDelta(old, next)
	test.That(t, *d.Phase, test.ShouldEqual, "disconnected")
	test.That(t, d.Device, test.ShouldNotBeNil)
	test.That(t, *d.Device.Buttons, test.ShouldResemble, gamepad.ButtonState{})
	test.That(t, *d.Device.Bumpers, test.ShouldResemble, gamepad.BumperState{})
	test.That(t, *d.Device.Triggers, test.ShouldResemble, gamepad.TriggerState{})
	test.That(t, *d.Device.Dpad, test.ShouldResemble, gamepad.DpadState{})
	test.That(t, *d.Device.Sticks, test.ShouldResemble, gamepad.SticksState{})
}

func TestComputeViewDeltaNoChange(t *testing.T) {
	v := NewView(connectedState("pad1"))
	d := ComputeViewDelta(v, v)
	test.That(t, d.IsEmpty(), test.ShouldBeTrue)
}

func TestComputeViewDeltaReadingChange(t *testing.T) {
	old := NewView(connectedState("pad1"))
	nextState := connectedState("pad1")
	nextState.Device.Triggers.Right = 1.0
	next := NewView(nextState)

	d := ComputeViewDelta(old, next)
	test.That(t, d.Phase, test.ShouldBeNil)
	test.That(t, d.DeviceID, test.ShouldBeNil)
	test.That(t, d.Device.Triggers, test.ShouldNotBeNil)
	test.That(t, d.Device.Triggers.Right, test.ShouldEqual, 1.0)
	test.That(t, d.Device.Buttons, test.ShouldBeNil)
}

func TestFullMessageJSON(t *testing.T) {
	view := NewView(connectedState("pad1"))
	msg := NewFullMessage(7, &view)

	data, err := json.Marshal(msg)
	test.That(t, err, test.ShouldBeNil)

	var decoded map[string]any
	test.That(t, json.Unmarshal(data, &decoded), test.ShouldBeNil)
	test.That(t, decoded["type"], test.ShouldEqual, "full")
	test.That(t, decoded["seq"], test.ShouldEqual, 7)
	test.That(t, decoded["data"].(map[string]any)["deviceId"], test.ShouldEqual, "pad1")
	_, hasChanges := decoded["changes"]
	test.That(t, hasChanges, test.ShouldBeFalse)
}

func TestDeltaMessageJSONOmitsUnchanged(t *testing.T) {
	phase := "disconnected"
	msg := NewDeltaMessage(3, &ViewDelta{Phase: &phase})

	data, err := json.Marshal(msg)
	test.That(t, err, test.ShouldBeNil)

	var decoded map[string]any
	test.That(t, json.Unmarshal(data, &decoded), test.ShouldBeNil)
	changes := decoded["changes"].(map[string]any)
	test.That(t, changes["phase"], test.ShouldEqual, "disconnected")
	_, hasDevice := changes["device"]
	test.That(t, hasDevice, test.ShouldBeFalse)
}
