package hub

import (
	"time"

	"padview/internal/device"
	"padview/internal/gamepad"
)

// View is the read-only rendering of the device state sent to clients. The
// frontend treats its fields as already normalized; it never does index math.
type View struct {
	Phase    string          `json:"phase"`
	DeviceID string          `json:"deviceId,omitempty"`
	Device   *gamepad.Device `json:"device,omitempty"`
}

// ViewDelta carries only the view fields that changed since the last frame.
type ViewDelta struct {
	Phase    *string               `json:"phase,omitempty"`
	DeviceID *string               `json:"deviceId,omitempty"`
	Device   *gamepad.DeltaChanges `json:"device,omitempty"`
}

func (d *ViewDelta) IsEmpty() bool {
	return d.Phase == nil && d.DeviceID == nil && (d.Device == nil || d.Device.IsEmpty())
}

// NewView projects a device state into its client-facing view.
func NewView(s device.State) View {
	v := View{Phase: s.Phase.String()}
	if s.Phase == device.PhaseConnected {
		v.DeviceID = s.DeviceID
		dev := s.Device
		v.Device = &dev
	}
	return v
}

// ComputeViewDelta diffs two views, reusing the device-level delta for the
// semantic fields.
func ComputeViewDelta(old, new_ View) *ViewDelta {
	d := &ViewDelta{}

	if old.Phase != new_.Phase {
		d.Phase = &new_.Phase
	}
	if old.DeviceID != new_.DeviceID {
		d.DeviceID = &new_.DeviceID
	}

	switch {
	case old.Device == nil && new_.Device == nil:
	case old.Device == nil || new_.Device == nil:
		var from gamepad.Device
		if new_.Device != nil {
			from = *new_.Device
		}
		// A connect or disconnect edge must name every group: clients
		// rebuild their device view from the delta, and a group omitted
		// here would leave them rendering stale or missing readings until
		// the next full sync.
		d.Device = allGroups(from)
	default:
		if dd := gamepad.ComputeDelta(*old.Device, *new_.Device); !dd.IsEmpty() {
			d.Device = dd
		}
	}

	return d
}

// allGroups returns a delta carrying all five groups of dev, changed or not.
func allGroups(dev gamepad.Device) *gamepad.DeltaChanges {
	return &gamepad.DeltaChanges{
		Buttons:  &dev.Buttons,
		Bumpers:  &dev.Bumpers,
		Triggers: &dev.Triggers,
		Dpad:     &dev.Dpad,
		Sticks:   &dev.Sticks,
	}
}

// WSMessage is one frame sent from server to client.
type WSMessage struct {
	Type      string     `json:"type"` // "full" or "delta"
	Seq       int64      `json:"seq"`
	Timestamp int64      `json:"timestamp"` // unix milliseconds
	Data      *View      `json:"data,omitempty"`
	Changes   *ViewDelta `json:"changes,omitempty"`
}

// NewFullMessage creates a "full" frame carrying the complete view.
func NewFullMessage(seq int64, view *View) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      view,
	}
}

// NewDeltaMessage creates a "delta" frame carrying only changed fields.
func NewDeltaMessage(seq int64, changes *ViewDelta) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}
