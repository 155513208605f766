package protocol

import "padview/internal/gamepad"

// Wire vocabulary exchanged with the host bridge. The set is intentionally
// closed: anything else is rejected at decode time.
const (
	TypeConnected    = "gamepadConnected"
	TypeDisconnected = "gamepadDisconnected"
	ActionPoll       = "pollGamepad"
)

// Inbound is one decoded host event. The union is closed; decode failures
// never produce an Inbound value.
type Inbound interface {
	inboundMarker()
}

// Connected carries a fresh snapshot, both for an organic connect and for the
// response to a poll command. The two are deliberately indistinguishable.
type Connected struct {
	Snapshot gamepad.RawSnapshot
}

func (Connected) inboundMarker() {}

// Disconnected signals the device went away. The snapshot it carries on the
// wire is discarded downstream.
type Disconnected struct {
	Snapshot gamepad.RawSnapshot
}

func (Disconnected) inboundMarker() {}

// PollRequest asks the host bridge for a fresh snapshot of a connected device.
type PollRequest struct {
	DeviceID string
}
