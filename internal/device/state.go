// Package device holds the pure state machine folding host events into the
// current device state, and the per-tick poll decision.
package device

import (
	"padview/internal/gamepad"
	"padview/internal/protocol"
)

// Phase tags the closed device-state union. Exactly one phase is active at a
// time; the State value is replaced wholesale on every transition.
type Phase int

const (
	// PhaseReadyToConnect is the initial phase, before any host event.
	PhaseReadyToConnect Phase = iota
	// PhaseConnected means a device is live; Device and DeviceID are set.
	PhaseConnected
	// PhaseDisconnected means the device went away; a later connect event
	// transitions back to PhaseConnected.
	PhaseDisconnected
)

func (p Phase) String() string {
	switch p {
	case PhaseConnected:
		return "connected"
	case PhaseDisconnected:
		return "disconnected"
	default:
		return "readyToConnect"
	}
}

// State is the reducer-owned device state. Device and DeviceID are only
// meaningful in PhaseConnected and zeroed otherwise.
type State struct {
	Phase    Phase
	Device   gamepad.Device
	DeviceID string
}

// Initial returns the state before any host event has been seen.
func Initial() State {
	return State{Phase: PhaseReadyToConnect}
}

// Reduce computes the next state from the current one plus one inbound
// message. It is pure: no I/O, no mutation of its inputs.
//
// A Connected message serves double duty: it establishes a new connection and
// it refreshes an already-connected device with poll results. Disconnected
// always wins regardless of prior phase; its snapshot is discarded.
func Reduce(s State, msg protocol.Inbound) State {
	switch m := msg.(type) {
	case protocol.Connected:
		return State{
			Phase:    PhaseConnected,
			Device:   gamepad.Map(m.Snapshot),
			DeviceID: m.Snapshot.ID,
		}
	case protocol.Disconnected:
		return State{Phase: PhaseDisconnected}
	default:
		// Unreachable with a well-behaved codec; leave state untouched.
		return s
	}
}
