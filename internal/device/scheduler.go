package device

import "padview/internal/protocol"

// OnTick decides, once per clock tick, whether to poll the host for a fresh
// snapshot. Only a connected device is worth polling. The decision depends on
// nothing but the current state: ticks are independent and missed ticks are
// not compensated.
func OnTick(s State) (protocol.PollRequest, bool) {
	if s.Phase != PhaseConnected {
		return protocol.PollRequest{}, false
	}
	return protocol.PollRequest{DeviceID: s.DeviceID}, true
}
