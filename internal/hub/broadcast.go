package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/edaniels/golog"

	"padview/internal/device"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster fans the bridge's output to websocket clients: device state
// changes go out delta-compressed with periodic full syncs, and poll commands
// are forwarded verbatim to every client (a client without the identified
// device simply ignores the command).
type Broadcaster struct {
	hub      *Hub
	states   <-chan device.State
	commands <-chan []byte
	logger   golog.Logger

	// mu guards lastView and seq. Frames are marshaled and sent while it is
	// held, so clients always receive seq numbers in increasing order; both
	// hub.Broadcast and the per-client send are non-blocking, so the lock is
	// never held across a stalled write.
	mu       sync.Mutex
	lastView View
	seq      int64
}

func NewBroadcaster(h *Hub, states <-chan device.State, commands <-chan []byte, logger golog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:      h,
		states:   states,
		commands: commands,
		logger:   logger,
		lastView: View{Phase: device.PhaseReadyToConnect.String()},
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case state, ok := <-b.states:
			if !ok {
				return
			}

			view := NewView(state)

			b.mu.Lock()
			delta := ComputeViewDelta(b.lastView, view)
			b.lastView = view
			if delta.IsEmpty() {
				b.mu.Unlock()
				continue
			}
			b.seq++
			deltaCount++

			// Resynchronize with a full frame periodically
			if deltaCount >= deltaCountSync {
				b.sendFull(b.seq, view)
				deltaCount = 0
			} else {
				b.sendDelta(b.seq, delta)
			}
			b.mu.Unlock()

		case cmd, ok := <-b.commands:
			if !ok {
				return
			}
			b.hub.Broadcast(cmd)

		case <-ticker.C:
			b.mu.Lock()
			if b.lastView.Phase == device.PhaseConnected.String() {
				b.seq++
				b.sendFull(b.seq, b.lastView)
			}
			b.mu.Unlock()
		}
	}
}

// SendInitialState sends the current full view to a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	msg := NewFullMessage(b.seq, &b.lastView)
	data, err := json.Marshal(msg)
	if err != nil {
		b.logger.Errorw("marshaling initial state", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (b *Broadcaster) sendFull(seq int64, view View) {
	msg := NewFullMessage(seq, &view)
	data, err := json.Marshal(msg)
	if err != nil {
		b.logger.Errorw("marshaling full message", "error", err)
		return
	}
	b.hub.Broadcast(data)
}

func (b *Broadcaster) sendDelta(seq int64, delta *ViewDelta) {
	msg := NewDeltaMessage(seq, delta)
	data, err := json.Marshal(msg)
	if err != nil {
		b.logger.Errorw("marshaling delta message", "error", err)
		return
	}
	b.hub.Broadcast(data)
}
