// Package bridge runs the event loop between the host (the browser tab
// feeding raw gamepad snapshots) and the pure device core. It is the single
// owner of the device state: inbound payloads and clock ticks are serialized
// through one goroutine, so the reducer never runs concurrently with itself.
package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"

	"padview/internal/device"
	"padview/internal/protocol"
)

// ErrorReporter receives decode failures. Malformed payloads are dropped and
// never fatal; the reporter is the observability sink for them.
type ErrorReporter interface {
	ReportDecodeError(err error, payload []byte)
}

type logReporter struct {
	logger golog.Logger
}

// NewLogReporter returns the default reporter, logging drops at debug level.
func NewLogReporter(logger golog.Logger) ErrorReporter {
	return logReporter{logger: logger}
}

func (r logReporter) ReportDecodeError(err error, payload []byte) {
	r.logger.Debugw("dropped malformed host payload", "error", err, "payload", string(payload))
}

// Config wires a Bridge. Clock, Reporter, and Logger may be nil; they default
// to the real clock, a debug-level log reporter, and the global logger.
type Config struct {
	Inbound      <-chan []byte // raw JSON payloads from the host
	Outbound     chan<- []byte // encoded commands back to the host
	TickInterval time.Duration
	Clock        clock.Clock
	Reporter     ErrorReporter
	Logger       golog.Logger
}

// Bridge decodes host events, folds them through the reducer, emits state
// changes for broadcasting, and issues one poll decision per tick.
type Bridge struct {
	inbound  <-chan []byte
	outbound chan<- []byte
	interval time.Duration
	clock    clock.Clock
	reporter ErrorReporter
	logger   golog.Logger
	changes  chan device.State

	mu    sync.RWMutex
	state device.State
}

func New(cfg Config) *Bridge {
	b := &Bridge{
		inbound:  cfg.Inbound,
		outbound: cfg.Outbound,
		interval: cfg.TickInterval,
		clock:    cfg.Clock,
		reporter: cfg.Reporter,
		logger:   cfg.Logger,
		changes:  make(chan device.State, 64),
		state:    device.Initial(),
	}
	if b.clock == nil {
		b.clock = clock.New()
	}
	if b.logger == nil {
		b.logger = golog.Global()
	}
	if b.reporter == nil {
		b.reporter = NewLogReporter(b.logger)
	}
	return b
}

// Changes returns the channel on which state changes are sent.
func (b *Bridge) Changes() <-chan device.State {
	return b.changes
}

// Current returns a snapshot of the current device state.
func (b *Bridge) Current() device.State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Run processes host events and ticks until the context is cancelled or the
// inbound channel closes.
func (b *Bridge) Run(ctx context.Context) {
	ticker := b.clock.Ticker(b.interval)
	defer ticker.Stop()

	b.logger.Infow("bridge running", "tick_interval", b.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-b.inbound:
			if !ok {
				return
			}
			b.handlePayload(payload)
		case <-ticker.C:
			b.handleTick()
		}
	}
}

func (b *Bridge) handlePayload(payload []byte) {
	msg, err := protocol.Decode(payload)
	if err != nil {
		b.reporter.ReportDecodeError(err, payload)
		return
	}

	b.mu.Lock()
	next := device.Reduce(b.state, msg)
	changed := next != b.state
	b.state = next
	b.mu.Unlock()

	if changed {
		b.emit(next)
	}
}

func (b *Bridge) handleTick() {
	req, ok := device.OnTick(b.Current())
	if !ok {
		return
	}

	select {
	case b.outbound <- protocol.EncodePoll(req):
	default:
		// Host is draining slowly; the next tick re-polls anyway.
	}
}

func (b *Bridge) emit(s device.State) {
	select {
	case b.changes <- s:
	default:
		// Drop if the broadcaster is behind to avoid blocking the loop.
	}
}
