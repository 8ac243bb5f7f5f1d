package api

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/punchlinehq/punchline-core/internal/infrastructure/config"
	"github.com/punchlinehq/punchline-core/internal/infrastructure/influxdb"
	"github.com/punchlinehq/punchline-core/internal/infrastructure/logging"
	"github.com/punchlinehq/punchline-core/internal/joke"
)

// heartbeatMessage is the liveness marker written to every subscriber at
// the configured interval.
var heartbeatMessage = []byte(`{"type":"heartbeat"}`)

// Hub maintains the membership set of open subscriber channels and
// delivers published jokes to all of them.
//
// Delivery is best-effort and non-blocking: a subscriber whose buffer is
// full (or whose channel is gone) is dropped from the membership set as
// part of the same publish call, without affecting the other subscribers
// or the publisher. Heartbeat failures trigger the same removal, so the
// set self-heals without a separate sweep.
type Hub struct {
	cfg    config.WebSocketConfig
	logger *logging.Logger
	influx *influxdb.Client // optional fan-out telemetry

	subscribers map[*Subscriber]struct{}
	mu          sync.RWMutex
}

// Subscriber is one open delivery channel to a realtime client.
//
// The hub owns the channel for the duration of membership: it is the only
// component that writes to it or removes it. Receive drains outbound
// messages; once the hub drops the subscriber the channel is closed.
type Subscriber struct {
	// ID identifies the subscriber in logs.
	ID string

	send chan []byte
	stop chan struct{} // closed exactly once, when the subscriber is removed
}

// Receive returns the subscriber's outbound message stream.
// The channel is closed when the hub removes the subscriber.
func (sub *Subscriber) Receive() <-chan []byte {
	return sub.send
}

// trySend attempts a non-blocking write to the subscriber's channel.
// Returns false when the buffer is full. A send on a channel closed by a
// concurrent unsubscribe is absorbed and also reported as failure.
func (sub *Subscriber) trySend(data []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	select {
	case sub.send <- data:
		return true
	default:
		return false
	}
}

// NewHub creates a new broadcast hub. The influx client may be nil.
func NewHub(cfg config.WebSocketConfig, logger *logging.Logger, influx *influxdb.Client) *Hub {
	return &Hub{
		cfg:         cfg,
		logger:      logger,
		influx:      influx,
		subscribers: make(map[*Subscriber]struct{}),
	}
}

// Run blocks until the context is cancelled, then drops all subscribers.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.closeAll()
}

// Subscribe creates a new open subscriber channel, adds it to the
// membership set, and arms its heartbeat timer. The caller keeps the
// underlying connection alive and drains Receive until it closes.
func (h *Hub) Subscribe() *Subscriber {
	bufSize := h.cfg.SendBufferSize
	if bufSize < 1 {
		bufSize = 1
	}

	sub := &Subscriber{
		ID:   uuid.NewString(),
		send: make(chan []byte, bufSize),
		stop: make(chan struct{}),
	}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	go h.heartbeatLoop(sub)

	h.logger.Debug("subscriber joined", "subscriber", sub.ID, "total", h.SubscriberCount())
	return sub
}

// Unsubscribe removes a subscriber from the membership set, cancels its
// heartbeat, and closes its channel. Safe to call multiple times and
// concurrently with Publish; only the call that actually removes the
// subscriber closes the channels, so double unsubscribe is a no-op.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	_, existed := h.subscribers[sub]
	delete(h.subscribers, sub)
	h.mu.Unlock()

	if existed {
		close(sub.stop)
		close(sub.send)
		h.logger.Debug("subscriber left", "subscriber", sub.ID, "total", h.SubscriberCount())
	}
}

// Publish serializes the joke and delivers it to every current subscriber.
//
// A failed write drops the offending subscriber within the same call and
// never aborts delivery to the rest; the publisher never sees the failure.
func (h *Hub) Publish(j *joke.Joke) {
	data, err := json.Marshal(j)
	if err != nil {
		h.logger.Error("failed to marshal joke for broadcast", "error", err)
		return
	}

	h.broadcast(data)
}

// broadcast writes data to every subscriber, removing any that fail.
// The membership set is snapshotted under the read lock, so removal during
// iteration never corrupts the set and no subscriber is delivered twice.
func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	subs := make([]*Subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	delivered, dropped := 0, 0
	for _, sub := range subs {
		if sub.trySend(data) {
			delivered++
		} else {
			h.Unsubscribe(sub)
			dropped++
		}
	}

	if dropped > 0 {
		h.logger.Warn("dropped unresponsive subscribers during broadcast", "dropped", dropped)
	}
	if h.influx != nil {
		h.influx.WriteBroadcastMetric(delivered, dropped)
	}
}

// SubscriberCount returns the number of open subscriber channels.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// heartbeatLoop writes a liveness marker to the subscriber at the
// configured interval. A failed heartbeat drops the subscriber just like
// a failed publish. Exits when the subscriber is removed.
func (h *Hub) heartbeatLoop(sub *Subscriber) {
	interval := time.Duration(h.cfg.HeartbeatInterval) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stop:
			return
		case <-ticker.C:
			if !sub.trySend(heartbeatMessage) {
				h.Unsubscribe(sub)
				return
			}
		}
	}
}

// closeAll drops every subscriber, closing their channels so reader
// goroutines can exit cleanly.
func (h *Hub) closeAll() {
	h.mu.Lock()
	subs := make([]*Subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
		delete(h.subscribers, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		close(sub.stop)
		close(sub.send)
	}
}
