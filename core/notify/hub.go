// ABOUTME: In-process notification hub fanning events out to buffered subscriber channels
// ABOUTME: Slow subscribers lose events instead of blocking publishers

package notify

import (
	"context"
	"sync"
	"time"

	"signage-app-api/core/interfaces"
)

// SubscriberBuffer is the channel capacity of each subscription
const SubscriberBuffer = 32

// Hub is the in-memory Notifier
type Hub struct {
	logger interfaces.Logger

	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewHub creates an empty hub
func NewHub(logger interfaces.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[int]chan Event),
	}
}

// Publish delivers e to every subscriber without blocking
func (h *Hub) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- e:
		default:
			if h.logger != nil {
				h.logger.Warn("Dropping event for slow subscriber", map[string]interface{}{
					"subscriber": id,
					"type":       string(e.Kind),
					"screen_id":  e.ScreenID,
				})
			}
		}
	}
	return nil
}

// Subscribe registers a new subscriber
func (h *Hub) Subscribe(ctx context.Context) (<-chan Event, func()) {
	ch := make(chan Event, SubscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			h.remove(id)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return ch, cancel
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Subscribers reports how many subscriptions are open
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close ends every subscription
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
	return nil
}

var _ Notifier = (*Hub)(nil)
