// ABOUTME: Redis-backed Notifier so status and content events reach every API instance
// ABOUTME: Events go out as JSON on one pub/sub channel and come back through a local hub

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"signage-app-api/core/interfaces"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel events travel on
const DefaultChannel = "signage:events"

// RedisHub publishes through Redis and fans received events out locally
type RedisHub struct {
	client  *redis.Client
	channel string
	logger  interfaces.Logger
	local   *Hub

	pubsub *redis.PubSub
	done   chan struct{}
	once   sync.Once
}

// NewRedisHub subscribes to channel and starts relaying. An empty channel uses DefaultChannel.
func NewRedisHub(ctx context.Context, client *redis.Client, channel string, logger interfaces.Logger) (*RedisHub, error) {
	if channel == "" {
		channel = DefaultChannel
	}

	pubsub := client.Subscribe(ctx, channel)
	// Wait for the subscription to be confirmed so no early publish is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	h := &RedisHub{
		client:  client,
		channel: channel,
		logger:  logger,
		local:   NewHub(logger),
		pubsub:  pubsub,
		done:    make(chan struct{}),
	}
	go h.relay()
	return h, nil
}

func (h *RedisHub) relay() {
	defer close(h.done)

	for msg := range h.pubsub.Channel() {
		var e Event
		if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
			h.logger.Warn("Ignoring malformed event", map[string]interface{}{
				"channel": msg.Channel,
				"error":   err.Error(),
			})
			continue
		}
		_ = h.local.Publish(context.Background(), e)
	}
}

// Publish sends e to every instance subscribed to the channel, this one included
func (h *RedisHub) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := h.client.Publish(ctx, h.channel, payload).Err(); err != nil {
		h.logger.Error("Failed to publish event", map[string]interface{}{
			"type":      string(e.Kind),
			"screen_id": e.ScreenID,
			"error":     err.Error(),
		})
		return err
	}
	return nil
}

// Subscribe registers a local subscriber
func (h *RedisHub) Subscribe(ctx context.Context) (<-chan Event, func()) {
	return h.local.Subscribe(ctx)
}

// Close unsubscribes from Redis and ends local subscriptions. The client stays open.
func (h *RedisHub) Close() error {
	var err error
	h.once.Do(func() {
		err = h.pubsub.Close()
		<-h.done
		h.local.Close()
	})
	return err
}

var _ Notifier = (*RedisHub)(nil)
