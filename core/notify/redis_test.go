package notify

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisHub_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	ctx := context.Background()

	hub, err := NewRedisHub(ctx, client, "signage:test-events", &mockLogger{})
	require.NoError(t, err)
	defer hub.Close()

	ch, cancel := hub.Subscribe(ctx)
	defer cancel()

	require.NoError(t, hub.Publish(ctx, Event{Kind: ScreenCommand, ScreenID: "3", Command: "reload", Data: map[string]interface{}{"force": true}}))

	e := receive(t, ch)
	assert.Equal(t, ScreenCommand, e.Kind)
	assert.Equal(t, "reload", e.Command)
	assert.Equal(t, true, e.Data["force"])
}
