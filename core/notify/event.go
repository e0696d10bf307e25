// ABOUTME: Push-notification contract consumed by the player shell and the status simulator
// ABOUTME: Events carry screen status changes, content updates and remote screen commands

package notify

import (
	"context"
	"time"
)

// Kind names an event type on the wire
type Kind string

const (
	ScreenStatusChanged Kind = "screen-status-changed"
	ContentUpdate       Kind = "content-update"
	ScreenCommand       Kind = "screen-command"
)

// Event is one notification. Only the fields of its Kind are set.
type Event struct {
	Kind     Kind      `json:"type"`
	ScreenID string    `json:"screenId"`
	At       time.Time `json:"at"`

	// screen-status-changed
	Status      string `json:"status,omitempty"`
	LastSeen    string `json:"lastSeen,omitempty"`
	Uptime      string `json:"uptime,omitempty"`
	Temperature string `json:"temperature,omitempty"`

	// content-update
	ContentID string `json:"contentId,omitempty"`

	// screen-command
	Command string                 `json:"command,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Notifier publishes events and fans them out to subscribers
type Notifier interface {
	// Publish delivers e to every current subscriber
	Publish(ctx context.Context, e Event) error

	// Subscribe returns a channel of events and a func that ends the subscription.
	// The subscription also ends when ctx is done.
	Subscribe(ctx context.Context) (<-chan Event, func())
}
