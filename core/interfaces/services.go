// ABOUTME: Service interfaces shared between the renderer, player and designer
// ABOUTME: Lets callers swap the live feed resolver for fakes in tests

package interfaces

import (
	"context"

	"signage-app-api/core/domain"
)

// FeedResolver turns a feed URL into display items. Implementations never return an empty slice.
type FeedResolver interface {
	ResolveFeed(ctx context.Context, feedURL string) []domain.ResolvedFeedItem
}

// FeedPool resolves feeds in the background and reports through done.
// done runs on another goroutine. An error means the job was not queued and done will never run.
type FeedPool interface {
	Resolve(ctx context.Context, feedURL string, done func([]domain.ResolvedFeedItem)) error
}
