package workers

import (
	"context"
	"sync"

	"signage-app-api/core/domain"
)

type mockResolver struct {
	ResolveFeedFunc func(ctx context.Context, url string) []domain.ResolvedFeedItem

	mu    sync.Mutex
	calls []string
}

func (m *mockResolver) ResolveFeed(ctx context.Context, url string) []domain.ResolvedFeedItem {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.ResolveFeedFunc != nil {
		return m.ResolveFeedFunc(ctx, url)
	}
	return []domain.ResolvedFeedItem{{Title: url}}
}

func (m *mockResolver) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
