package handlers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"signage-app-api/core/designer"
	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/notify"
	"signage-app-api/core/playback"
	"signage-app-api/core/player"
	"signage-app-api/core/store"
	"signage-app-api/pkg/featureflags"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }

func (m *mockLogger) logged(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, got := range m.messages {
		if got == msg {
			return true
		}
	}
	return false
}

// mockResolver answers every feed with resolveFunc, or with one fixed headline
type mockResolver struct {
	resolveFunc func(ctx context.Context, feedURL string) []domain.ResolvedFeedItem
}

func (m *mockResolver) ResolveFeed(ctx context.Context, feedURL string) []domain.ResolvedFeedItem {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, feedURL)
	}
	return []domain.ResolvedFeedItem{{Title: "Headline", Link: "https://news.example/a", PublishedAt: testNow}}
}

// rejectingPool never queues a job, so sessions fall back immediately and frames are deterministic
type rejectingPool struct{}

func (rejectingPool) Resolve(ctx context.Context, feedURL string, done func([]domain.ResolvedFeedItem)) error {
	return errors.New("pool stopped")
}

type idleTicker struct {
	c chan time.Time
}

func (t idleTicker) C() <-chan time.Time { return t.c }
func (t idleTicker) Stop()               {}

func idleTickers(time.Duration) playback.Ticker {
	return idleTicker{c: make(chan time.Time)}
}

// services wires the real store, player shell and designer the way main does, without persistence
type services struct {
	logger   *mockLogger
	store    *store.Store
	hub      *notify.Hub
	shell    *player.Shell
	designer *designer.Service
}

func newServices(t *testing.T) *services {
	t.Helper()
	logger := &mockLogger{}
	deps := interfaces.Dependencies{Logger: logger}
	flags := featureflags.NewStaticManager(nil)

	s := &services{logger: logger, hub: notify.NewHub(nil)}
	s.store = store.New(deps, testNow)
	s.shell = player.NewShell(deps, s.store, rejectingPool{}, s.hub, flags, player.Config{
		SettleDelay: time.Hour,
		NewTicker:   idleTickers,
		Now:         func() time.Time { return testNow },
	})
	s.designer = designer.NewService(deps, s.store, &mockResolver{}, s.shell, flags)
	t.Cleanup(func() {
		s.shell.CloseAll()
		s.hub.Close()
	})
	return s
}

func (s *services) deps() interfaces.Dependencies {
	return interfaces.Dependencies{Logger: s.logger}
}
