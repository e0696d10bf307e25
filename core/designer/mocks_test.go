package designer

import (
	"context"
	"errors"
	"sync"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/layout"
)

type mockStorage struct {
	mu      sync.Mutex
	screens map[string]domain.Screen
	content map[string]domain.Content
	saves   int
	saveErr error

	// beforeSave runs before a layout is written, outside the storage lock
	beforeSave func()
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		screens: map[string]domain.Screen{
			"1": {ID: "1", Name: "Lobby"},
			"2": {ID: "2", Name: "Cafe"},
		},
		content: map[string]domain.Content{
			"2": {ID: "2", Name: "Daily Menu", Type: domain.MediaImage, URL: "https://img.example/menu.jpg"},
		},
	}
}

func (m *mockStorage) Screen(id string) (domain.Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	if !ok {
		return domain.Screen{}, coreerrors.ScreenNotFound(id)
	}
	return s.Clone(), nil
}

func (m *mockStorage) Content(id string) (domain.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.content[id]
	if !ok {
		return domain.Content{}, coreerrors.ContentNotFound(id)
	}
	return c, nil
}

func (m *mockStorage) ContentByName(name string) (domain.Content, bool) {
	return domain.Content{}, false
}

func (m *mockStorage) SetScreenLayout(ctx context.Context, screenID string, l domain.Layout) error {
	if m.beforeSave != nil {
		m.beforeSave()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	s, ok := m.screens[screenID]
	if !ok {
		return coreerrors.ScreenNotFound(screenID)
	}
	if err := layout.Validate(l); err != nil {
		return err
	}
	cp := l.Clone()
	s.Layout = &cp
	m.screens[screenID] = s
	m.saves++
	return nil
}

type mockResolver struct {
	mu    sync.Mutex
	calls map[string]int
	feeds map[string][]domain.ResolvedFeedItem
}

func (m *mockResolver) ResolveFeed(ctx context.Context, url string) []domain.ResolvedFeedItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[url]++
	if items, ok := m.feeds[url]; ok {
		return items
	}
	return []domain.ResolvedFeedItem{domain.FeedErrorItem(fixedNow)}
}

type mockReloader struct {
	mu       sync.Mutex
	reloaded []string
	err      error
}

func (m *mockReloader) Reload(ctx context.Context, screenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloaded = append(m.reloaded, screenID)
	return m.err
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

var errBoom = errors.New("boom")
