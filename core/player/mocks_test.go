package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/playback"
)

type mockRepo struct {
	mu      sync.Mutex
	screens map[string]domain.Screen
	content map[string]domain.Content
}

func newMockRepo() *mockRepo {
	seed := domain.SeedState(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	r := &mockRepo{screens: map[string]domain.Screen{}, content: map[string]domain.Content{}}
	for _, s := range seed.Screens {
		r.screens[s.ID] = s
	}
	for _, c := range seed.Content {
		r.content[c.ID] = c
	}
	return r
}

func (m *mockRepo) setLayout(id string, l domain.Layout) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.screens[id]
	s.Layout = &l
	m.screens[id] = s
}

func (m *mockRepo) Screen(id string) (domain.Screen, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.screens[id]
	if !ok {
		return domain.Screen{}, coreerrors.ScreenNotFound(id)
	}
	return s.Clone(), nil
}

func (m *mockRepo) Content(id string) (domain.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.content[id]
	if !ok {
		return domain.Content{}, coreerrors.ContentNotFound(id)
	}
	return c, nil
}

func (m *mockRepo) ContentByName(name string) (domain.Content, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.content {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Content{}, false
}

type poolJob struct {
	ctx  context.Context
	url  string
	done func([]domain.ResolvedFeedItem)
}

// mockPool queues jobs until the test completes them
type mockPool struct {
	mu   sync.Mutex
	jobs []poolJob
	err  error

	// entered and release make Resolve wait, like a submit on a full queue
	entered chan string
	release chan struct{}
}

func (m *mockPool) Resolve(ctx context.Context, url string, done func([]domain.ResolvedFeedItem)) error {
	if m.release != nil {
		m.entered <- url
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, poolJob{ctx: ctx, url: url, done: done})
	return nil
}

func (m *mockPool) urls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.jobs))
	for i, j := range m.jobs {
		out[i] = j.url
	}
	return out
}

// complete runs the callback of the first pending job for url, the way a worker would
func (m *mockPool) complete(url string, items []domain.ResolvedFeedItem) error {
	m.mu.Lock()
	var job *poolJob
	for i := range m.jobs {
		if m.jobs[i].url == url {
			j := m.jobs[i]
			job = &j
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if job == nil {
		return errors.New("no pending job for " + url)
	}
	if job.ctx.Err() == nil {
		job.done(items)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// idleTicker never fires; rotation behavior is covered by the playback tests
type idleTicker struct {
	c chan time.Time
}

func (t idleTicker) C() <-chan time.Time { return t.c }
func (t idleTicker) Stop()               {}

func idleTickers(time.Duration) playback.Ticker {
	return idleTicker{c: make(chan time.Time)}
}
