package notify

import (
	"context"
	"sync"
)

type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	m.warns = append(m.warns, msg)
	m.mu.Unlock()
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockSink struct {
	ApplyStatusFunc func(ctx context.Context, e Event) error

	mu      sync.Mutex
	applied []Event
}

func (m *mockSink) ApplyStatus(ctx context.Context, e Event) error {
	if m.ApplyStatusFunc != nil {
		if err := m.ApplyStatusFunc(ctx, e); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.applied = append(m.applied, e)
	m.mu.Unlock()
	return nil
}
