// ABOUTME: Status simulator stands in for real screen telemetry in demos and development
// ABOUTME: Every interval it picks a random screen, applies a random status and publishes it

package notify

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/pkg/utils/duration"
)

// DefaultSimulatorInterval is how often a status change is simulated
const DefaultSimulatorInterval = 10 * time.Second

// StatusSink records a screen status change
type StatusSink interface {
	ApplyStatus(ctx context.Context, e Event) error
}

// SimulatorConfig holds the simulator settings
type SimulatorConfig struct {
	Interval  time.Duration
	ScreenIDs []string

	// Rand and Now make steps reproducible in tests
	Rand *rand.Rand
	Now  func() time.Time
}

// Simulator publishes randomized screen status changes
type Simulator struct {
	sink     StatusSink
	notifier Notifier
	logger   interfaces.Logger
	cfg      SimulatorConfig

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

var simulatedStatuses = []string{domain.StatusOnline, domain.StatusOffline, domain.StatusWarning}

// NewSimulator creates a stopped simulator
func NewSimulator(sink StatusSink, notifier Notifier, logger interfaces.Logger, cfg SimulatorConfig) *Simulator {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSimulatorInterval
	}
	if len(cfg.ScreenIDs) == 0 {
		cfg.ScreenIDs = []string{"1", "2", "3"}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Simulator{sink: sink, notifier: notifier, logger: logger, cfg: cfg}
}

// Next builds the next simulated event without applying it
func (s *Simulator) Next() Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.cfg.Rand
	now := s.cfg.Now()
	e := Event{
		Kind:        ScreenStatusChanged,
		ScreenID:    s.cfg.ScreenIDs[r.Intn(len(s.cfg.ScreenIDs))],
		Status:      simulatedStatuses[r.Intn(len(simulatedStatuses))],
		LastSeen:    now.UTC().Format(time.RFC3339),
		At:          now,
		Uptime:      "0h 0m",
		Temperature: "N/A",
	}
	if e.Status == domain.StatusOnline {
		up := time.Duration(r.Intn(100))*time.Hour + time.Duration(r.Intn(60))*time.Minute
		e.Uptime = duration.FormatUptime(up)
		e.Temperature = fmt.Sprintf("%d°C", r.Intn(20)+30)
	}
	return e
}

// Step simulates one status change
func (s *Simulator) Step(ctx context.Context) (Event, error) {
	e := s.Next()
	if err := s.sink.ApplyStatus(ctx, e); err != nil {
		// The screen may have been deleted; keep simulating the others
		s.logger.Debug("Simulated status not applied", map[string]interface{}{
			"screen_id": e.ScreenID,
			"error":     err.Error(),
		})
		return e, err
	}
	if err := s.notifier.Publish(ctx, e); err != nil {
		return e, err
	}
	return e, nil
}

// Start runs Step every interval until Stop or ctx is done
func (s *Simulator) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	s.logger.Info("Status simulator started", map[string]interface{}{
		"interval": s.cfg.Interval.String(),
	})

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = s.Step(ctx)
			}
		}
	}()
}

// Stop ends the simulation loop and waits for it to exit
func (s *Simulator) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
