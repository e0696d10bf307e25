// ABOUTME: Store is the explicit application state container with load-on-init and save-on-commit
// ABOUTME: State is persisted whole through the injected cache; readers always get deep copies

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/layout"
	"signage-app-api/core/notify"
)

// StateKey is the cache key the whole state is saved under
const StateKey = "signage-app-state"

// Store holds screens, content, schedules and settings
type Store struct {
	cache  interfaces.Cache
	logger interfaces.Logger

	mu    sync.RWMutex
	state domain.AppState
}

// New creates a store seeded with the initial state. Call Load to restore persisted state.
func New(deps interfaces.Dependencies, now time.Time) *Store {
	return &Store{
		cache:  deps.Cache,
		logger: deps.Logger,
		state:  domain.SeedState(now),
	}
}

// Load restores persisted state, merging it over the seed. A missing record keeps the seed.
func (s *Store) Load(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, StateKey)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		s.logger.Info("No persisted state, using seed data", nil)
		return nil
	}
	if err != nil {
		return coreerrors.WrapError(err, "failed to load state")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		// A corrupt record must not take the console down
		s.logger.Warn("Ignoring unreadable persisted state", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	merged := persisted.over(s.state, s.logger)
	s.state = merged

	s.logger.Info("Loaded persisted state", map[string]interface{}{
		"screens":   len(merged.Screens),
		"content":   len(merged.Content),
		"schedules": len(merged.Schedules),
	})
	return nil
}

// screenRecord is a screen as persisted. Its layout goes through the layout codec.
type screenRecord struct {
	domain.Screen
	Layout json.RawMessage `json:"layout,omitempty"`
}

// stateRecord is the persisted form of the whole state
type stateRecord struct {
	Screens   []screenRecord    `json:"screens"`
	Content   []domain.Content  `json:"content"`
	Schedules []domain.Schedule `json:"schedules"`
	Settings  domain.Settings   `json:"settings"`
}

func encodeState(state domain.AppState) (stateRecord, error) {
	rec := stateRecord{
		Screens:   make([]screenRecord, 0, len(state.Screens)),
		Content:   state.Content,
		Schedules: state.Schedules,
		Settings:  state.Settings,
	}
	for _, scr := range state.Screens {
		r := screenRecord{Screen: scr}
		r.Screen.Layout = nil
		if scr.Layout != nil {
			data, err := layout.Encode(*scr.Layout)
			if err != nil {
				return stateRecord{}, err
			}
			r.Layout = data
		}
		rec.Screens = append(rec.Screens, r)
	}
	return rec, nil
}

// persistedState detects which top-level keys a stored record carries
type persistedState struct {
	Screens   *[]screenRecord    `json:"screens"`
	Content   *[]domain.Content  `json:"content"`
	Schedules *[]domain.Schedule `json:"schedules"`
	Settings  *domain.Settings   `json:"settings"`
}

// over replaces each top-level key of seed that the record carries. A screen whose layout
// cannot be decoded keeps its record and loses only the layout.
func (p persistedState) over(seed domain.AppState, logger interfaces.Logger) domain.AppState {
	out := seed.Clone()
	if p.Screens != nil {
		out.Screens = make([]domain.Screen, 0, len(*p.Screens))
		for _, rec := range *p.Screens {
			scr := rec.Screen
			scr.Layout = nil
			if len(rec.Layout) > 0 && string(rec.Layout) != "null" {
				l, err := layout.Decode(rec.Layout)
				if err != nil {
					logger.Warn("Dropping unreadable screen layout", map[string]interface{}{
						"screen_id": scr.ID,
						"error":     err.Error(),
					})
				} else {
					scr.Layout = &l
				}
			}
			out.Screens = append(out.Screens, scr)
		}
	}
	if p.Content != nil {
		out.Content = *p.Content
	}
	if p.Schedules != nil {
		out.Schedules = *p.Schedules
	}
	if p.Settings != nil {
		out.Settings = *p.Settings
	}
	return out
}

// Dispatch applies an action and commits the result. On any failure the state is unchanged.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := action.apply(&next); err != nil {
		return err
	}
	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// save must be called with s.mu held
func (s *Store) save(ctx context.Context, state domain.AppState) error {
	if s.cache == nil {
		return nil
	}
	rec, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := s.cache.Set(ctx, StateKey, data, 0); err != nil {
		s.logger.Error("Failed to persist state", map[string]interface{}{
			"error": err.Error(),
		})
		return coreerrors.WrapError(err, "failed to persist state")
	}
	return nil
}

// Snapshot returns a deep copy of the whole state
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Screens returns every screen
func (s *Store) Screens() []domain.Screen {
	return s.Snapshot().Screens
}

// Screen returns one screen
func (s *Store) Screen(id string) (domain.Screen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, scr := range s.state.Screens {
		if scr.ID == id {
			return scr.Clone(), nil
		}
	}
	return domain.Screen{}, coreerrors.ScreenNotFound(id)
}

// Contents returns the content library
func (s *Store) Contents() []domain.Content {
	return s.Snapshot().Content
}

// Content returns one content item
func (s *Store) Content(id string) (domain.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Content {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return domain.Content{}, coreerrors.ContentNotFound(id)
}

// ContentByName finds a content item by its display name
func (s *Store) ContentByName(name string) (domain.Content, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Content {
		if c.Name == name {
			return c.Clone(), true
		}
	}
	return domain.Content{}, false
}

// Schedules returns every schedule
func (s *Store) Schedules() []domain.Schedule {
	return s.Snapshot().Schedules
}

// Settings returns the console settings
func (s *Store) Settings() domain.Settings {
	return s.Snapshot().Settings
}

// SetScreenLayout stores l on the screen and commits
func (s *Store) SetScreenLayout(ctx context.Context, screenID string, l domain.Layout) error {
	return s.Dispatch(ctx, SetScreenLayout{ScreenID: screenID, Layout: l})
}

// ApplyStatus records a screen status change event on the screen
func (s *Store) ApplyStatus(ctx context.Context, e notify.Event) error {
	return s.Dispatch(ctx, UpdateScreen{ID: e.ScreenID, Patch: ScreenPatch{
		Status:      &e.Status,
		LastSeen:    &e.LastSeen,
		Uptime:      &e.Uptime,
		Temperature: &e.Temperature,
	}})
}

// Analytics derives the dashboard counters from the current state
func (s *Store) Analytics() domain.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := domain.Analytics{
		TotalScreens:   len(s.state.Screens),
		TotalContent:   len(s.state.Content),
		TotalSchedules: len(s.state.Schedules),
	}
	for _, scr := range s.state.Screens {
		if scr.Status == domain.StatusOnline {
			a.OnlineScreens++
		}
	}
	return a
}

var (
	_ interfaces.LayoutStorage = (*Store)(nil)
	_ notify.StatusSink        = (*Store)(nil)
)
