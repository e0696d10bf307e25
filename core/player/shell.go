// ABOUTME: Player shell resolves the active screen, prefetches its feeds and keeps sessions live
// ABOUTME: Owns no layout editing; visual composition is delegated to the renderer

package player

import (
	"context"
	"strings"
	"sync"
	"time"

	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/notify"
	"signage-app-api/core/playback"
	"signage-app-api/pkg/featureflags"
)

// Defaults of the player
const (
	DefaultSettleDelay = 2 * time.Second
	DefaultScreenID    = "1"

	// CommandReload makes an open session re-read its screen
	CommandReload = "reload"
)

// Config holds the player settings
type Config struct {
	// SettleDelay is how long a session waits before going fullscreen
	SettleDelay time.Duration

	// DefaultScreen is opened when no screen id is given
	DefaultScreen string

	// NewTicker drives rotation timers; nil uses real time
	NewTicker playback.TickerFunc

	// Now stamps fallback items; nil uses time.Now
	Now func() time.Time
}

// Shell manages player sessions
type Shell struct {
	repo     interfaces.ScreenRepository
	pool     interfaces.FeedPool
	notifier notify.Notifier
	flags    featureflags.Manager
	logger   interfaces.Logger
	cfg      Config
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewShell creates a shell with no open sessions
func NewShell(deps interfaces.Dependencies, repo interfaces.ScreenRepository, pool interfaces.FeedPool,
	notifier notify.Notifier, flags featureflags.Manager, cfg Config) *Shell {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.DefaultScreen == "" {
		cfg.DefaultScreen = DefaultScreenID
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &Shell{
		repo:     repo,
		pool:     pool,
		notifier: notifier,
		flags:    flags,
		logger:   deps.Logger,
		cfg:      cfg,
		now:      now,
		sessions: make(map[string]*Session),
	}
}

// ResolveScreenID maps an empty id to the default screen
func (sh *Shell) ResolveScreenID(screenID string) string {
	if id := strings.TrimSpace(screenID); id != "" {
		return id
	}
	return sh.cfg.DefaultScreen
}

// Open starts playing a screen. Opening a screen that is already open re-syncs it with
// the stored layout and returns the existing session.
func (sh *Shell) Open(ctx context.Context, screenID string) (*Session, error) {
	id := sh.ResolveScreenID(screenID)

	sh.mu.Lock()
	if s, ok := sh.sessions[id]; ok {
		sh.mu.Unlock()
		if err := s.refresh(); err != nil {
			return nil, err
		}
		return s, nil
	}

	scr, err := sh.repo.Screen(id)
	if err != nil {
		sh.mu.Unlock()
		return nil, err
	}

	// Sessions outlive the request that opened them
	sctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		shell:  sh,
		ctx:    sctx,
		cancel: cancel,
		engine: playback.NewEngine(playback.Options{
			NewTicker: sh.cfg.NewTicker,
			Logger:    sh.logger,
		}),
		screen: scr,
		feeds:  make(map[string]*feedState),
		events: make(chan struct{}),
	}
	if c, ok := sh.repo.ContentByName(scr.CurrentContent); ok {
		s.current = &c
	}

	events, unsubscribe := sh.notifier.Subscribe(sctx)
	s.unsubscribe = unsubscribe
	go s.listen(events)

	s.mu.Lock()
	pending := s.prefetch()
	s.syncPlayback()
	s.settle = time.AfterFunc(sh.cfg.SettleDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.fullscreen = true
		}
	})
	s.mu.Unlock()

	sh.sessions[id] = s
	sh.mu.Unlock()

	// Queueing may wait on a full pool; no lock is held here
	s.submit(pending)

	sh.logger.Info("Player session opened", map[string]interface{}{
		"screen_id":  id,
		"has_layout": scr.Layout != nil,
		"feeds":      len(pending),
	})
	return s, nil
}

// Session returns the open session of a screen
func (sh *Shell) Session(screenID string) (*Session, bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	s, ok := sh.sessions[sh.ResolveScreenID(screenID)]
	return s, ok
}

// Reload re-syncs an open session with the stored screen. Screens without a session are ignored.
func (sh *Shell) Reload(ctx context.Context, screenID string) error {
	s, ok := sh.Session(screenID)
	if !ok {
		return nil
	}
	if err := s.refresh(); err != nil {
		if coreerrors.IsNotFound(err) {
			sh.Close(screenID)
			return nil
		}
		return err
	}
	return nil
}

// Close tears down a screen's session
func (sh *Shell) Close(screenID string) bool {
	id := sh.ResolveScreenID(screenID)

	sh.mu.Lock()
	s, ok := sh.sessions[id]
	delete(sh.sessions, id)
	sh.mu.Unlock()

	if !ok {
		return false
	}
	s.close()
	sh.logger.Info("Player session closed", map[string]interface{}{"screen_id": id})
	return true
}

// CloseAll tears down every session
func (sh *Shell) CloseAll() {
	sh.mu.Lock()
	ids := make([]string, 0, len(sh.sessions))
	for id := range sh.sessions {
		ids = append(ids, id)
	}
	sh.mu.Unlock()

	for _, id := range ids {
		sh.Close(id)
	}
}

// SendContentUpdate tells a screen's player to show a content item
func (sh *Shell) SendContentUpdate(ctx context.Context, screenID, contentID string) error {
	if _, err := sh.repo.Screen(screenID); err != nil {
		return err
	}
	if _, err := sh.repo.Content(contentID); err != nil {
		return err
	}
	return sh.notifier.Publish(ctx, notify.Event{
		Kind:      notify.ContentUpdate,
		ScreenID:  screenID,
		ContentID: contentID,
		At:        sh.now(),
	})
}

// SendCommand forwards a remote command to a screen
func (sh *Shell) SendCommand(ctx context.Context, screenID, command string, data map[string]interface{}) error {
	if strings.TrimSpace(command) == "" {
		return coreerrors.Invalid("command", "command is required")
	}
	if _, err := sh.repo.Screen(screenID); err != nil {
		return err
	}
	return sh.notifier.Publish(ctx, notify.Event{
		Kind:     notify.ScreenCommand,
		ScreenID: screenID,
		Command:  command,
		Data:     data,
		At:       sh.now(),
	})
}

// DefaultScreen is the screen opened when none is named
func (sh *Shell) DefaultScreen() string {
	return sh.cfg.DefaultScreen
}
