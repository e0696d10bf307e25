// ABOUTME: Session is one open player: a screen, its layout, resolved feeds and live playback
// ABOUTME: Feed callbacks, notifications and the settle timer all mutate it under one lock

package player

import (
	"context"
	"sync"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/layout"
	"signage-app-api/core/notify"
	"signage-app-api/core/playback"
	"signage-app-api/core/render"
	"signage-app-api/pkg/featureflags"
)

// feedState is the resolution state of one feed URL
type feedState struct {
	items   []domain.ResolvedFeedItem
	loading bool
}

// Session plays one screen
type Session struct {
	shell  *Shell
	ctx    context.Context
	cancel context.CancelFunc
	engine *playback.Engine

	mu          sync.Mutex
	screen      domain.Screen
	feeds       map[string]*feedState
	current     *domain.Content
	fullscreen  bool
	lastCommand *notify.Event
	settle      *time.Timer
	closed      bool

	unsubscribe func()
	events      chan struct{}
}

// ScreenID is the screen the session plays
func (s *Session) ScreenID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.ID
}

// Screen returns a copy of the session's screen
func (s *Session) Screen() domain.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Clone()
}

// Fullscreen reports whether the settle delay has passed
func (s *Session) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

// CurrentContent is the content shown full screen when the screen has no layout
func (s *Session) CurrentContent() *domain.Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := s.current.Clone()
	return &c
}

// LastCommand is the most recent screen command addressed to this screen
func (s *Session) LastCommand() *notify.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastCommand == nil {
		return nil
	}
	e := *s.lastCommand
	return &e
}

// Loading reports whether any feed is still being fetched
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.feeds {
		if f.loading {
			return true
		}
	}
	return false
}

// ActiveRotations lists the regions with a running rotation timer
func (s *Session) ActiveRotations() []string {
	return s.engine.Active()
}

// Frame composes what the screen shows at now
func (s *Session) Frame(now time.Time) render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := render.Input{
		Screen:         s.screen,
		Layout:         s.screen.Layout,
		Indices:        s.engine.Indices(),
		Current:        s.current,
		Now:            now,
		SandboxWidgets: s.shell.flags.IsEnabled(s.ctx, featureflags.WidgetSandbox),
	}

	if l := s.screen.Layout; l != nil {
		in.Data = map[string]render.RegionData{
			layout.LeftRegion: s.regionData(l.LeftColumn.Region),
		}
		for i, section := range l.RightColumn.Content {
			in.Data[layout.SectionRef(i)] = s.regionData(section)
		}
		if l.BottomBar.Enabled {
			if f, ok := s.feeds[l.BottomBar.FeedURL()]; ok {
				in.Ticker = render.TickerData{Items: f.items, Loading: f.loading}
			}
		}
	}
	return render.Compose(in)
}

// regionData must be called with s.mu held
func (s *Session) regionData(r domain.Region) render.RegionData {
	var data render.RegionData
	if r.ContentType.NeedsFeed() {
		if f, ok := s.feeds[r.FeedURL()]; ok {
			data.Items = f.items
			data.Loading = f.loading
		} else {
			data.Loading = true
		}
	}
	if r.ContentType == domain.ContentContent && r.ContentID != "" {
		if c, err := s.shell.repo.Content(r.ContentID); err == nil {
			data.Content = &c
		}
	}
	return data
}

// wantedFeeds lists the feed URLs the layout displays, region feeds first
func wantedFeeds(l *domain.Layout) []string {
	if l == nil {
		return nil
	}
	seen := map[string]bool{}
	var urls []string
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	if l.LeftColumn.ContentType.NeedsFeed() {
		add(l.LeftColumn.FeedURL())
	}
	for _, section := range l.RightColumn.Content {
		if section.ContentType.NeedsFeed() {
			add(section.FeedURL())
		}
	}
	if l.BottomBar.Enabled {
		add(l.BottomBar.FeedURL())
	}
	return urls
}

// pendingFeed is a feed registered as loading that still has to be handed to the pool
type pendingFeed struct {
	url   string
	state *feedState
}

// prefetch registers every wanted feed not already known and returns the ones to submit.
// Must be called with s.mu held; submit the result after releasing it.
func (s *Session) prefetch() []pendingFeed {
	wanted := wantedFeeds(s.screen.Layout)
	keep := make(map[string]bool, len(wanted))

	var pending []pendingFeed
	for _, url := range wanted {
		keep[url] = true
		if _, ok := s.feeds[url]; ok {
			continue
		}
		state := &feedState{loading: true}
		s.feeds[url] = state
		pending = append(pending, pendingFeed{url: url, state: state})
	}

	// URL changes drop the old feed; it is fetched again only if it comes back
	for url := range s.feeds {
		if !keep[url] {
			delete(s.feeds, url)
		}
	}
	return pending
}

// submit hands pending feeds to the pool. It may block on a full queue, so it runs without s.mu.
// A feed the pool refuses shows the fallback item.
func (s *Session) submit(pending []pendingFeed) {
	for _, p := range pending {
		p := p
		err := s.shell.pool.Resolve(s.ctx, p.url, func(items []domain.ResolvedFeedItem) {
			s.feedResolved(p.url, p.state, items)
		})
		if err != nil {
			s.shell.logger.Warn("Feed prefetch not queued, showing fallback", map[string]interface{}{
				"screen_id": s.ScreenID(),
				"url":       p.url,
				"error":     err.Error(),
			})
			s.feedResolved(p.url, p.state, []domain.ResolvedFeedItem{domain.FeedErrorItem(s.shell.now())})
		}
	}
}

func (s *Session) feedResolved(url string, state *feedState, items []domain.ResolvedFeedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.feeds[url] != state {
		return
	}
	state.items = items
	state.loading = false
	s.syncPlayback()
}

// syncPlayback must be called with s.mu held
func (s *Session) syncPlayback() {
	l := s.screen.Layout
	if l == nil {
		s.engine.Sync(nil, nil)
		return
	}
	counts := map[string]int{}
	count := func(ref string, r domain.Region) {
		if !r.ContentType.NeedsFeed() {
			return
		}
		if f, ok := s.feeds[r.FeedURL()]; ok && !f.loading {
			counts[ref] = len(f.items)
		}
	}
	count(layout.LeftRegion, l.LeftColumn.Region)
	for i, section := range l.RightColumn.Content {
		count(layout.SectionRef(i), section)
	}
	s.engine.Sync(l, counts)
}

// refresh reloads the screen record and re-syncs feeds and playback
func (s *Session) refresh() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	scr, err := s.shell.repo.Screen(s.screen.ID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.screen = scr
	pending := s.prefetch()
	s.syncPlayback()
	s.mu.Unlock()

	s.submit(pending)
	return nil
}

func (s *Session) listen(events <-chan notify.Event) {
	defer close(s.events)
	for e := range events {
		s.handle(e)
	}
}

func (s *Session) handle(e notify.Event) {
	s.mu.Lock()
	if s.closed || e.ScreenID != s.screen.ID {
		s.mu.Unlock()
		return
	}

	reload := false
	switch e.Kind {
	case notify.ContentUpdate:
		// Unknown content clears the view, matching a lookup that found nothing
		if c, err := s.shell.repo.Content(e.ContentID); err == nil {
			s.current = &c
		} else {
			s.current = nil
		}
	case notify.ScreenStatusChanged:
		s.screen.Status = e.Status
		s.screen.LastSeen = e.LastSeen
		s.screen.Uptime = e.Uptime
		s.screen.Temperature = e.Temperature
	case notify.ScreenCommand:
		cmd := e
		s.lastCommand = &cmd
		reload = e.Command == CommandReload
	}
	s.mu.Unlock()

	s.shell.logger.Debug("Player received event", map[string]interface{}{
		"screen_id": e.ScreenID,
		"type":      string(e.Kind),
	})

	if reload {
		if err := s.refresh(); err != nil {
			s.shell.logger.Warn("Reload command failed", map[string]interface{}{
				"screen_id": e.ScreenID,
				"error":     err.Error(),
			})
		}
	}
}

func (s *Session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.settle.Stop()
	s.mu.Unlock()

	s.cancel()
	s.unsubscribe()
	<-s.events
	s.engine.Stop()
}
