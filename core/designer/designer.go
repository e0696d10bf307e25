// ABOUTME: Designer holds per-screen layout drafts, previews them with live feeds and saves them
// ABOUTME: The designer is the single writer of layouts; players only ever read saved snapshots

package designer

import (
	"context"
	"sync"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/layout"
	"signage-app-api/core/render"
	"signage-app-api/pkg/featureflags"

	"golang.org/x/sync/errgroup"
)

// Edit is one copy-on-write change to a layout
type Edit func(l domain.Layout) (domain.Layout, error)

// Reloader re-syncs a playing screen after its layout was saved
type Reloader interface {
	Reload(ctx context.Context, screenID string) error
}

// draft is an unsaved layout
type draft struct {
	layout   domain.Layout
	openedAt time.Time
	dirty    bool
	edits    int
}

// Service edits screen layouts
type Service struct {
	storage  interfaces.LayoutStorage
	resolver interfaces.FeedResolver
	player   Reloader
	flags    featureflags.Manager
	logger   interfaces.Logger
	now      func() time.Time

	mu     sync.Mutex
	drafts map[string]*draft
}

// NewService creates a designer. player may be nil when no screens are playing in-process.
func NewService(deps interfaces.Dependencies, storage interfaces.LayoutStorage, resolver interfaces.FeedResolver,
	player Reloader, flags featureflags.Manager) *Service {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &Service{
		storage:  storage,
		resolver: resolver,
		player:   player,
		flags:    flags,
		logger:   deps.Logger,
		now:      time.Now,
		drafts:   make(map[string]*draft),
	}
}

// Stored returns the screen's saved layout, or the default one if it was never designed
func (s *Service) Stored(screenID string) (domain.Layout, bool, error) {
	scr, err := s.storage.Screen(screenID)
	if err != nil {
		return domain.Layout{}, false, err
	}
	if scr.Layout == nil {
		return layout.Default(), false, nil
	}
	return scr.Layout.Clone(), true, nil
}

// Open starts (or resumes) a draft of the screen's layout
func (s *Service) Open(ctx context.Context, screenID string) (domain.Layout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.drafts[screenID]; ok {
		return d.layout.Clone(), nil
	}
	l, _, err := s.Stored(screenID)
	if err != nil {
		return domain.Layout{}, err
	}
	s.drafts[screenID] = &draft{layout: l, openedAt: s.now()}
	return l.Clone(), nil
}

// Draft returns the open draft of a screen
func (s *Service) Draft(screenID string) (domain.Layout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[screenID]
	if !ok {
		return domain.Layout{}, false
	}
	return d.layout.Clone(), true
}

// Apply runs edit on the screen's draft, opening one if needed. A failed edit leaves the draft unchanged.
func (s *Service) Apply(ctx context.Context, screenID string, edit Edit) (domain.Layout, error) {
	if _, err := s.Open(ctx, screenID); err != nil {
		return domain.Layout{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[screenID]
	if !ok {
		// Discarded between Open and here
		return domain.Layout{}, errDraftGone(screenID)
	}
	next, err := edit(d.layout)
	if err != nil {
		return domain.Layout{}, err
	}
	d.layout = next
	d.dirty = true
	d.edits++
	return next.Clone(), nil
}

// Save persists the draft on the screen record and re-syncs the screen's player.
// Edits applied while the save is in flight stay in the draft.
func (s *Service) Save(ctx context.Context, screenID string) (domain.Layout, error) {
	s.mu.Lock()
	d, ok := s.drafts[screenID]
	if !ok {
		s.mu.Unlock()
		return domain.Layout{}, errDraftGone(screenID)
	}
	snapshot := d.layout.Clone()
	edits := d.edits
	s.mu.Unlock()

	saved, err := s.persist(ctx, screenID, snapshot)
	if err != nil {
		return domain.Layout{}, err
	}

	s.mu.Lock()
	if s.drafts[screenID] == d && d.edits == edits {
		delete(s.drafts, screenID)
	}
	s.mu.Unlock()
	return saved, nil
}

// Discard drops the draft without saving
func (s *Service) Discard(screenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[screenID]
	delete(s.drafts, screenID)
	return ok
}

// Update applies edit directly to the stored layout and saves it. Drafts are left alone.
func (s *Service) Update(ctx context.Context, screenID string, edit Edit) (domain.Layout, error) {
	l, _, err := s.Stored(screenID)
	if err != nil {
		return domain.Layout{}, err
	}
	next, err := edit(l)
	if err != nil {
		return domain.Layout{}, err
	}
	return s.persist(ctx, screenID, next)
}

func (s *Service) persist(ctx context.Context, screenID string, l domain.Layout) (domain.Layout, error) {
	l = layout.Normalize(l)
	if err := s.storage.SetScreenLayout(ctx, screenID, l); err != nil {
		return domain.Layout{}, err
	}

	s.logger.Info("Layout saved", map[string]interface{}{
		"screen_id": screenID,
		"sections":  l.RightColumn.Sections,
		"left_type": string(l.LeftColumn.ContentType),
	})

	if s.player != nil {
		if err := s.player.Reload(ctx, screenID); err != nil {
			s.logger.Warn("Player reload after save failed", map[string]interface{}{
				"screen_id": screenID,
				"error":     err.Error(),
			})
		}
	}
	return l, nil
}

// Preview renders the draft with freshly resolved feeds. Rotation indices follow the time
// elapsed since the draft was opened.
func (s *Service) Preview(ctx context.Context, screenID string, now time.Time) (render.Frame, error) {
	l, err := s.Open(ctx, screenID)
	if err != nil {
		return render.Frame{}, err
	}
	scr, err := s.storage.Screen(screenID)
	if err != nil {
		return render.Frame{}, err
	}

	s.mu.Lock()
	openedAt := now
	if d, ok := s.drafts[screenID]; ok {
		openedAt = d.openedAt
	}
	s.mu.Unlock()

	feeds, err := s.resolveAll(ctx, l)
	if err != nil {
		return render.Frame{}, err
	}

	in := render.Input{
		Screen:         scr,
		Layout:         &l,
		Data:           map[string]render.RegionData{},
		Indices:        map[string]int{},
		Now:            now,
		SandboxWidgets: s.flags.IsEnabled(ctx, featureflags.WidgetSandbox),
	}
	elapsed := now.Sub(openedAt)
	addRegion := func(ref string, r domain.Region) {
		data := render.RegionData{}
		count := len(r.Images)
		if r.ContentType.NeedsFeed() {
			data.Items = feeds[r.FeedURL()]
			count = len(data.Items)
		}
		if r.ContentType == domain.ContentContent && r.ContentID != "" {
			if c, err := s.storage.Content(r.ContentID); err == nil {
				data.Content = &c
			}
		}
		in.Data[ref] = data
		if idx, ok := render.RotationIndex(elapsed, r.Options.TransitionTime, count); ok && r.ContentType.Rotates() {
			in.Indices[ref] = idx
		}
	}
	addRegion(layout.LeftRegion, l.LeftColumn.Region)
	for i, section := range l.RightColumn.Content {
		addRegion(layout.SectionRef(i), section)
	}
	if l.BottomBar.Enabled {
		in.Ticker = render.TickerData{Items: feeds[l.BottomBar.FeedURL()]}
	}
	return render.Compose(in), nil
}

// resolveAll fetches every feed the layout shows in parallel
func (s *Service) resolveAll(ctx context.Context, l domain.Layout) (map[string][]domain.ResolvedFeedItem, error) {
	var urls []string
	seen := map[string]bool{}
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	if l.LeftColumn.ContentType.NeedsFeed() {
		add(l.LeftColumn.FeedURL())
	}
	for _, r := range l.RightColumn.Content {
		if r.ContentType.NeedsFeed() {
			add(r.FeedURL())
		}
	}
	if l.BottomBar.Enabled {
		add(l.BottomBar.FeedURL())
	}

	results := make([][]domain.ResolvedFeedItem, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = s.resolver.ResolveFeed(gctx, u)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]domain.ResolvedFeedItem, len(urls))
	for i, u := range urls {
		out[u] = results[i]
	}
	return out, nil
}
