package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/layout"
	"signage-app-api/core/notify"
	"signage-app-api/core/render"
	"signage-app-api/pkg/featureflags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frameTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	leftFeed   = "https://feeds.example/left"
	tickerFeed = "https://feeds.example/ticker"
)

type fixture struct {
	repo  *mockRepo
	pool  *mockPool
	hub   *notify.Hub
	flags *featureflags.StaticManager
	shell *Shell
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{
		repo:  newMockRepo(),
		pool:  &mockPool{},
		hub:   notify.NewHub(nil),
		flags: featureflags.NewStaticManager(nil),
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = time.Hour
	}
	cfg.NewTicker = idleTickers
	cfg.Now = func() time.Time { return frameTime }
	f.shell = NewShell(interfaces.Dependencies{Logger: &mockLogger{}}, f.repo, f.pool, f.hub, f.flags, cfg)
	t.Cleanup(f.shell.CloseAll)
	return f
}

func feedLayout() domain.Layout {
	l := layout.Default()
	l.LeftColumn.ContentType = domain.ContentRSSSlideshow
	l.LeftColumn.RSSURL = leftFeed
	l.BottomBar.RSSURL = tickerFeed
	return l
}

func items(n int) []domain.ResolvedFeedItem {
	out := make([]domain.ResolvedFeedItem, n)
	for i := range out {
		out[i] = domain.ResolvedFeedItem{Title: string(rune('A' + i)), Link: "https://n.example", ImageURL: "https://img.example/x.jpg"}
	}
	return out
}

func TestShell_OpenDefaultScreenWithoutLayout(t *testing.T) {
	f := newFixture(t, Config{})

	s, err := f.shell.Open(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultScreenID, s.ScreenID())

	frame := s.Frame(frameTime)
	require.NotNil(t, frame.Default)
	// screen 1 reports "Welcome Presentation", a video
	assert.Equal(t, render.ViewVideo, frame.Default.Kind)
	assert.Nil(t, frame.Left)
	assert.Empty(t, f.pool.urls())
}

func TestShell_OpenUnknownScreen(t *testing.T) {
	f := newFixture(t, Config{})

	_, err := f.shell.Open(context.Background(), "404")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestShell_PrefetchShowsLoadingThenItems(t *testing.T) {
	f := newFixture(t, Config{})
	f.repo.setLayout("1", feedLayout())

	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{leftFeed, tickerFeed}, f.pool.urls())
	assert.True(t, s.Loading())

	frame := s.Frame(frameTime)
	require.NotNil(t, frame.Left)
	assert.Equal(t, render.ViewLoading, frame.Left.Kind)
	require.NotNil(t, frame.Ticker)
	assert.True(t, frame.Ticker.Loading)
	assert.Empty(t, s.ActiveRotations())

	require.NoError(t, f.pool.complete(leftFeed, items(3)))
	require.NoError(t, f.pool.complete(tickerFeed, items(2)))

	assert.False(t, s.Loading())
	frame = s.Frame(frameTime)
	assert.Equal(t, render.ViewSlide, frame.Left.Kind)
	assert.Equal(t, 3, frame.Left.Count)
	assert.Equal(t, []string{"A", "B"}, frame.Ticker.Headlines)
	assert.Equal(t, []string{layout.LeftRegion}, s.ActiveRotations())
}

func TestShell_SharedFeedFetchedOnce(t *testing.T) {
	f := newFixture(t, Config{})
	l := feedLayout()
	l.RightColumn.Content[0] = domain.Region{ContentType: domain.ContentRSS, RSSURL: leftFeed}
	l.BottomBar.RSSURL = leftFeed
	f.repo.setLayout("1", l)

	_, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, []string{leftFeed}, f.pool.urls())
}

func TestShell_PoolRejectionFallsBack(t *testing.T) {
	f := newFixture(t, Config{})
	f.pool.err = errors.New("job queue is full")
	f.repo.setLayout("1", feedLayout())

	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	assert.False(t, s.Loading())
	frame := s.Frame(frameTime)
	assert.Equal(t, domain.FeedErrorTitle, frame.Left.Title)
	assert.True(t, frame.Ticker.Sample)
}

func TestShell_ContentUpdateSignal(t *testing.T) {
	f := newFixture(t, Config{})
	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	// another screen's update is ignored
	require.NoError(t, f.shell.SendContentUpdate(context.Background(), "3", "2"))
	require.NoError(t, f.shell.SendContentUpdate(context.Background(), "1", "2"))

	require.Eventually(t, func() bool {
		c := s.CurrentContent()
		return c != nil && c.ID == "2"
	}, time.Second, 5*time.Millisecond)

	frame := s.Frame(frameTime)
	assert.Equal(t, render.ViewImage, frame.Default.Kind)
}

func TestShell_SendContentUpdateValidates(t *testing.T) {
	f := newFixture(t, Config{})

	err := f.shell.SendContentUpdate(context.Background(), "1", "404")
	assert.True(t, coreerrors.IsNotFound(err))
	err = f.shell.SendContentUpdate(context.Background(), "404", "1")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestShell_StatusSignalUpdatesScreen(t *testing.T) {
	f := newFixture(t, Config{})
	s, err := f.shell.Open(context.Background(), "2")
	require.NoError(t, err)

	require.NoError(t, f.hub.Publish(context.Background(), notify.Event{
		Kind: notify.ScreenStatusChanged, ScreenID: "2", Status: domain.StatusOnline, Uptime: "1h 2m",
	}))

	require.Eventually(t, func() bool { return s.Screen().Status == domain.StatusOnline }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "1h 2m", s.Screen().Uptime)
}

func TestShell_SettleTimerEntersFullscreen(t *testing.T) {
	f := newFixture(t, Config{SettleDelay: 10 * time.Millisecond})
	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	assert.False(t, s.Fullscreen())
	require.Eventually(t, s.Fullscreen, time.Second, 5*time.Millisecond)
}

func TestShell_ReloadAfterLayoutChange(t *testing.T) {
	f := newFixture(t, Config{})
	f.repo.setLayout("1", feedLayout())
	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)
	require.NoError(t, f.pool.complete(leftFeed, items(3)))
	require.NoError(t, f.pool.complete(tickerFeed, items(1)))
	require.Equal(t, []string{layout.LeftRegion}, s.ActiveRotations())

	// switching the left column to a custom feed cancels its rotation until the new feed lands
	l := feedLayout()
	l.LeftColumn.CustomRSSURL = "https://feeds.example/custom"
	f.repo.setLayout("1", l)
	require.NoError(t, f.shell.Reload(context.Background(), "1"))

	assert.Equal(t, []string{"https://feeds.example/custom"}, f.pool.urls())
	assert.Empty(t, s.ActiveRotations())
	assert.Equal(t, render.ViewLoading, s.Frame(frameTime).Left.Kind)

	// re-opening returns the same session
	again, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestShell_FrameWhileQueueIsFull(t *testing.T) {
	f := newFixture(t, Config{})
	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	f.pool.entered = make(chan string, 1)
	f.pool.release = make(chan struct{})
	f.repo.setLayout("1", feedLayout())

	reloaded := make(chan error, 1)
	go func() { reloaded <- f.shell.Reload(context.Background(), "1") }()

	select {
	case <-f.pool.entered:
	case <-time.After(time.Second):
		t.Fatal("reload never reached the pool")
	}

	framed := make(chan render.Frame, 1)
	go func() { framed <- s.Frame(frameTime) }()
	select {
	case frame := <-framed:
		require.NotNil(t, frame.Left)
		assert.Equal(t, render.ViewLoading, frame.Left.Kind)
	case <-time.After(time.Second):
		t.Fatal("frame blocked behind a pending submit")
	}

	f.pool.release <- struct{}{}
	<-f.pool.entered
	close(f.pool.release)
	require.NoError(t, <-reloaded)
	assert.Len(t, f.pool.urls(), 2)
}

func TestShell_ReloadCommand(t *testing.T) {
	f := newFixture(t, Config{})
	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)

	f.repo.setLayout("1", feedLayout())
	require.NoError(t, f.shell.SendCommand(context.Background(), "1", CommandReload, nil))

	require.Eventually(t, func() bool { return len(f.pool.urls()) == 2 }, time.Second, 5*time.Millisecond)
	require.NotNil(t, s.LastCommand())
	assert.Equal(t, CommandReload, s.LastCommand().Command)

	err = f.shell.SendCommand(context.Background(), "1", " ", nil)
	assert.True(t, coreerrors.IsValidation(err))
}

func TestShell_CloseTearsDown(t *testing.T) {
	f := newFixture(t, Config{})
	f.repo.setLayout("1", feedLayout())
	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 1, f.hub.Subscribers())

	assert.True(t, f.shell.Close("1"))
	assert.False(t, f.shell.Close("1"))

	_, ok := f.shell.Session("1")
	assert.False(t, ok)
	assert.Equal(t, 0, f.hub.Subscribers())

	// late feed results are dropped
	require.NoError(t, f.pool.complete(leftFeed, items(3)))
	assert.Equal(t, render.ViewLoading, s.Frame(frameTime).Left.Kind)
	assert.Empty(t, s.ActiveRotations())
}

func TestShell_ReloadIgnoresClosedAndDeletedScreens(t *testing.T) {
	f := newFixture(t, Config{})
	assert.NoError(t, f.shell.Reload(context.Background(), "1"))

	_, err := f.shell.Open(context.Background(), "2")
	require.NoError(t, err)

	f.repo.mu.Lock()
	delete(f.repo.screens, "2")
	f.repo.mu.Unlock()

	assert.NoError(t, f.shell.Reload(context.Background(), "2"))
	_, ok := f.shell.Session("2")
	assert.False(t, ok)
}

func TestShell_WidgetSandboxFlag(t *testing.T) {
	f := newFixture(t, Config{})
	l := layout.Default()
	l.LeftColumn.ContentType = domain.ContentWidget
	l.LeftColumn.WidgetCode = "<b>hi</b>"
	l.BottomBar.Enabled = false
	f.repo.setLayout("1", l)

	s, err := f.shell.Open(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, s.Frame(frameTime).Left.Sandboxed)

	f.flags.SetEnabled(featureflags.WidgetSandbox, true)
	assert.True(t, s.Frame(frameTime).Left.Sandboxed)
}
