package render

import (
	"strings"
	"testing"

	"signage-app-api/core/domain"
	"signage-app-api/core/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegions(t *testing.T) {
	l := layout.Default()

	s := Regions(l)
	assert.Equal(t, 70, s.LeftWidth)
	assert.Equal(t, 30, s.RightWidth)
	assert.Equal(t, 50.0, s.SectionHeight)
	assert.Equal(t, "calc(100% - 80px)", s.ColumnHeight)
	assert.Equal(t, 80, s.BottomBarHeight)

	l, _ = layout.SetSectionCount(l, 3)
	l.BottomBar.Enabled = false
	s = Regions(l)
	assert.Equal(t, 33.333, s.SectionHeight)
	assert.Equal(t, "100%", s.ColumnHeight)
	assert.Equal(t, 0, s.BottomBarHeight)
}

func TestBuildTicker(t *testing.T) {
	bar := domain.BottomBar{Enabled: true, Height: 80, ScrollSpeed: 50, ContentType: domain.ContentRSS}

	// 200 characters of headlines at 50 chars/s scroll in 4 seconds
	items := []domain.ResolvedFeedItem{{Title: strings.Repeat("h", 100)}, {Title: strings.Repeat("h", 97)}}
	ticker := BuildTicker(bar, TickerData{Items: items})
	assert.False(t, ticker.Sample)
	assert.Equal(t, 200, len([]rune(ticker.Text)))
	assert.Equal(t, 4.0, ticker.DurationSeconds)
	assert.Equal(t, 80, ticker.Height)
}

func TestBuildTicker_FallsBackToSamples(t *testing.T) {
	bar := domain.BottomBar{Enabled: true, Height: 80, ScrollSpeed: 50}

	failed := BuildTicker(bar, TickerData{Items: []domain.ResolvedFeedItem{domain.FeedErrorItem(fixedNow)}})
	assert.True(t, failed.Sample)
	assert.Equal(t, domain.SampleHeadlines, failed.Headlines)

	loading := BuildTicker(bar, TickerData{Loading: true})
	assert.True(t, loading.Sample)
	assert.True(t, loading.Loading)
}

func TestCompose(t *testing.T) {
	l := layout.Default()
	l, _ = layout.SetSectionCount(l, 3)
	l.RightColumn.Content[0] = domain.Region{ContentType: domain.ContentWeather}
	l.RightColumn.Content[1] = domain.Region{ContentType: domain.ContentSlideshow, Images: []string{"a.jpg", "b.jpg"}}
	l.RightColumn.Content[2] = domain.Region{ContentType: domain.ContentClock}

	frame := Compose(Input{
		Screen: domain.Screen{ID: "1", Name: "Lobby", Resolution: "1920x1080", Orientation: "landscape"},
		Layout: &l,
		Data: map[string]RegionData{
			layout.LeftRegion: {Loading: true},
		},
		Indices: map[string]int{"1": 1},
		Ticker:  TickerData{Items: sampleItems()},
		Now:     fixedNow,
	})

	assert.Equal(t, "Lobby", frame.Screen.Name)
	require.NotNil(t, frame.Sizing)
	assert.Equal(t, 33.333, frame.Sizing.SectionHeight)
	require.NotNil(t, frame.Left)
	assert.Equal(t, ViewLoading, frame.Left.Kind)
	require.Len(t, frame.Sections, 3)
	assert.Equal(t, ViewWeather, frame.Sections[0].Kind)
	assert.Equal(t, "b.jpg", frame.Sections[1].ImageURL)
	assert.Equal(t, ViewClock, frame.Sections[2].Kind)
	require.NotNil(t, frame.Ticker)
	assert.Equal(t, []string{"One", "Two", "Three"}, frame.Ticker.Headlines)
	assert.Nil(t, frame.Default)
	assert.Equal(t, layout.DefaultBackgroundColor, frame.BackgroundColor)
}

func TestCompose_NoLayoutUsesDefaultView(t *testing.T) {
	content := &domain.Content{Name: "Daily Menu", Type: domain.MediaImage, URL: "https://img.example/menu.jpg"}

	frame := Compose(Input{Screen: domain.Screen{ID: "3"}, Current: content, Now: fixedNow})

	require.NotNil(t, frame.Default)
	assert.Equal(t, ViewImage, frame.Default.Kind)
	assert.Nil(t, frame.Left)
	assert.Nil(t, frame.Ticker)
}

func TestCompose_DisabledBottomBar(t *testing.T) {
	l := layout.Default()
	l.BottomBar.Enabled = false

	frame := Compose(Input{Layout: &l, Now: fixedNow})
	assert.Nil(t, frame.Ticker)
}
