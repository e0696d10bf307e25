package render

import (
	"testing"
	"time"

	"signage-app-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)

func sampleItems() []domain.ResolvedFeedItem {
	return []domain.ResolvedFeedItem{
		{Title: "One", Description: "d1", Link: "https://n.example/1", ImageURL: "https://img.example/1.jpg"},
		{Title: "Two", Description: "d2", Link: "https://n.example/2", ImageURL: ""},
		{Title: "Three", Description: "d3", Link: "#", ImageURL: "https://img.example/3.jpg"},
	}
}

func TestDispatch_YouTubeScenario(t *testing.T) {
	l := domain.Layout{LeftColumn: domain.LeftColumn{Width: 70, Region: domain.Region{
		ContentType: domain.ContentYouTube,
		YouTubeURL:  "https://youtu.be/dQw4w9WgXcQ",
	}}}

	view := Dispatch(l.LeftColumn.Region, RegionData{}, Options{})

	assert.Equal(t, ViewEmbed, view.Kind)
	assert.Contains(t, view.EmbedURL, "dQw4w9WgXcQ")
	assert.Contains(t, view.EmbedURL, "autoplay=1&mute=1&controls=0")
}

func TestDispatch_YouTubeInvalid(t *testing.T) {
	view := Dispatch(domain.Region{ContentType: domain.ContentYouTube, YouTubeURL: "https://vimeo.com/1"}, RegionData{}, Options{})

	assert.Equal(t, ViewPlaceholder, view.Kind)
	assert.Equal(t, MsgInvalidYouTube, view.Message)
	assert.Empty(t, view.EmbedURL)
}

func TestDispatch_RSS(t *testing.T) {
	r := domain.Region{ContentType: domain.ContentRSS}

	loading := Dispatch(r, RegionData{Loading: true}, Options{})
	assert.Equal(t, ViewLoading, loading.Kind)

	view := Dispatch(r, RegionData{Items: sampleItems()}, Options{})
	assert.Equal(t, ViewList, view.Kind)
	assert.Len(t, view.Items, 3)

	empty := Dispatch(r, RegionData{}, Options{})
	assert.Equal(t, ViewPlaceholder, empty.Kind)
}

func TestDispatch_RSSSlideshow(t *testing.T) {
	r := domain.Region{ContentType: domain.ContentRSSSlideshow, Options: domain.ContentOptions{ShowQRCode: true}}
	data := RegionData{Items: sampleItems()}

	first := Dispatch(r, data, Options{Index: 0})
	assert.Equal(t, ViewSlide, first.Kind)
	assert.Equal(t, "One", first.Title)
	assert.Equal(t, "https://n.example/1", first.QRPayload)
	assert.Equal(t, 3, first.Count)

	// missing image falls back to the placeholder
	second := Dispatch(r, data, Options{Index: 1})
	assert.Equal(t, domain.PlaceholderImage, second.ImageURL)

	// "#" links get no QR code
	third := Dispatch(r, data, Options{Index: 2})
	assert.Empty(t, third.QRPayload)

	// index wraps
	wrapped := Dispatch(r, data, Options{Index: 4})
	assert.Equal(t, "Two", wrapped.Title)
	assert.Equal(t, 1, wrapped.Index)

	r.Options.ShowQRCode = false
	assert.Empty(t, Dispatch(r, data, Options{}).QRPayload)
}

func TestDispatch_Slideshow(t *testing.T) {
	r := domain.Region{ContentType: domain.ContentSlideshow, Images: []string{"a.jpg", "b.jpg"}}

	view := Dispatch(r, RegionData{}, Options{Index: 3})
	assert.Equal(t, ViewImage, view.Kind)
	assert.Equal(t, "b.jpg", view.ImageURL)
	assert.Equal(t, domain.PlaceholderSlideImage, view.FallbackImageURL)

	r.Images = nil
	idle := Dispatch(r, RegionData{}, Options{Index: 3})
	assert.Equal(t, ViewPlaceholder, idle.Kind)
	assert.Equal(t, MsgNoImages, idle.Message)
}

func TestDispatch_Content(t *testing.T) {
	image := &domain.Content{ID: "2", Name: "Daily Menu", Type: domain.MediaImage, URL: "https://img.example/menu.jpg"}
	video := &domain.Content{ID: "1", Name: "Welcome", Type: domain.MediaVideo}

	view := Dispatch(domain.Region{ContentType: domain.ContentContent, ContentID: "2"}, RegionData{Content: image}, Options{})
	assert.Equal(t, ViewImage, view.Kind)
	assert.Equal(t, image.URL, view.ImageURL)

	view = Dispatch(domain.Region{ContentType: domain.ContentContent, ContentID: "1"}, RegionData{Content: video}, Options{})
	assert.Equal(t, ViewContent, view.Kind)
	assert.Equal(t, "Welcome", view.Label)
	assert.Equal(t, "VIDEO", view.Message)

	// deleted content renders a placeholder
	view = Dispatch(domain.Region{ContentType: domain.ContentContent, ContentID: "99"}, RegionData{}, Options{})
	assert.Equal(t, ViewPlaceholder, view.Kind)
	assert.Equal(t, MsgContentMissing, view.Message)

	view = Dispatch(domain.Region{ContentType: domain.ContentContent}, RegionData{}, Options{})
	assert.Equal(t, MsgSelectContent, view.Message)
}

func TestDispatch_Widget(t *testing.T) {
	r := domain.Region{ContentType: domain.ContentWidget, WidgetCode: `<div onclick="x()">hi</div>`}

	view := Dispatch(r, RegionData{}, Options{})
	assert.Equal(t, ViewWidget, view.Kind)
	assert.Equal(t, r.WidgetCode, view.Markup)
	assert.False(t, view.Sandboxed)

	sandboxed := Dispatch(r, RegionData{}, Options{SandboxWidgets: true})
	assert.True(t, sandboxed.Sandboxed)
	assert.Equal(t, r.WidgetCode, sandboxed.Markup)

	empty := Dispatch(domain.Region{ContentType: domain.ContentWidget}, RegionData{}, Options{})
	assert.Equal(t, ViewPlaceholder, empty.Kind)
}

func TestDispatch_WeatherAndClock(t *testing.T) {
	weather := Dispatch(domain.Region{ContentType: domain.ContentWeather}, RegionData{}, Options{})
	require.NotNil(t, weather.Weather)
	assert.Equal(t, Weather{TemperatureF: 72, Condition: "Sunny", FeelsLikeF: 75}, *weather.Weather)

	clock := Dispatch(domain.Region{ContentType: domain.ContentClock}, RegionData{}, Options{Now: fixedNow})
	require.NotNil(t, clock.Clock)
	assert.Equal(t, "2:05:09 PM", clock.Clock.Time)
	assert.Equal(t, "Friday, March 1, 2024", clock.Clock.Date)
}

func TestDispatch_Unset(t *testing.T) {
	view := Dispatch(domain.Region{}, RegionData{}, Options{})
	assert.Equal(t, ViewPlaceholder, view.Kind)
	assert.Equal(t, MsgSelectContent, view.Message)
}

func TestDefaultView(t *testing.T) {
	assert.Equal(t, MsgWaitingForInput, DefaultView(nil).Message)

	tests := []struct {
		mediaType string
		want      ViewKind
	}{
		{domain.MediaImage, ViewImage},
		{domain.MediaVideo, ViewVideo},
		{domain.MediaWebpage, ViewWebpage},
		{"presentation", ViewPlaceholder},
	}
	for _, tt := range tests {
		view := DefaultView(&domain.Content{Name: "x", Type: tt.mediaType, URL: "https://c.example"})
		assert.Equal(t, tt.want, view.Kind, tt.mediaType)
	}
	assert.Equal(t, MsgUnsupported, DefaultView(&domain.Content{Type: "presentation"}).Message)
}
