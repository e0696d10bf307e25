// ABOUTME: Frame composition combines a layout, resolved data and rotation state into a positioned frame
// ABOUTME: Screens without a layout get the full-screen default content view instead

package render

import (
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/feed"
	"signage-app-api/core/layout"
)

// TickerData is the resolved feed of the bottom bar
type TickerData struct {
	Items   []domain.ResolvedFeedItem
	Loading bool
}

// Ticker describes the bottom bar strip
type Ticker struct {
	Height          int      `json:"height"`
	Headlines       []string `json:"headlines"`
	Text            string   `json:"text"`
	ScrollSpeed     int      `json:"scrollSpeed"`
	DurationSeconds float64  `json:"durationSeconds"`
	Loading         bool     `json:"loading,omitempty"`
	Sample          bool     `json:"sample,omitempty"`
}

// Input is everything Compose needs for one instant
type Input struct {
	Screen  domain.Screen
	Layout  *domain.Layout
	Data    map[string]RegionData
	Indices map[string]int
	Ticker  TickerData

	// Current is the full-screen content for screens without a layout
	Current *domain.Content

	Now            time.Time
	SandboxWidgets bool
}

// ScreenInfo is the identity shown alongside a frame
type ScreenInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Resolution  string `json:"resolution"`
	Orientation string `json:"orientation"`
}

// Frame is the full description of a screen at an instant
type Frame struct {
	Screen          ScreenInfo   `json:"screen"`
	BackgroundColor string       `json:"backgroundColor,omitempty"`
	TextColor       string       `json:"textColor,omitempty"`
	Sizing          *Sizing      `json:"sizing,omitempty"`
	Left            *RegionView  `json:"left,omitempty"`
	Sections        []RegionView `json:"sections,omitempty"`
	Ticker          *Ticker      `json:"ticker,omitempty"`
	Default         *RegionView  `json:"default,omitempty"`
	GeneratedAt     time.Time    `json:"generatedAt"`
}

// Compose builds the frame for in
func Compose(in Input) Frame {
	f := Frame{
		Screen: ScreenInfo{
			ID:          in.Screen.ID,
			Name:        in.Screen.Name,
			Resolution:  in.Screen.Resolution,
			Orientation: in.Screen.Orientation,
		},
		GeneratedAt: in.Now,
	}

	if in.Layout == nil {
		view := DefaultView(in.Current)
		f.Default = &view
		return f
	}

	l := *in.Layout
	sizing := Regions(l)
	f.Sizing = &sizing
	f.BackgroundColor = l.BackgroundColor
	f.TextColor = l.TextColor

	left := Dispatch(l.LeftColumn.Region, in.Data[layout.LeftRegion], in.options(layout.LeftRegion))
	f.Left = &left

	f.Sections = make([]RegionView, len(l.RightColumn.Content))
	for i, section := range l.RightColumn.Content {
		ref := layout.SectionRef(i)
		f.Sections[i] = Dispatch(section, in.Data[ref], in.options(ref))
	}

	if l.BottomBar.Enabled {
		t := BuildTicker(l.BottomBar, in.Ticker)
		f.Ticker = &t
	}
	return f
}

// BuildTicker falls back to the sample headlines when the bar's feed failed or is empty
func BuildTicker(bar domain.BottomBar, data TickerData) Ticker {
	t := Ticker{
		Height:      bar.Height,
		ScrollSpeed: bar.ScrollSpeed,
		Loading:     data.Loading,
	}

	headlines := feed.Headlines(data.Items)
	if data.Loading || len(headlines) == 0 || feed.IsFallback(data.Items) {
		headlines = append([]string(nil), domain.SampleHeadlines...)
		t.Sample = true
	}
	t.Headlines = headlines
	t.Text = TickerText(headlines)
	t.DurationSeconds = TickerDuration(t.Text, bar.ScrollSpeed).Seconds()
	return t
}

func (in Input) options(ref string) Options {
	return Options{
		Index:          in.Indices[ref],
		Now:            in.Now,
		SandboxWidgets: in.SandboxWidgets,
	}
}
