// ABOUTME: Content-type dispatch maps one region's binding and resolved data to a view descriptor
// ABOUTME: Pure and total: every content type, including missing data, has a displayable fallback

package render

import (
	"strings"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/youtube"
)

// ViewKind tells the display surface how to draw a region
type ViewKind string

const (
	ViewList        ViewKind = "list"
	ViewSlide       ViewKind = "slide"
	ViewImage       ViewKind = "image"
	ViewEmbed       ViewKind = "embed"
	ViewVideo       ViewKind = "video"
	ViewWebpage     ViewKind = "webpage"
	ViewContent     ViewKind = "content"
	ViewWidget      ViewKind = "widget"
	ViewWeather     ViewKind = "weather"
	ViewClock       ViewKind = "clock"
	ViewLoading     ViewKind = "loading"
	ViewPlaceholder ViewKind = "placeholder"
)

// Placeholder messages
const (
	MsgSelectContent   = "Select content"
	MsgLoadingFeed     = "Loading RSS feed..."
	MsgNoFeedItems     = "No feed items"
	MsgNoImages        = "No images added"
	MsgInvalidYouTube  = "Invalid YouTube URL"
	MsgContentMissing  = "Content not found"
	MsgNoWidget        = "No widget code"
	MsgUnsupported     = "Content type not supported"
	MsgWaitingForInput = "Waiting for content..."
)

// RegionData is the external data resolved for a region
type RegionData struct {
	// Items are the resolved feed entries for rss and rssSlideshow regions
	Items []domain.ResolvedFeedItem

	// Loading is set while the feed fetch is still in flight
	Loading bool

	// Content is the looked-up library item for content regions, nil when missing
	Content *domain.Content
}

// Options carry the per-instant inputs of a dispatch
type Options struct {
	// Index is the region's current rotation index
	Index int

	// Now drives the clock view
	Now time.Time

	// SandboxWidgets renders widget markup as an isolated iframe document
	SandboxWidgets bool
}

// Weather is the stub forecast shown by weather sections
type Weather struct {
	TemperatureF int    `json:"temperatureF"`
	Condition    string `json:"condition"`
	FeelsLikeF   int    `json:"feelsLikeF"`
}

// StubWeather is what every weather section shows
var StubWeather = Weather{TemperatureF: 72, Condition: "Sunny", FeelsLikeF: 75}

// Clock is the formatted time shown by clock sections
type Clock struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// RegionView describes what one region displays at an instant
type RegionView struct {
	Kind        ViewKind           `json:"kind"`
	ContentType domain.ContentType `json:"contentType,omitempty"`
	Message     string             `json:"message,omitempty"`

	Items []domain.ResolvedFeedItem `json:"items,omitempty"`

	Title            string `json:"title,omitempty"`
	Description      string `json:"description,omitempty"`
	Link             string `json:"link,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
	FallbackImageURL string `json:"fallbackImageUrl,omitempty"`
	QRPayload        string `json:"qrPayload,omitempty"`

	// Index and Count drive the slide position dots
	Index int `json:"index"`
	Count int `json:"count,omitempty"`

	EmbedURL  string `json:"embedUrl,omitempty"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	Markup    string `json:"markup,omitempty"`
	Sandboxed bool   `json:"sandboxed,omitempty"`

	Label     string `json:"label,omitempty"`
	MediaType string `json:"mediaType,omitempty"`

	Weather *Weather `json:"weather,omitempty"`
	Clock   *Clock   `json:"clock,omitempty"`
}

// Dispatch renders one region
func Dispatch(r domain.Region, data RegionData, opts Options) RegionView {
	switch r.ContentType {
	case domain.ContentRSS:
		return dispatchRSS(r, data)
	case domain.ContentRSSSlideshow:
		return dispatchRSSSlideshow(r, data, opts)
	case domain.ContentSlideshow:
		return dispatchSlideshow(r, opts)
	case domain.ContentYouTube:
		return dispatchYouTube(r)
	case domain.ContentContent:
		return dispatchContent(r, data)
	case domain.ContentWidget:
		return dispatchWidget(r, opts)
	case domain.ContentWeather:
		w := StubWeather
		return RegionView{Kind: ViewWeather, ContentType: r.ContentType, Weather: &w}
	case domain.ContentClock:
		return RegionView{Kind: ViewClock, ContentType: r.ContentType, Clock: clockAt(opts.Now)}
	}
	return placeholder(r.ContentType, MsgSelectContent)
}

func dispatchRSS(r domain.Region, data RegionData) RegionView {
	if data.Loading {
		return RegionView{Kind: ViewLoading, ContentType: r.ContentType, Message: MsgLoadingFeed}
	}
	if len(data.Items) == 0 {
		return placeholder(r.ContentType, MsgNoFeedItems)
	}
	return RegionView{
		Kind:        ViewList,
		ContentType: r.ContentType,
		Items:       append([]domain.ResolvedFeedItem(nil), data.Items...),
		Count:       len(data.Items),
	}
}

func dispatchRSSSlideshow(r domain.Region, data RegionData, opts Options) RegionView {
	if data.Loading {
		return RegionView{Kind: ViewLoading, ContentType: r.ContentType, Message: MsgLoadingFeed}
	}
	n := len(data.Items)
	if n == 0 {
		return placeholder(r.ContentType, MsgNoFeedItems)
	}
	idx := wrap(opts.Index, n)
	item := data.Items[idx]

	view := RegionView{
		Kind:             ViewSlide,
		ContentType:      r.ContentType,
		Title:            item.Title,
		Description:      item.Description,
		Link:             item.Link,
		ImageURL:         item.ImageURL,
		FallbackImageURL: domain.PlaceholderImage,
		Index:            idx,
		Count:            n,
	}
	if view.ImageURL == "" {
		view.ImageURL = domain.PlaceholderImage
	}
	if r.Options.ShowQRCode && item.Link != "" && item.Link != "#" {
		view.QRPayload = item.Link
	}
	return view
}

func dispatchSlideshow(r domain.Region, opts Options) RegionView {
	n := len(r.Images)
	if n == 0 {
		return placeholder(r.ContentType, MsgNoImages)
	}
	idx := wrap(opts.Index, n)
	return RegionView{
		Kind:             ViewImage,
		ContentType:      r.ContentType,
		ImageURL:         r.Images[idx],
		FallbackImageURL: domain.PlaceholderSlideImage,
		Index:            idx,
		Count:            n,
	}
}

func dispatchYouTube(r domain.Region) RegionView {
	embed, ok := youtube.EmbedURLFor(r.YouTubeURL, youtube.EmbedOptions{})
	if !ok {
		return placeholder(r.ContentType, MsgInvalidYouTube)
	}
	return RegionView{Kind: ViewEmbed, ContentType: r.ContentType, EmbedURL: embed}
}

func dispatchContent(r domain.Region, data RegionData) RegionView {
	if r.ContentID == "" {
		return placeholder(r.ContentType, MsgSelectContent)
	}
	if data.Content == nil {
		return placeholder(r.ContentType, MsgContentMissing)
	}
	c := data.Content
	if c.IsImage() {
		return RegionView{
			Kind:             ViewImage,
			ContentType:      r.ContentType,
			ImageURL:         c.URL,
			FallbackImageURL: domain.PlaceholderSlideImage,
			Label:            c.Name,
			MediaType:        c.Type,
		}
	}
	return RegionView{
		Kind:        ViewContent,
		ContentType: r.ContentType,
		Label:       c.Name,
		MediaType:   c.Type,
		Message:     strings.ToUpper(c.Type),
	}
}

func dispatchWidget(r domain.Region, opts Options) RegionView {
	if strings.TrimSpace(r.WidgetCode) == "" {
		return placeholder(r.ContentType, MsgNoWidget)
	}
	return RegionView{
		Kind:        ViewWidget,
		ContentType: r.ContentType,
		Markup:      r.WidgetCode,
		Sandboxed:   opts.SandboxWidgets,
	}
}

// DefaultView renders a screen that has no layout: the current content full screen
func DefaultView(c *domain.Content) RegionView {
	if c == nil {
		return RegionView{Kind: ViewPlaceholder, Message: MsgWaitingForInput}
	}
	view := RegionView{Label: c.Name, MediaType: c.Type}
	switch c.Type {
	case domain.MediaImage:
		view.Kind = ViewImage
		view.ImageURL = c.URL
		view.FallbackImageURL = domain.PlaceholderSlideImage
	case domain.MediaVideo:
		view.Kind = ViewVideo
		view.MediaURL = c.URL
	case domain.MediaWebpage:
		view.Kind = ViewWebpage
		view.MediaURL = c.URL
	default:
		view.Kind = ViewPlaceholder
		view.Message = MsgUnsupported
	}
	return view
}

func placeholder(ct domain.ContentType, msg string) RegionView {
	return RegionView{Kind: ViewPlaceholder, ContentType: ct, Message: msg}
}

func clockAt(now time.Time) *Clock {
	return &Clock{
		Time: now.Format("3:04:05 PM"),
		Date: now.Format("Monday, January 2, 2006"),
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
