// ABOUTME: Layout domain model describes a screen's on-display composition
// ABOUTME: Defines regions, content-type selection per region, bottom ticker bar and colors

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentType selects what a region displays
type ContentType string

const (
	ContentNone         ContentType = ""
	ContentRSS          ContentType = "rss"
	ContentRSSSlideshow ContentType = "rssSlideshow"
	ContentSlideshow    ContentType = "slideshow"
	ContentYouTube      ContentType = "youtube"
	ContentContent      ContentType = "content"
	ContentWidget       ContentType = "widget"
	ContentWeather      ContentType = "weather"
	ContentClock        ContentType = "clock"
)

// Layout bounds
const (
	MinLeftWidth = 50
	MaxLeftWidth = 80

	MinSections = 2
	MaxSections = 3

	MinBottomBarHeight = 60
	MaxBottomBarHeight = 120

	MinScrollSpeed = 10
	MaxScrollSpeed = 100

	MinTransitionTime     = 5
	MaxTransitionTime     = 30
	DefaultTransitionTime = 10
)

// Valid reports whether c is a known content type. The empty value is valid (unset).
func (c ContentType) Valid() bool {
	switch c {
	case ContentNone, ContentRSS, ContentRSSSlideshow, ContentSlideshow, ContentYouTube,
		ContentContent, ContentWidget, ContentWeather, ContentClock:
		return true
	}
	return false
}

// SectionOnly reports whether c may only be used in a right-column section
func (c ContentType) SectionOnly() bool {
	return c == ContentWeather || c == ContentClock
}

// NeedsFeed reports whether regions of this type display resolved RSS items
func (c ContentType) NeedsFeed() bool {
	return c == ContentRSS || c == ContentRSSSlideshow
}

// Rotates reports whether regions of this type cycle through items on a timer
func (c ContentType) Rotates() bool {
	return c == ContentRSSSlideshow || c == ContentSlideshow
}

// ContentOptions holds per-region playback options
type ContentOptions struct {
	ShowQRCode     bool `json:"showQrCode"`
	TransitionTime int  `json:"transitionTime"` // seconds, 5-30
	AutoPlay       bool `json:"autoPlay"`
}

// Region is one content binding: the left column or a right-column section
type Region struct {
	ContentType  ContentType    `json:"contentType"`
	ContentID    string         `json:"content,omitempty"`
	RSSURL       string         `json:"rssUrl,omitempty"`
	CustomRSSURL string         `json:"customRssUrl,omitempty"`
	YouTubeURL   string         `json:"youtubeUrl,omitempty"`
	WidgetCode   string         `json:"widgetCode,omitempty"`
	Images       []string       `json:"images,omitempty"`
	Options      ContentOptions `json:"contentOptions"`
}

// UnmarshalJSON also accepts records written by the web console, which store the content type
// under "type" and the library item as an embedded object in "content" or "selectedContent".
func (r *Region) UnmarshalJSON(data []byte) error {
	type plain Region
	aux := struct {
		*plain
		Type            ContentType     `json:"type"`
		Content         json.RawMessage `json:"content"`
		SelectedContent json.RawMessage `json:"selectedContent"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if r.ContentType == ContentNone {
		r.ContentType = aux.Type
	}
	id, err := contentRef(aux.Content)
	if err != nil {
		return err
	}
	if id == "" {
		if id, err = contentRef(aux.SelectedContent); err != nil {
			return err
		}
	}
	r.ContentID = id
	return nil
}

// contentRef reads a library reference given as an id string, a number, or an object with an id
func contentRef(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var id string
		err := json.Unmarshal(raw, &id)
		return id, err
	case '{':
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return "", err
		}
		return contentRef(obj.ID)
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("content reference: %w", err)
		}
		return n.String(), nil
	}
}

// FeedURL returns the feed the region reads from. A custom URL wins over the catalog one.
func (r Region) FeedURL() string {
	if r.CustomRSSURL != "" {
		return r.CustomRSSURL
	}
	return r.RSSURL
}

// IsEmpty reports whether no content type has been selected
func (r Region) IsEmpty() bool {
	return r.ContentType == ContentNone
}

// LeftColumn is the main region. Its width is a percentage of the screen.
type LeftColumn struct {
	Width int `json:"width"`
	Region
}

// UnmarshalJSON keeps the width, which the promoted Region decoder would otherwise skip
func (c *LeftColumn) UnmarshalJSON(data []byte) error {
	var w struct {
		Width int `json:"width"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := c.Region.UnmarshalJSON(data); err != nil {
		return err
	}
	c.Width = w.Width
	return nil
}

// RightColumn holds the stacked sections. Its width is derived, never stored.
type RightColumn struct {
	Sections int      `json:"sections"`
	Content  []Region `json:"content"`
}

// BottomBar is the scrolling ticker strip
type BottomBar struct {
	Enabled      bool        `json:"enabled"`
	Height       int         `json:"height"` // px, 60-120
	ContentType  ContentType `json:"contentType"`
	RSSURL       string      `json:"rssUrl,omitempty"`
	CustomRSSURL string      `json:"customRssUrl,omitempty"`
	ScrollSpeed  int         `json:"scrollSpeed"` // px/s, 10-100
}

// FeedURL returns the ticker feed URL, custom first
func (b BottomBar) FeedURL() string {
	if b.CustomRSSURL != "" {
		return b.CustomRSSURL
	}
	return b.RSSURL
}

// Layout is the serializable description of a screen's regions and their content bindings
type Layout struct {
	LeftColumn      LeftColumn  `json:"leftColumn"`
	RightColumn     RightColumn `json:"rightColumn"`
	BottomBar       BottomBar   `json:"bottomBar"`
	BackgroundColor string      `json:"backgroundColor"`
	TextColor       string      `json:"textColor"`
}

// RightColumnWidth is always the remainder of the left column
func (l Layout) RightColumnWidth() int {
	return 100 - l.LeftColumn.Width
}

// Clone returns a deep copy so edits never alias the original slices
func (l Layout) Clone() Layout {
	out := l
	out.LeftColumn.Region = l.LeftColumn.Region.Clone()
	if l.RightColumn.Content != nil {
		out.RightColumn.Content = make([]Region, len(l.RightColumn.Content))
		for i, r := range l.RightColumn.Content {
			out.RightColumn.Content[i] = r.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the region
func (r Region) Clone() Region {
	out := r
	if r.Images != nil {
		out.Images = append([]string(nil), r.Images...)
	}
	return out
}

// FeedSource is an entry in the built-in feed catalog
type FeedSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FeedCatalog lists the feeds offered by the designer
var FeedCatalog = []FeedSource{
	{ID: "malta", Name: "Malta Today", URL: "https://www.maltatoday.com.mt/rss"},
	{ID: "news", Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
	{ID: "tech", Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
	{ID: "sport", Name: "ESPN", URL: "https://www.espn.com/espn/rss/news"},
}
