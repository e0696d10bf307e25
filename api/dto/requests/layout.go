// ABOUTME: Request DTOs for layout editing, designer drafts and player commands
// ABOUTME: Optional fields are pointers so a missing value keeps the current configuration

package requests

// ContentOptionsRequest overrides a region's playback options
type ContentOptionsRequest struct {
	ShowQRCode     *bool `json:"showQrCode,omitempty" doc:"Show a QR code for the current article"`
	TransitionTime *int  `json:"transitionTime,omitempty" doc:"Seconds per slide, clamped to 5-30"`
	AutoPlay       *bool `json:"autoPlay,omitempty" doc:"Start videos automatically"`
}

// RegionRequest configures one region. It replaces the region's content binding;
// options not given keep their current values.
type RegionRequest struct {
	ContentType    string                 `json:"contentType" doc:"rss, rssSlideshow, slideshow, youtube, content, widget, weather, clock or empty"`
	ContentID      string                 `json:"content,omitempty" doc:"Library item for content regions"`
	RSSURL         string                 `json:"rssUrl,omitempty" doc:"Catalog feed URL"`
	CustomRSSURL   string                 `json:"customRssUrl,omitempty" doc:"Custom feed URL, wins over rssUrl"`
	YouTubeURL     string                 `json:"youtubeUrl,omitempty" doc:"Watch, short or embed link"`
	WidgetCode     string                 `json:"widgetCode,omitempty" doc:"HTML markup of a widget region"`
	Images         []string               `json:"images,omitempty" doc:"Slideshow image URLs"`
	ContentOptions *ContentOptionsRequest `json:"contentOptions,omitempty" doc:"Playback options"`
}

// SectionsRequest resizes the right column
type SectionsRequest struct {
	Sections int `json:"sections" doc:"Number of right-column sections, 2 or 3"`
}

// WidthRequest sets the left column width
type WidthRequest struct {
	Width int `json:"width" doc:"Left column width in percent, clamped to 50-80"`
}

// BottomBarRequest updates the ticker. Missing fields keep their current values.
type BottomBarRequest struct {
	Enabled      *bool   `json:"enabled,omitempty" doc:"Show the ticker"`
	Height       *int    `json:"height,omitempty" doc:"Height in px, clamped to 60-120"`
	ScrollSpeed  *int    `json:"scrollSpeed,omitempty" doc:"Scroll speed in px/s, clamped to 10-100"`
	RSSURL       *string `json:"rssUrl,omitempty" doc:"Catalog feed URL"`
	CustomRSSURL *string `json:"customRssUrl,omitempty" doc:"Custom feed URL"`
}

// DraftEditRequest applies several edits to a designer draft at once.
// Sections are resized first so region edits can address new sections.
type DraftEditRequest struct {
	Sections        *int                     `json:"sections,omitempty" doc:"Right-column section count"`
	Width           *int                     `json:"width,omitempty" doc:"Left column width in percent"`
	Regions         map[string]RegionRequest `json:"regions,omitempty" doc:"Region edits keyed by 'left' or section index"`
	BottomBar       *BottomBarRequest        `json:"bottomBar,omitempty" doc:"Ticker edits"`
	BackgroundColor *string                  `json:"backgroundColor,omitempty" doc:"Background color"`
	TextColor       *string                  `json:"textColor,omitempty" doc:"Text color"`
}

// ContentUpdateRequest pushes a library item to a screen
type ContentUpdateRequest struct {
	ContentID string `json:"contentId" minLength:"1" doc:"Library item to show"`
}

// CommandRequest sends a command to a screen's player
type CommandRequest struct {
	Command string                 `json:"command" minLength:"1" doc:"Command name, e.g. reload"`
	Data    map[string]interface{} `json:"data,omitempty" doc:"Command payload"`
}
