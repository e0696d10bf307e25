// ABOUTME: YouTube URL handling turns watch, short and embed links into player embed URLs
// ABOUTME: Extraction is total over strings; embed URLs always suppress related videos and branding

package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

// Video IDs are 11 characters of [A-Za-z0-9_-]; the trailing group rejects longer runs.
var (
	// watch?v=ID, youtu.be/ID and embed/ID
	directPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`)
	// v=ID anywhere in a watch query string
	queryPattern = regexp.MustCompile(`youtube\.com/watch\?.*?\bv=([A-Za-z0-9_-]{11})(?:[^A-Za-z0-9_-]|$)`)
)

// ExtractVideoID returns the video identifier in rawURL, or false when it is not a YouTube link
func ExtractVideoID(rawURL string) (string, bool) {
	for _, p := range []*regexp.Regexp{directPattern, queryPattern} {
		if m := p.FindStringSubmatch(rawURL); m != nil && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// IsValidURL reports whether rawURL resolves to a video identifier
func IsValidURL(rawURL string) bool {
	_, ok := ExtractVideoID(rawURL)
	return ok
}

// EmbedOptions overrides the default player parameters. Nil fields keep the default.
type EmbedOptions struct {
	AutoPlay *bool
	Mute     *bool
	Controls *bool
	Loop     *bool
}

// forced parameters win over any caller option
var forced = map[string]string{
	"rel":            "0",
	"showinfo":       "0",
	"modestbranding": "1",
}

// BuildEmbedURL composes the iframe URL for videoID. Looping plays a single-entry playlist
// of the video itself.
func BuildEmbedURL(videoID string, opts EmbedOptions) string {
	q := url.Values{}
	q.Set("autoplay", flag(opts.AutoPlay, true))
	q.Set("mute", flag(opts.Mute, true))
	q.Set("controls", flag(opts.Controls, false))
	loop := flag(opts.Loop, true)
	q.Set("loop", loop)
	if loop == "1" {
		q.Set("playlist", videoID)
	}
	for k, v := range forced {
		q.Set(k, v)
	}

	// keep the player-facing parameters first so the URL reads the way YouTube documents it
	ordered := []string{"autoplay", "mute", "controls", "loop", "playlist", "rel", "showinfo", "modestbranding"}
	parts := make([]string, 0, len(ordered))
	for _, k := range ordered {
		if v := q.Get(k); v != "" {
			parts = append(parts, k+"="+url.QueryEscape(v))
		}
	}
	return embedBase + url.PathEscape(videoID) + "?" + strings.Join(parts, "&")
}

// EmbedURLFor extracts the id from rawURL and builds its embed URL with opts
func EmbedURLFor(rawURL string, opts EmbedOptions) (string, bool) {
	id, ok := ExtractVideoID(rawURL)
	if !ok {
		return "", false
	}
	return BuildEmbedURL(id, opts), true
}

func flag(v *bool, def bool) string {
	b := def
	if v != nil {
		b = *v
	}
	if b {
		return "1"
	}
	return "0"
}
