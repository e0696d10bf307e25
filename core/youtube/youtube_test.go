package youtube

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link with time", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"v later in query", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=3", "dQw4w9WgXcQ", true},
		{"fragment", "https://www.youtube.com/watch?v=dQw4w9WgXcQ#comments", "dQw4w9WgXcQ", true},
		{"no scheme", "youtube.com/watch?v=abc123DEF_-", "abc123DEF_-", true},
		{"short link with trailing slash", "https://youtu.be/dQw4w9WgXcQ/", "dQw4w9WgXcQ", true},
		{"trailing whitespace", "https://youtu.be/dQw4w9WgXcQ \n", "dQw4w9WgXcQ", true},
		{"embed with path", "https://www.youtube.com/embed/dQw4w9WgXcQ/extra", "dQw4w9WgXcQ", true},
		{"id too short", "https://youtu.be/abc123", "", false},
		{"id too long", "https://www.youtube.com/watch?v=dQw4w9WgXcQxyz", "", false},
		{"empty", "", "", false},
		{"other host", "https://vimeo.com/123456", "", false},
		{"watch without id", "https://www.youtube.com/watch?list=PL123", "", false},
		{"garbage", "not a url at all \x00", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, IsValidURL(tt.url))
		})
	}
}

func TestBuildEmbedURL_Defaults(t *testing.T) {
	got := BuildEmbedURL("dQw4w9WgXcQ", EmbedOptions{})

	assert.True(t, strings.HasPrefix(got, "https://www.youtube.com/embed/dQw4w9WgXcQ?"))
	assert.Contains(t, got, "autoplay=1&mute=1&controls=0")
	assert.Contains(t, got, "loop=1&playlist=dQw4w9WgXcQ")
	assert.Contains(t, got, "rel=0")
	assert.Contains(t, got, "showinfo=0")
	assert.Contains(t, got, "modestbranding=1")
}

func TestBuildEmbedURL_OverridesAndForcedParams(t *testing.T) {
	off := false
	on := true
	got := BuildEmbedURL("abc", EmbedOptions{AutoPlay: &off, Mute: &off, Controls: &on, Loop: &off})

	assert.Contains(t, got, "autoplay=0")
	assert.Contains(t, got, "mute=0")
	assert.Contains(t, got, "controls=1")
	assert.Contains(t, got, "loop=0")
	assert.NotContains(t, got, "playlist=")
	assert.Contains(t, got, "rel=0&showinfo=0&modestbranding=1")
}

func TestBuildEmbedURL_Deterministic(t *testing.T) {
	assert.Equal(t, BuildEmbedURL("abc", EmbedOptions{}), BuildEmbedURL("abc", EmbedOptions{}))
}

func TestEmbedURLFor(t *testing.T) {
	got, ok := EmbedURLFor("https://youtu.be/dQw4w9WgXcQ", EmbedOptions{})
	assert.True(t, ok)
	assert.Contains(t, got, "dQw4w9WgXcQ")
	assert.Contains(t, got, "autoplay=1&mute=1&controls=0")

	_, ok = EmbedURLFor("https://example.com", EmbedOptions{})
	assert.False(t, ok)
}
