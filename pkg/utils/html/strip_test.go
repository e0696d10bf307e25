package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Just text", "Just text"},
		{"tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities", "Fish &amp; chips &ndash; &quot;fresh&quot;", "Fish & chips – \"fresh\""},
		{"script and style", "<style>p{color:red}</style><p>Body</p><script>alert(1)</script>", "Body"},
		{"whitespace", "<div>\n  line one\n\n  line two </div>", "line one line two"},
		{"unclosed", "<p>broken <b>markup", "broken markup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestFirstImageSrc(t *testing.T) {
	assert.Equal(t, "https://img.example/a.jpg",
		FirstImageSrc(`<p>x</p><img alt="a" src="https://img.example/a.jpg"><img src="b.jpg">`))
	assert.Equal(t, "b.jpg", FirstImageSrc(`<img alt="no src"><img src="b.jpg">`))
	assert.Equal(t, "", FirstImageSrc("<p>no images</p>"))
	assert.Equal(t, "", FirstImageSrc(""))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 250)

	got := Truncate(long, 200)
	assert.Equal(t, 203, len(got))
	assert.True(t, strings.HasSuffix(got, Ellipsis))

	assert.Equal(t, "short", Truncate("short", 200))
	assert.Equal(t, strings.Repeat("a", 200), Truncate(strings.Repeat("a", 200), 200))
	assert.Equal(t, "héll...", Truncate("héllo", 4))
}
