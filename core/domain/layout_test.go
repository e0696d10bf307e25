package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType_Predicates(t *testing.T) {
	assert.True(t, ContentNone.Valid())
	assert.True(t, ContentClock.Valid())
	assert.False(t, ContentType("marquee").Valid())

	assert.True(t, ContentWeather.SectionOnly())
	assert.False(t, ContentRSS.SectionOnly())

	assert.True(t, ContentRSSSlideshow.NeedsFeed())
	assert.False(t, ContentSlideshow.NeedsFeed())

	assert.True(t, ContentSlideshow.Rotates())
	assert.False(t, ContentYouTube.Rotates())
}

func TestRegion_FeedURL(t *testing.T) {
	r := Region{RSSURL: "https://a.example/rss"}
	assert.Equal(t, "https://a.example/rss", r.FeedURL())

	r.CustomRSSURL = "https://b.example/rss"
	assert.Equal(t, "https://b.example/rss", r.FeedURL())
}

func TestRegion_UnmarshalWebConsoleShape(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contentType ContentType
		contentID   string
	}{
		{"type alias", `{"type":"clock"}`, ContentClock, ""},
		{"contentType wins over type", `{"contentType":"weather","type":"clock"}`, ContentWeather, ""},
		{"content as id", `{"contentType":"content","content":"2"}`, ContentContent, "2"},
		{"content as object", `{"contentType":"content","content":{"id":"2","name":"Product Showcase"}}`, ContentContent, "2"},
		{"numeric id", `{"type":"content","content":{"id":3}}`, ContentContent, "3"},
		{"selectedContent", `{"type":"content","selectedContent":{"id":"1"}}`, ContentContent, "1"},
		{"null content", `{"contentType":"rss","content":null}`, ContentRSS, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Region
			require.NoError(t, json.Unmarshal([]byte(tt.input), &r))
			assert.Equal(t, tt.contentType, r.ContentType)
			assert.Equal(t, tt.contentID, r.ContentID)
		})
	}
}

func TestRegion_UnmarshalRejectsBadContentRef(t *testing.T) {
	var r Region
	assert.Error(t, json.Unmarshal([]byte(`{"content":[1]}`), &r))
}

func TestLeftColumn_UnmarshalKeepsWidth(t *testing.T) {
	var c LeftColumn
	err := json.Unmarshal([]byte(`{"width":65,"contentType":"content","content":{"id":"2"},"contentOptions":{"transitionTime":12}}`), &c)
	require.NoError(t, err)

	assert.Equal(t, 65, c.Width)
	assert.Equal(t, ContentContent, c.ContentType)
	assert.Equal(t, "2", c.ContentID)
	assert.Equal(t, 12, c.Options.TransitionTime)

	// the encoded form still reads back
	data, err := json.Marshal(c)
	require.NoError(t, err)
	var back LeftColumn
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

func TestLayout_RightColumnWidth(t *testing.T) {
	l := Layout{LeftColumn: LeftColumn{Width: 65}}
	assert.Equal(t, 35, l.RightColumnWidth())
}

func TestLayout_CloneDoesNotAlias(t *testing.T) {
	orig := Layout{
		LeftColumn: LeftColumn{Width: 70, Region: Region{Images: []string{"a.jpg"}}},
		RightColumn: RightColumn{
			Sections: 2,
			Content:  []Region{{ContentType: ContentClock}, {Images: []string{"b.jpg"}}},
		},
	}

	cp := orig.Clone()
	cp.LeftColumn.Images[0] = "changed.jpg"
	cp.RightColumn.Content[0].ContentType = ContentWeather
	cp.RightColumn.Content[1].Images[0] = "changed.jpg"

	assert.Equal(t, "a.jpg", orig.LeftColumn.Images[0])
	assert.Equal(t, ContentClock, orig.RightColumn.Content[0].ContentType)
	assert.Equal(t, "b.jpg", orig.RightColumn.Content[1].Images[0])
}

func TestSeedState_NoLayouts(t *testing.T) {
	state := SeedState(fixedNow)

	assert.Len(t, state.Screens, 3)
	assert.Len(t, state.Content, 3)
	assert.Len(t, state.Schedules, 1)
	assert.Equal(t, "dark", state.Settings.Theme)
	for _, s := range state.Screens {
		assert.Nil(t, s.Layout, "seed screens start without a layout")
	}
}
