// ABOUTME: YouTube handler turns a watch, short or embed link into a player embed URL
// ABOUTME: A link that is not a YouTube video is reported as invalid, not as an error

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/youtube"
)

// YouTubeHandler handles YouTube HTTP requests
type YouTubeHandler struct{}

// NewYouTubeHandler creates a new YouTube handler
func NewYouTubeHandler() *YouTubeHandler {
	return &YouTubeHandler{}
}

// RegisterRoutes registers the YouTube routes
func (h *YouTubeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "youtubeEmbed",
		Method:      http.MethodGet,
		Path:        "/youtube/embed",
		Summary:     "Build a YouTube embed URL",
		Description: "Related videos, info and branding are always suppressed",
		Tags:        []string{"YouTube"},
	}, h.Embed)
}

// EmbedInput defines the input for Embed
type EmbedInput struct {
	URL      string `query:"url" required:"true" doc:"YouTube link"`
	AutoPlay bool   `query:"autoplay" default:"true" doc:"Start playing immediately"`
	Mute     bool   `query:"mute" default:"true" doc:"Start muted"`
	Controls bool   `query:"controls" default:"false" doc:"Show player controls"`
	Loop     bool   `query:"loop" default:"true" doc:"Loop the video"`
}

// EmbedOutput returns the embed URL
type EmbedOutput struct {
	Body responses.EmbedResponse
}

// Embed handles GET /youtube/embed
func (h *YouTubeHandler) Embed(ctx context.Context, input *EmbedInput) (*EmbedOutput, error) {
	resp := responses.EmbedResponse{URL: input.URL}
	id, ok := youtube.ExtractVideoID(input.URL)
	if ok {
		resp.Valid = true
		resp.VideoID = id
		resp.EmbedURL = youtube.BuildEmbedURL(id, youtube.EmbedOptions{
			AutoPlay: &input.AutoPlay,
			Mute:     &input.Mute,
			Controls: &input.Controls,
			Loop:     &input.Loop,
		})
	}
	return &EmbedOutput{Body: resp}, nil
}
