// ABOUTME: Player handlers open screen sessions, serve their current frame and deliver events
// ABOUTME: Sessions outlive requests; the first frame request of a screen starts its feed prefetch

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"signage-app-api/api/dto/requests"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/notify"
	"signage-app-api/core/player"
)

// PlayerService is the part of the player shell the handlers use
type PlayerService interface {
	Open(ctx context.Context, screenID string) (*player.Session, error)
	Close(screenID string) bool
	SendContentUpdate(ctx context.Context, screenID, contentID string) error
	SendCommand(ctx context.Context, screenID, command string, data map[string]interface{}) error
}

// PlayerHandler handles player HTTP requests
type PlayerHandler struct {
	player PlayerService
	now    func() time.Time
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(player PlayerService) *PlayerHandler {
	return &PlayerHandler{player: player, now: time.Now}
}

// RegisterRoutes registers the player routes
func (h *PlayerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "playerFrame",
		Method:      http.MethodGet,
		Path:        "/player/{id}/frame",
		Summary:     "Get a screen's current frame",
		Description: "Opens the screen's player session if needed and renders what the screen shows right now",
		Tags:        []string{"Player"},
	}, h.Frame)

	huma.Register(api, huma.Operation{
		OperationID: "closePlayer",
		Method:      http.MethodDelete,
		Path:        "/player/{id}",
		Summary:     "Close a screen's player session",
		Tags:        []string{"Player"},
	}, h.ClosePlayer)

	huma.Register(api, huma.Operation{
		OperationID:   "sendContentUpdate",
		Method:        http.MethodPost,
		Path:          "/player/{id}/content-update",
		Summary:       "Push content to a screen",
		Tags:          []string{"Player"},
		DefaultStatus: http.StatusAccepted,
	}, h.SendContentUpdate)

	huma.Register(api, huma.Operation{
		OperationID:   "sendScreenCommand",
		Method:        http.MethodPost,
		Path:          "/screens/{id}/command",
		Summary:       "Send a command to a screen",
		Description:   "The 'reload' command makes the screen re-read its record and layout",
		Tags:          []string{"Player"},
		DefaultStatus: http.StatusAccepted,
	}, h.SendCommand)
}

// FrameOutput returns a rendered frame
type FrameOutput struct {
	Body responses.FrameResponse
}

// ContentUpdateInput defines the input for SendContentUpdate
type ContentUpdateInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body requests.ContentUpdateRequest
}

// CommandInput defines the input for SendCommand
type CommandInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body requests.CommandRequest
}

// AcceptedOutput acknowledges a published event
type AcceptedOutput struct {
	Body responses.AcceptedResponse
}

// Frame handles GET /player/{id}/frame
func (h *PlayerHandler) Frame(ctx context.Context, input *ScreenIDInput) (*FrameOutput, error) {
	session, err := h.player.Open(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &FrameOutput{Body: frameResponse(session, h.now())}, nil
}

// ClosePlayer handles DELETE /player/{id}
func (h *PlayerHandler) ClosePlayer(ctx context.Context, input *ScreenIDInput) (*struct{}, error) {
	if !h.player.Close(input.ID) {
		return nil, huma.Error404NotFound("no player session for screen " + input.ID)
	}
	return nil, nil
}

// SendContentUpdate handles POST /player/{id}/content-update
func (h *PlayerHandler) SendContentUpdate(ctx context.Context, input *ContentUpdateInput) (*AcceptedOutput, error) {
	if err := h.player.SendContentUpdate(ctx, input.ID, input.Body.ContentID); err != nil {
		return nil, toHumaError(err)
	}
	return &AcceptedOutput{Body: responses.AcceptedResponse{ScreenID: input.ID, Type: notify.ContentUpdate}}, nil
}

// SendCommand handles POST /screens/{id}/command
func (h *PlayerHandler) SendCommand(ctx context.Context, input *CommandInput) (*AcceptedOutput, error) {
	if err := h.player.SendCommand(ctx, input.ID, input.Body.Command, input.Body.Data); err != nil {
		return nil, toHumaError(err)
	}
	return &AcceptedOutput{Body: responses.AcceptedResponse{ScreenID: input.ID, Type: notify.ScreenCommand}}, nil
}

func frameResponse(s *player.Session, now time.Time) responses.FrameResponse {
	return responses.FrameResponse{
		ScreenID:       s.ScreenID(),
		Frame:          s.Frame(now),
		Fullscreen:     s.Fullscreen(),
		Loading:        s.Loading(),
		Rotations:      s.ActiveRotations(),
		CurrentContent: s.CurrentContent(),
		LastCommand:    s.LastCommand(),
	}
}
