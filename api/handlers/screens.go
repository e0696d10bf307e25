// ABOUTME: Screen handlers for the Huma API
// ABOUTME: Registers, updates and removes screens, keeping player sessions and drafts in step

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"signage-app-api/api/dto/mappers"
	"signage-app-api/api/dto/requests"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/store"
)

// StateStore is the part of the application state container the handlers use
type StateStore interface {
	Screens() []domain.Screen
	Screen(id string) (domain.Screen, error)
	Contents() []domain.Content
	Content(id string) (domain.Content, error)
	Schedules() []domain.Schedule
	Settings() domain.Settings
	Analytics() domain.Analytics
	Dispatch(ctx context.Context, action store.Action) error
}

// ScreenSessions lets screen edits reach a playing screen
type ScreenSessions interface {
	Reload(ctx context.Context, screenID string) error
	Close(screenID string) bool
}

// DraftDiscarder drops a screen's unsaved designer draft
type DraftDiscarder interface {
	Discard(screenID string) bool
}

// ScreenHandler handles screen HTTP requests
type ScreenHandler struct {
	store    StateStore
	sessions ScreenSessions
	drafts   DraftDiscarder
	logger   interfaces.Logger
}

// NewScreenHandler creates a new screen handler. sessions and drafts may be nil.
func NewScreenHandler(deps interfaces.Dependencies, store StateStore, sessions ScreenSessions, drafts DraftDiscarder) *ScreenHandler {
	return &ScreenHandler{
		store:    store,
		sessions: sessions,
		drafts:   drafts,
		logger:   deps.Logger,
	}
}

// RegisterRoutes registers all screen routes
func (h *ScreenHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listScreens",
		Method:      http.MethodGet,
		Path:        "/screens",
		Summary:     "List screens",
		Tags:        []string{"Screens"},
	}, h.ListScreens)

	huma.Register(api, huma.Operation{
		OperationID:   "createScreen",
		Method:        http.MethodPost,
		Path:          "/screens",
		Summary:       "Register a screen",
		Description:   "Adds a screen. New screens have no layout and play their current content full screen.",
		Tags:          []string{"Screens"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateScreen)

	huma.Register(api, huma.Operation{
		OperationID: "getScreen",
		Method:      http.MethodGet,
		Path:        "/screens/{id}",
		Summary:     "Get a screen",
		Tags:        []string{"Screens"},
	}, h.GetScreen)

	huma.Register(api, huma.Operation{
		OperationID: "updateScreen",
		Method:      http.MethodPatch,
		Path:        "/screens/{id}",
		Summary:     "Update a screen",
		Description: "Merges the given fields into the screen and re-syncs its player session",
		Tags:        []string{"Screens"},
	}, h.UpdateScreen)

	huma.Register(api, huma.Operation{
		OperationID: "deleteScreen",
		Method:      http.MethodDelete,
		Path:        "/screens/{id}",
		Summary:     "Delete a screen",
		Description: "Removes the screen with its layout, closes its player session and drops its draft",
		Tags:        []string{"Screens"},
	}, h.DeleteScreen)
}

// ScreenIDInput addresses one screen
type ScreenIDInput struct {
	ID string `path:"id" doc:"Screen identifier"`
}

// ScreenOutput returns one screen
type ScreenOutput struct {
	Body domain.Screen
}

// ListScreensOutput returns every screen
type ListScreensOutput struct {
	Body responses.ScreensResponse
}

// CreateScreenInput defines the input for CreateScreen
type CreateScreenInput struct {
	Body requests.CreateScreenRequest
}

// UpdateScreenInput defines the input for UpdateScreen
type UpdateScreenInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body store.ScreenPatch
}

// DeleteScreenOutput reports the cleanup of a deleted screen
type DeleteScreenOutput struct {
	Body responses.DeleteScreenResponse
}

// ListScreens handles GET /screens
func (h *ScreenHandler) ListScreens(ctx context.Context, input *struct{}) (*ListScreensOutput, error) {
	screens := h.store.Screens()
	return &ListScreensOutput{Body: responses.ScreensResponse{Screens: screens, Total: len(screens)}}, nil
}

// CreateScreen handles POST /screens
func (h *ScreenHandler) CreateScreen(ctx context.Context, input *CreateScreenInput) (*ScreenOutput, error) {
	screen := mappers.ToScreen(input.Body)
	if screen.ID == "" {
		screen.ID = uuid.NewString()
	}
	if err := h.store.Dispatch(ctx, store.AddScreen{Screen: screen}); err != nil {
		return nil, toHumaError(err)
	}

	created, err := h.store.Screen(screen.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	h.logger.Info("Screen registered", map[string]interface{}{
		"screen_id": created.ID,
		"name":      created.Name,
	})
	return &ScreenOutput{Body: created}, nil
}

// GetScreen handles GET /screens/{id}
func (h *ScreenHandler) GetScreen(ctx context.Context, input *ScreenIDInput) (*ScreenOutput, error) {
	screen, err := h.store.Screen(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ScreenOutput{Body: screen}, nil
}

// UpdateScreen handles PATCH /screens/{id}
func (h *ScreenHandler) UpdateScreen(ctx context.Context, input *UpdateScreenInput) (*ScreenOutput, error) {
	if err := h.store.Dispatch(ctx, store.UpdateScreen{ID: input.ID, Patch: input.Body}); err != nil {
		return nil, toHumaError(err)
	}

	if h.sessions != nil {
		if err := h.sessions.Reload(ctx, input.ID); err != nil {
			h.logger.Warn("Player reload after screen update failed", map[string]interface{}{
				"screen_id": input.ID,
				"error":     err.Error(),
			})
		}
	}

	screen, err := h.store.Screen(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ScreenOutput{Body: screen}, nil
}

// DeleteScreen handles DELETE /screens/{id}
func (h *ScreenHandler) DeleteScreen(ctx context.Context, input *ScreenIDInput) (*DeleteScreenOutput, error) {
	if err := h.store.Dispatch(ctx, store.DeleteScreen{ID: input.ID}); err != nil {
		return nil, toHumaError(err)
	}

	resp := responses.DeleteScreenResponse{ID: input.ID}
	if h.sessions != nil {
		resp.SessionClosed = h.sessions.Close(input.ID)
	}
	if h.drafts != nil {
		resp.DraftDiscarded = h.drafts.Discard(input.ID)
	}

	h.logger.Info("Screen deleted", map[string]interface{}{
		"screen_id":       input.ID,
		"session_closed":  resp.SessionClosed,
		"draft_discarded": resp.DraftDiscarded,
	})
	return &DeleteScreenOutput{Body: resp}, nil
}
