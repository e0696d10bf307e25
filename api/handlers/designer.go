// ABOUTME: Designer handlers expose per-screen layout drafts with live previews
// ABOUTME: Drafts are edited in memory and only reach the screen's player when saved

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"signage-app-api/api/dto/mappers"
	"signage-app-api/api/dto/requests"
	"signage-app-api/api/dto/responses"
)

// DesignerHandler handles designer draft HTTP requests
type DesignerHandler struct {
	layouts LayoutService
	now     func() time.Time
}

// NewDesignerHandler creates a new designer handler
func NewDesignerHandler(layouts LayoutService) *DesignerHandler {
	return &DesignerHandler{layouts: layouts, now: time.Now}
}

// RegisterRoutes registers the designer routes
func (h *DesignerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "openDraft",
		Method:      http.MethodPost,
		Path:        "/designer/{id}/open",
		Summary:     "Open a layout draft",
		Description: "Starts a draft from the saved layout (or the default one), or resumes the open draft",
		Tags:        []string{"Designer"},
	}, h.Open)

	huma.Register(api, huma.Operation{
		OperationID: "editDraft",
		Method:      http.MethodPatch,
		Path:        "/designer/{id}",
		Summary:     "Edit a layout draft",
		Description: "Applies all given edits or none of them",
		Tags:        []string{"Designer"},
	}, h.Edit)

	huma.Register(api, huma.Operation{
		OperationID: "previewDraft",
		Method:      http.MethodGet,
		Path:        "/designer/{id}/preview",
		Summary:     "Preview a layout draft",
		Description: "Renders the draft with freshly resolved feeds",
		Tags:        []string{"Designer"},
	}, h.Preview)

	huma.Register(api, huma.Operation{
		OperationID: "saveDraft",
		Method:      http.MethodPost,
		Path:        "/designer/{id}/save",
		Summary:     "Save a layout draft",
		Description: "Persists the draft on the screen and reloads the screen's player",
		Tags:        []string{"Designer"},
	}, h.Save)

	huma.Register(api, huma.Operation{
		OperationID: "discardDraft",
		Method:      http.MethodDelete,
		Path:        "/designer/{id}",
		Summary:     "Discard a layout draft",
		Tags:        []string{"Designer"},
	}, h.Discard)
}

// EditDraftInput defines the input for Edit
type EditDraftInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body requests.DraftEditRequest
}

// PreviewOutput returns a rendered draft
type PreviewOutput struct {
	Body responses.PreviewResponse
}

// Open handles POST /designer/{id}/open
func (h *DesignerHandler) Open(ctx context.Context, input *ScreenIDInput) (*LayoutOutput, error) {
	l, err := h.layouts.Open(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	resp := mappers.ToLayoutResponse(input.ID, l, false)
	resp.Draft = true
	return &LayoutOutput{Body: *resp}, nil
}

// Edit handles PATCH /designer/{id}
func (h *DesignerHandler) Edit(ctx context.Context, input *EditDraftInput) (*LayoutOutput, error) {
	l, err := h.layouts.Apply(ctx, input.ID, mappers.DraftEdits(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	resp := mappers.ToLayoutResponse(input.ID, l, false)
	resp.Draft = true
	return &LayoutOutput{Body: *resp}, nil
}

// Preview handles GET /designer/{id}/preview
func (h *DesignerHandler) Preview(ctx context.Context, input *ScreenIDInput) (*PreviewOutput, error) {
	frame, err := h.layouts.Preview(ctx, input.ID, h.now())
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PreviewOutput{Body: responses.PreviewResponse{ScreenID: input.ID, Frame: frame}}, nil
}

// Save handles POST /designer/{id}/save
func (h *DesignerHandler) Save(ctx context.Context, input *ScreenIDInput) (*LayoutOutput, error) {
	l, err := h.layouts.Save(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LayoutOutput{Body: *mappers.ToLayoutResponse(input.ID, l, true)}, nil
}

// Discard handles DELETE /designer/{id}
func (h *DesignerHandler) Discard(ctx context.Context, input *ScreenIDInput) (*struct{}, error) {
	if !h.layouts.Discard(input.ID) {
		return nil, huma.Error404NotFound("no open draft for screen " + input.ID)
	}
	return nil, nil
}
