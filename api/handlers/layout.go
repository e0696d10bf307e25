// ABOUTME: Layout handlers edit a screen's saved layout directly through the designer
// ABOUTME: Every edit is copy-on-write, normalized, persisted and pushed to the screen's player

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"signage-app-api/api/dto/mappers"
	"signage-app-api/api/dto/requests"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/designer"
	"signage-app-api/core/domain"
	"signage-app-api/core/layout"
	"signage-app-api/core/render"
)

// LayoutService is the part of the designer the layout and draft endpoints use
type LayoutService interface {
	Stored(screenID string) (domain.Layout, bool, error)
	Open(ctx context.Context, screenID string) (domain.Layout, error)
	Apply(ctx context.Context, screenID string, edit designer.Edit) (domain.Layout, error)
	Save(ctx context.Context, screenID string) (domain.Layout, error)
	Discard(screenID string) bool
	Update(ctx context.Context, screenID string, edit designer.Edit) (domain.Layout, error)
	Preview(ctx context.Context, screenID string, now time.Time) (render.Frame, error)
}

// LayoutHandler handles layout HTTP requests
type LayoutHandler struct {
	layouts LayoutService
}

// NewLayoutHandler creates a new layout handler
func NewLayoutHandler(layouts LayoutService) *LayoutHandler {
	return &LayoutHandler{layouts: layouts}
}

// RegisterRoutes registers the layout routes
func (h *LayoutHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getLayout",
		Method:      http.MethodGet,
		Path:        "/screens/{id}/layout",
		Summary:     "Get a screen's layout",
		Description: "Returns the saved layout, or the default layout when the screen was never designed",
		Tags:        []string{"Layout"},
	}, h.GetLayout)

	huma.Register(api, huma.Operation{
		OperationID: "replaceLayout",
		Method:      http.MethodPut,
		Path:        "/screens/{id}/layout",
		Summary:     "Replace a screen's layout",
		Description: "Normalizes and validates the layout before saving it",
		Tags:        []string{"Layout"},
	}, h.ReplaceLayout)

	huma.Register(api, huma.Operation{
		OperationID: "setSectionCount",
		Method:      http.MethodPost,
		Path:        "/screens/{id}/layout/sections",
		Summary:     "Resize the right column",
		Description: "Sets the section count to 2 or 3. Sections past the new count are dropped; the response reports how many configured ones were lost.",
		Tags:        []string{"Layout"},
	}, h.SetSections)

	huma.Register(api, huma.Operation{
		OperationID: "setLeftColumnWidth",
		Method:      http.MethodPost,
		Path:        "/screens/{id}/layout/width",
		Summary:     "Set the left column width",
		Description: "Clamps the width to 50-80 percent; the right column takes the rest",
		Tags:        []string{"Layout"},
	}, h.SetWidth)

	huma.Register(api, huma.Operation{
		OperationID: "setRegion",
		Method:      http.MethodPut,
		Path:        "/screens/{id}/layout/regions/{region}",
		Summary:     "Configure a region",
		Description: "region is 'left' or a zero-based section index. Weather and clock are section-only.",
		Tags:        []string{"Layout"},
	}, h.SetRegion)

	huma.Register(api, huma.Operation{
		OperationID: "setBottomBar",
		Method:      http.MethodPut,
		Path:        "/screens/{id}/layout/bottom-bar",
		Summary:     "Configure the ticker",
		Tags:        []string{"Layout"},
	}, h.SetBottomBar)
}

// LayoutOutput returns a layout
type LayoutOutput struct {
	Body responses.LayoutResponse
}

// ReplaceLayoutInput defines the input for ReplaceLayout
type ReplaceLayoutInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body domain.Layout
}

// SectionsInput defines the input for SetSections
type SectionsInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body requests.SectionsRequest
}

// WidthInput defines the input for SetWidth
type WidthInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body requests.WidthRequest
}

// RegionInput defines the input for SetRegion
type RegionInput struct {
	ID     string `path:"id" doc:"Screen identifier"`
	Region string `path:"region" doc:"'left' or a section index"`
	Body   requests.RegionRequest
}

// BottomBarInput defines the input for SetBottomBar
type BottomBarInput struct {
	ID   string `path:"id" doc:"Screen identifier"`
	Body requests.BottomBarRequest
}

// GetLayout handles GET /screens/{id}/layout
func (h *LayoutHandler) GetLayout(ctx context.Context, input *ScreenIDInput) (*LayoutOutput, error) {
	l, stored, err := h.layouts.Stored(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LayoutOutput{Body: *mappers.ToLayoutResponse(input.ID, l, stored)}, nil
}

// ReplaceLayout handles PUT /screens/{id}/layout
func (h *LayoutHandler) ReplaceLayout(ctx context.Context, input *ReplaceLayoutInput) (*LayoutOutput, error) {
	return h.update(ctx, input.ID, designer.Replace(input.Body))
}

// SetSections handles POST /screens/{id}/layout/sections
func (h *LayoutHandler) SetSections(ctx context.Context, input *SectionsInput) (*LayoutOutput, error) {
	current, _, err := h.layouts.Stored(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	dropped := layout.DroppedSections(current, input.Body.Sections)

	out, err := h.update(ctx, input.ID, designer.SetSections(input.Body.Sections))
	if err != nil {
		return nil, err
	}
	out.Body.Dropped = dropped
	return out, nil
}

// SetWidth handles POST /screens/{id}/layout/width
func (h *LayoutHandler) SetWidth(ctx context.Context, input *WidthInput) (*LayoutOutput, error) {
	return h.update(ctx, input.ID, designer.SetWidth(input.Body.Width))
}

// SetRegion handles PUT /screens/{id}/layout/regions/{region}
func (h *LayoutHandler) SetRegion(ctx context.Context, input *RegionInput) (*LayoutOutput, error) {
	return h.update(ctx, input.ID, mappers.RegionEdit(input.Region, input.Body))
}

// SetBottomBar handles PUT /screens/{id}/layout/bottom-bar
func (h *LayoutHandler) SetBottomBar(ctx context.Context, input *BottomBarInput) (*LayoutOutput, error) {
	return h.update(ctx, input.ID, mappers.BottomBarEdit(input.Body))
}

func (h *LayoutHandler) update(ctx context.Context, screenID string, edit designer.Edit) (*LayoutOutput, error) {
	l, err := h.layouts.Update(ctx, screenID, edit)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LayoutOutput{Body: *mappers.ToLayoutResponse(screenID, l, true)}, nil
}
