// ABOUTME: Settings and analytics handlers for the Huma API
// ABOUTME: Analytics are derived from the state on every request

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"signage-app-api/core/domain"
	"signage-app-api/core/store"
)

// SettingsHandler handles settings and analytics HTTP requests
type SettingsHandler struct {
	store StateStore
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store StateStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// RegisterRoutes registers settings and analytics routes
func (h *SettingsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/settings",
		Summary:     "Get console settings",
		Tags:        []string{"Settings"},
	}, h.GetSettings)

	huma.Register(api, huma.Operation{
		OperationID: "updateSettings",
		Method:      http.MethodPatch,
		Path:        "/settings",
		Summary:     "Update console settings",
		Tags:        []string{"Settings"},
	}, h.UpdateSettings)

	huma.Register(api, huma.Operation{
		OperationID: "getAnalytics",
		Method:      http.MethodGet,
		Path:        "/analytics",
		Summary:     "Get dashboard counters",
		Tags:        []string{"Settings"},
	}, h.GetAnalytics)
}

// SettingsOutput returns the settings
type SettingsOutput struct {
	Body domain.Settings
}

// UpdateSettingsInput defines the input for UpdateSettings
type UpdateSettingsInput struct {
	Body store.SettingsPatch
}

// AnalyticsOutput returns the dashboard counters
type AnalyticsOutput struct {
	Body domain.Analytics
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(ctx context.Context, input *struct{}) (*SettingsOutput, error) {
	return &SettingsOutput{Body: h.store.Settings()}, nil
}

// UpdateSettings handles PATCH /settings
func (h *SettingsHandler) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	if err := h.store.Dispatch(ctx, store.UpdateSettings{Patch: input.Body}); err != nil {
		return nil, toHumaError(err)
	}
	return &SettingsOutput{Body: h.store.Settings()}, nil
}

// GetAnalytics handles GET /analytics
func (h *SettingsHandler) GetAnalytics(ctx context.Context, input *struct{}) (*AnalyticsOutput, error) {
	return &AnalyticsOutput{Body: h.store.Analytics()}, nil
}
