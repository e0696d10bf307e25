// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Previews what a feed URL resolves to and lists the built-in feed catalog

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"signage-app-api/api/dto/mappers"
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
)

// FeedHandler handles feed HTTP requests
type FeedHandler struct {
	resolver interfaces.FeedResolver
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(resolver interfaces.FeedResolver) *FeedHandler {
	return &FeedHandler{resolver: resolver}
}

// RegisterRoutes registers all feed routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveFeed",
		Method:      http.MethodGet,
		Path:        "/feeds/resolve",
		Summary:     "Resolve a feed",
		Description: "Fetches a feed the way a screen would. A feed that cannot be loaded yields a single error item, never an error response.",
		Tags:        []string{"Feeds"},
	}, h.ResolveFeed)

	huma.Register(api, huma.Operation{
		OperationID: "feedCatalog",
		Method:      http.MethodGet,
		Path:        "/feeds/catalog",
		Summary:     "List the built-in feeds",
		Tags:        []string{"Feeds"},
	}, h.Catalog)
}

// ResolveFeedInput defines the input for ResolveFeed
type ResolveFeedInput struct {
	URL     string `query:"url" required:"true" doc:"Feed URL to resolve"`
	Page    int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage int    `query:"per_page" minimum:"1" maximum:"100" default:"10" doc:"Items per page"`
}

// ResolveFeedOutput returns a page of resolved items
type ResolveFeedOutput struct {
	Body responses.ResolvedFeedResponse
}

// CatalogOutput returns the feed catalog
type CatalogOutput struct {
	Body responses.CatalogResponse
}

// ResolveFeed handles GET /feeds/resolve
func (h *FeedHandler) ResolveFeed(ctx context.Context, input *ResolveFeedInput) (*ResolveFeedOutput, error) {
	items := h.resolver.ResolveFeed(ctx, input.URL)
	return &ResolveFeedOutput{Body: *mappers.ToResolvedFeedResponse(input.URL, items, input.Page, input.PerPage)}, nil
}

// Catalog handles GET /feeds/catalog
func (h *FeedHandler) Catalog(ctx context.Context, input *struct{}) (*CatalogOutput, error) {
	feeds := append([]domain.FeedSource(nil), domain.FeedCatalog...)
	return &CatalogOutput{Body: responses.CatalogResponse{Feeds: feeds}}, nil
}
