package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"signage-app-api/api/dto/responses"
	"signage-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedAPI(t *testing.T, resolver *mockResolver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewFeedHandler(resolver).RegisterRoutes(api)
	return api
}

func TestFeedHandler_ResolveFeed_Paginates(t *testing.T) {
	var requested string
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, feedURL string) []domain.ResolvedFeedItem {
			requested = feedURL
			items := make([]domain.ResolvedFeedItem, 25)
			for i := range items {
				items[i] = domain.ResolvedFeedItem{Title: fmt.Sprintf("Story %d", i+1), Link: "https://news.example"}
			}
			return items
		},
	}
	api := newFeedAPI(t, resolver)

	feedURL := "https://feeds.example/rss?lang=en"
	resp := api.Get("/feeds/resolve?url=" + url.QueryEscape(feedURL) + "&page=3&per_page=10")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.ResolvedFeedResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, feedURL, requested)
	assert.Equal(t, 25, body.Total)
	assert.Equal(t, 3, body.Page)
	assert.Equal(t, 10, body.PerPage)
	require.Len(t, body.Items, 5)
	assert.Equal(t, "Story 21", body.Items[0].Title)
	assert.Equal(t, []string{"Story 21", "Story 22", "Story 23", "Story 24", "Story 25"}, body.Headlines)
	assert.False(t, body.Fallback)
}

func TestFeedHandler_ResolveFeed_Defaults(t *testing.T) {
	api := newFeedAPI(t, &mockResolver{})

	resp := api.Get("/feeds/resolve?url=https://feeds.example/rss")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.ResolvedFeedResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 10, body.PerPage)
	assert.Equal(t, 1, body.Total)
}

func TestFeedHandler_ResolveFeed_FlagsFallback(t *testing.T) {
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, feedURL string) []domain.ResolvedFeedItem {
			return []domain.ResolvedFeedItem{domain.FeedErrorItem(testNow)}
		},
	}
	api := newFeedAPI(t, resolver)

	resp := api.Get("/feeds/resolve?url=https://broken.example/rss")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.ResolvedFeedResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Fallback)
	assert.Equal(t, domain.FeedErrorTitle, body.Items[0].Title)
}

func TestFeedHandler_ResolveFeed_Validation(t *testing.T) {
	api := newFeedAPI(t, &mockResolver{})

	resp := api.Get("/feeds/resolve")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Get("/feeds/resolve?url=https://feeds.example/rss&per_page=500")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestFeedHandler_Catalog(t *testing.T) {
	api := newFeedAPI(t, &mockResolver{})

	resp := api.Get("/feeds/catalog")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.CatalogResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, domain.FeedCatalog, body.Feeds)
}
