// ABOUTME: Response DTOs for feed preview, feed catalog and YouTube embed endpoints
// ABOUTME: A feed that failed to load is reported as a fallback, never as an error

package responses

import "signage-app-api/core/domain"

// ResolvedFeedResponse is a page of resolved feed items
type ResolvedFeedResponse struct {
	URL       string                    `json:"url" doc:"Feed URL that was resolved"`
	Items     []domain.ResolvedFeedItem `json:"items" doc:"Items of the requested page"`
	Headlines []string                  `json:"headlines" doc:"Titles of the page's items, as the ticker shows them"`
	Fallback  bool                      `json:"fallback" doc:"The feed could not be loaded and the error item is shown"`
	Total     int                       `json:"total" doc:"Total number of resolved items"`
	Page      int                       `json:"page" doc:"Current page number"`
	PerPage   int                       `json:"per_page" doc:"Items per page"`
}

// CatalogResponse lists the built-in feeds
type CatalogResponse struct {
	Feeds []domain.FeedSource `json:"feeds" doc:"Feeds offered by the designer"`
}

// EmbedResponse is the iframe URL of a YouTube link
type EmbedResponse struct {
	URL      string `json:"url" doc:"Link that was inspected"`
	Valid    bool   `json:"valid" doc:"The link points at a YouTube video"`
	VideoID  string `json:"videoId,omitempty" doc:"Extracted video id"`
	EmbedURL string `json:"embedUrl,omitempty" doc:"Player embed URL"`
}
