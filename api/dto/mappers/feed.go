// ABOUTME: Mappers for converting resolved feeds into API DTOs
// ABOUTME: Pages long feeds and flags the synthetic error result

package mappers

import (
	"signage-app-api/api/dto/responses"
	"signage-app-api/core/domain"
	"signage-app-api/core/feed"
)

// ToResolvedFeedResponse pages items for the preview endpoint
func ToResolvedFeedResponse(feedURL string, items []domain.ResolvedFeedItem, page, perPage int) *responses.ResolvedFeedResponse {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	pageItems := feed.PaginateItems(items, page, perPage)
	return &responses.ResolvedFeedResponse{
		URL:       feedURL,
		Items:     pageItems,
		Headlines: feed.Headlines(pageItems),
		Fallback:  feed.IsFallback(items),
		Total:     len(items),
		Page:      page,
		PerPage:   perPage,
	}
}
