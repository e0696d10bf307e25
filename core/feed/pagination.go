// ABOUTME: Pagination utilities for resolved feed items
// ABOUTME: Used by the feed preview endpoint to page long feeds

package feed

import "signage-app-api/core/domain"

// PaginateItems returns a page of items. page is 1-based; perPage defaults to 10.
func PaginateItems(items []domain.ResolvedFeedItem, page, perPage int) []domain.ResolvedFeedItem {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []domain.ResolvedFeedItem{}
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
