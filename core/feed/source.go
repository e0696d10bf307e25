// ABOUTME: Feed sources fetch one upstream feed and map its entries into ResolvedFeedItems
// ABOUTME: Both the JSON proxy and the direct parser share the same normalization rules

package feed

import (
	"context"
	"time"

	"signage-app-api/core/domain"
	htmlutil "signage-app-api/pkg/utils/html"
	timeutil "signage-app-api/pkg/utils/time"
)

// MaxDescriptionLength is the plain-text length kept before the ellipsis
const MaxDescriptionLength = 200

// Source fetches a feed. Errors are returned to the Resolver, which turns them into the fallback item.
type Source interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.ResolvedFeedItem, error)
}

// rawItem is an upstream entry before normalization
type rawItem struct {
	Title       string
	Description string
	Link        string
	PubDate     string
	Published   *time.Time
	Enclosure   string
	Thumbnail   string
	Content     string
}

func normalize(raw rawItem) domain.ResolvedFeedItem {
	item := domain.ResolvedFeedItem{
		Title:       htmlutil.StripHTML(raw.Title),
		Description: htmlutil.Truncate(htmlutil.StripHTML(raw.Description), MaxDescriptionLength),
		Link:        raw.Link,
		ImageURL:    imageFor(raw),
	}
	if raw.Published != nil {
		item.PublishedAt = *raw.Published
	} else {
		item.PublishedAt = timeutil.ParseFlexibleTime(raw.PubDate)
	}
	return item
}

// imageFor walks the fallback chain: enclosure, thumbnail, first <img> in content, placeholder
func imageFor(raw rawItem) string {
	if raw.Enclosure != "" {
		return raw.Enclosure
	}
	if raw.Thumbnail != "" {
		return raw.Thumbnail
	}
	if src := htmlutil.FirstImageSrc(raw.Content); src != "" {
		return src
	}
	return domain.PlaceholderImage
}

func normalizeAll(raws []rawItem) []domain.ResolvedFeedItem {
	items := make([]domain.ResolvedFeedItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, normalize(raw))
	}
	return items
}
