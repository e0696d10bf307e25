// ABOUTME: DirectSource downloads the raw RSS/Atom document and parses it with gofeed
// ABOUTME: Used when the proxy is disabled by configuration or the direct_feeds flag

package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/interfaces"

	"github.com/mmcdole/gofeed"
)

// DirectSource parses feeds without a proxy
type DirectSource struct {
	client interfaces.HTTPClient
}

// NewDirectSource creates a direct source
func NewDirectSource(client interfaces.HTTPClient) *DirectSource {
	return &DirectSource{client: client}
}

// Fetch downloads and parses feedURL
func (d *DirectSource) Fetch(ctx context.Context, feedURL string) ([]domain.ResolvedFeedItem, error) {
	if d.client == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := d.client.Get(ctx, feedURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetch feed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        feedURL,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read feed")
	}
	return parseFeedContent(body)
}

func parseFeedContent(content []byte) ([]domain.ResolvedFeedItem, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	raws := make([]rawItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		raws = append(raws, convertItem(item))
	}
	return normalizeAll(raws), nil
}

func convertItem(item *gofeed.Item) rawItem {
	raw := rawItem{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		PubDate:     item.Published,
		Published:   item.PublishedParsed,
		Enclosure:   findEnclosure(item),
		Thumbnail:   findThumbnail(item),
		Content:     item.Content,
	}
	if raw.Published == nil {
		raw.Published = item.UpdatedParsed
	}
	if raw.Content == "" {
		raw.Content = item.Description
	}
	return raw
}

// findEnclosure returns the first enclosure that is an image or carries no type
func findEnclosure(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc.URL != "" && (enc.Type == "" || strings.HasPrefix(enc.Type, "image/")) {
			return enc.URL
		}
	}
	return ""
}

// findThumbnail checks media:thumbnail, media:content, the item image and the iTunes image in that order
func findThumbnail(item *gofeed.Item) string {
	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"thumbnail", "content"} {
			for _, ext := range media[name] {
				if u := ext.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}
	return ""
}
