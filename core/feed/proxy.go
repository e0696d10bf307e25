// ABOUTME: ProxySource resolves feeds through an RSS-to-JSON proxy service
// ABOUTME: The target feed URL is passed URL-encoded in the rss_url query parameter

package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/interfaces"
)

// DefaultProxyURL is the public rss2json endpoint
const DefaultProxyURL = "https://api.rss2json.com/v1/api.json"

const proxyAPIName = "rss2json"

// ProxySource fetches feeds as JSON from the proxy
type ProxySource struct {
	client   interfaces.HTTPClient
	endpoint string
}

// NewProxySource creates a proxy source. An empty endpoint selects DefaultProxyURL.
func NewProxySource(client interfaces.HTTPClient, endpoint string) *ProxySource {
	if endpoint == "" {
		endpoint = DefaultProxyURL
	}
	return &ProxySource{client: client, endpoint: endpoint}
}

type proxyResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Items   []proxyItem `json:"items"`
}

type proxyItem struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Link        string         `json:"link"`
	PubDate     string         `json:"pubDate"`
	Enclosure   proxyEnclosure `json:"enclosure"`
	Thumbnail   string         `json:"thumbnail"`
	Content     string         `json:"content"`
}

// proxyEnclosure tolerates the proxy sending [] instead of {} for items without one
type proxyEnclosure struct {
	Link string `json:"link"`
}

func (e *proxyEnclosure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*e = proxyEnclosure{}
		return nil
	}
	type plain proxyEnclosure
	return json.Unmarshal(data, (*plain)(e))
}

// RequestURL builds the proxy URL for feedURL
func (p *ProxySource) RequestURL(feedURL string) string {
	return p.endpoint + "?rss_url=" + url.QueryEscape(feedURL)
}

// Fetch performs a single GET against the proxy and maps its items
func (p *ProxySource) Fetch(ctx context.Context, feedURL string) ([]domain.ResolvedFeedItem, error) {
	if p.client == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := p.client.Get(ctx, p.RequestURL(feedURL))
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetch feed via proxy")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
			API:        proxyAPIName,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read proxy response")
	}

	var decoded proxyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, coreerrors.WrapError(err, "decode proxy response")
	}
	if decoded.Status != "ok" {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("status %q: %s", decoded.Status, decoded.Message),
			API:        proxyAPIName,
		}
	}

	raws := make([]rawItem, 0, len(decoded.Items))
	for _, it := range decoded.Items {
		raws = append(raws, rawItem{
			Title:       it.Title,
			Description: it.Description,
			Link:        it.Link,
			PubDate:     it.PubDate,
			Enclosure:   it.Enclosure.Link,
			Thumbnail:   it.Thumbnail,
			Content:     it.Content,
		})
	}
	return normalizeAll(raws), nil
}
