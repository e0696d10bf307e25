// ABOUTME: Resolver turns a feed URL into display-ready items and never fails
// ABOUTME: Any fetch, status or parse failure collapses into a single synthetic error item

package feed

import (
	"context"
	"strings"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/pkg/featureflags"
)

// Feed modes
const (
	ModeProxy  = "proxy"
	ModeDirect = "direct"
)

// Options configures a Resolver
type Options struct {
	// Mode selects the source: proxy (default) or direct
	Mode string

	// ProxyURL overrides the rss2json endpoint
	ProxyURL string

	// Flags can switch proxy mode to direct parsing at runtime
	Flags featureflags.Manager
}

// Resolver fetches feeds on every call. It holds no cache.
type Resolver struct {
	deps   interfaces.Dependencies
	proxy  Source
	direct Source
	mode   string
	flags  featureflags.Manager
	now    func() time.Time
}

// NewResolver creates a resolver over deps.HTTPClient
func NewResolver(deps interfaces.Dependencies, opts Options) *Resolver {
	mode := opts.Mode
	if mode != ModeDirect {
		mode = ModeProxy
	}
	flags := opts.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &Resolver{
		deps:   deps,
		proxy:  NewProxySource(deps.HTTPClient, opts.ProxyURL),
		direct: NewDirectSource(deps.HTTPClient),
		mode:   mode,
		flags:  flags,
		now:    time.Now,
	}
}

// ResolveFeed returns the items of feedURL, or exactly one fallback item when the feed
// cannot be loaded or has no entries. The result is never empty.
func (r *Resolver) ResolveFeed(ctx context.Context, feedURL string) []domain.ResolvedFeedItem {
	feedURL = strings.TrimSpace(feedURL)
	if feedURL == "" {
		r.log("Feed URL is empty", feedURL, nil)
		return r.fallback()
	}

	source, name := r.source(ctx)
	items, err := source.Fetch(ctx, feedURL)
	if err != nil {
		r.log("Failed to resolve feed", feedURL, map[string]interface{}{"source": name, "error": err.Error()})
		return r.fallback()
	}
	if len(items) == 0 {
		r.log("Feed has no items", feedURL, map[string]interface{}{"source": name})
		return r.fallback()
	}

	if r.deps.Logger != nil {
		r.deps.Logger.Debug("Resolved feed", map[string]interface{}{
			"url":    feedURL,
			"source": name,
			"items":  len(items),
		})
	}
	return items
}

// IsFallback reports whether items is the synthetic error result
func IsFallback(items []domain.ResolvedFeedItem) bool {
	return len(items) == 1 && items[0].Title == domain.FeedErrorTitle && items[0].Link == "#"
}

// Headlines returns the item titles in order, for the ticker
func Headlines(items []domain.ResolvedFeedItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Title != "" {
			out = append(out, it.Title)
		}
	}
	return out
}

func (r *Resolver) source(ctx context.Context) (Source, string) {
	if r.mode == ModeDirect || r.flags.IsEnabled(ctx, featureflags.DirectFeeds) {
		return r.direct, ModeDirect
	}
	return r.proxy, ModeProxy
}

func (r *Resolver) fallback() []domain.ResolvedFeedItem {
	return []domain.ResolvedFeedItem{domain.FeedErrorItem(r.now())}
}

func (r *Resolver) log(msg, feedURL string, extra map[string]interface{}) {
	if r.deps.Logger == nil {
		return
	}
	fields := map[string]interface{}{"url": feedURL}
	for k, v := range extra {
		fields[k] = v
	}
	r.deps.Logger.Warn(msg, fields)
}
