// ABOUTME: ResolvedFeedItem is the canonical, display-ready form of one RSS entry
// ABOUTME: Also holds the static placeholders used when feeds or images fail

package domain

import "time"

// Placeholder assets used by soft failures
const (
	PlaceholderImage      = "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=800&h=600&fit=crop"
	PlaceholderSlideImage = "https://via.placeholder.com/800x600?text=Image+Error"

	FeedErrorTitle       = "RSS Feed Error"
	FeedErrorDescription = "Unable to load RSS feed. Please check the URL and try again."
)

// ResolvedFeedItem represents a feed entry after fetch and normalization.
// It is never persisted.
type ResolvedFeedItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"publishedAt"`
	ImageURL    string    `json:"imageUrl"`
}

// IsValid checks if the item has something to display
func (fi *ResolvedFeedItem) IsValid() bool {
	return fi.Title != "" && fi.ImageURL != ""
}

// FeedErrorItem builds the synthetic item shown when a feed cannot be loaded
func FeedErrorItem(now time.Time) ResolvedFeedItem {
	return ResolvedFeedItem{
		Title:       FeedErrorTitle,
		Description: FeedErrorDescription,
		Link:        "#",
		PublishedAt: now,
		ImageURL:    PlaceholderImage,
	}
}

// SampleHeadlines feed the ticker when its own feed fails
var SampleHeadlines = []string{
	"Breaking: Technology stocks surge in early trading",
	"Weather Alert: Heavy rain expected this afternoon",
	"Sports Update: Local team advances to finals",
	"Traffic Advisory: Main street construction begins Monday",
}
