// ABOUTME: Storage interfaces for the entities the layout engine reads and writes
// ABOUTME: The state store implements them; player and designer depend only on these contracts

package interfaces

import (
	"context"

	"signage-app-api/core/domain"
)

// ScreenRepository gives read access to screens and content by id
type ScreenRepository interface {
	// Screen returns a deep copy of the screen or a NotFoundError
	Screen(id string) (domain.Screen, error)

	// Content returns the content item or a NotFoundError
	Content(id string) (domain.Content, error)

	// ContentByName finds a content item by display name, as screens report it
	ContentByName(name string) (domain.Content, bool)
}

// LayoutStorage persists a screen's layout on its record
type LayoutStorage interface {
	ScreenRepository

	// SetScreenLayout replaces the stored layout and commits the state
	SetScreenLayout(ctx context.Context, screenID string, layout domain.Layout) error
}
