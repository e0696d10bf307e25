// ABOUTME: Response DTOs for layout, designer and player endpoints
// ABOUTME: Layouts always carry the derived right column width

package responses

import (
	"signage-app-api/core/domain"
	"signage-app-api/core/notify"
	"signage-app-api/core/render"
)

// LayoutResponse describes a screen's layout or designer draft
type LayoutResponse struct {
	ScreenID         string        `json:"screenId" doc:"Screen the layout belongs to"`
	Layout           domain.Layout `json:"layout" doc:"Layout description"`
	RightColumnWidth int           `json:"rightColumnWidth" doc:"Derived right column width in percent"`
	Stored           bool          `json:"stored" doc:"False when the screen has no layout yet and the default is shown"`
	Draft            bool          `json:"draft,omitempty" doc:"The layout is an unsaved designer draft"`
	Dropped          int           `json:"dropped,omitempty" doc:"Configured sections discarded by a resize"`
}

// FrameResponse is one rendered instant of a screen
type FrameResponse struct {
	ScreenID       string          `json:"screenId" doc:"Resolved screen id"`
	Frame          render.Frame    `json:"frame" doc:"Positioned regions and their views"`
	Fullscreen     bool            `json:"fullscreen" doc:"The player has settled into fullscreen"`
	Loading        bool            `json:"loading" doc:"At least one feed is still being fetched"`
	Rotations      []string        `json:"rotations" doc:"Regions with an active rotation timer"`
	CurrentContent *domain.Content `json:"currentContent,omitempty" doc:"Content pushed to the screen"`
	LastCommand    *notify.Event   `json:"lastCommand,omitempty" doc:"Most recent screen command"`
}

// PreviewResponse is the designer's live preview of a draft
type PreviewResponse struct {
	ScreenID string       `json:"screenId" doc:"Screen being designed"`
	Frame    render.Frame `json:"frame" doc:"Frame rendered from the draft"`
}

// AcceptedResponse acknowledges an event sent to a screen
type AcceptedResponse struct {
	ScreenID string      `json:"screenId" doc:"Target screen"`
	Type     notify.Kind `json:"type" doc:"Event type that was published"`
}
