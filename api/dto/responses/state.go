// ABOUTME: Response DTOs for screen, content library, schedule and analytics endpoints
// ABOUTME: Wraps domain lists with totals so clients can render counters without counting

package responses

import "signage-app-api/core/domain"

// ScreensResponse lists the registered screens
type ScreensResponse struct {
	Screens []domain.Screen `json:"screens" doc:"Registered screens"`
	Total   int             `json:"total" doc:"Number of screens"`
}

// ContentListResponse lists the content library
type ContentListResponse struct {
	Content []domain.Content `json:"content" doc:"Library items"`
	Total   int              `json:"total" doc:"Number of items"`
}

// SchedulesResponse lists the schedules
type SchedulesResponse struct {
	Schedules []domain.Schedule `json:"schedules" doc:"Schedules"`
	Total     int               `json:"total" doc:"Number of schedules"`
}

// DeleteScreenResponse reports what went away with a screen
type DeleteScreenResponse struct {
	ID             string `json:"id" doc:"Deleted screen"`
	SessionClosed  bool   `json:"sessionClosed" doc:"A live player session was closed"`
	DraftDiscarded bool   `json:"draftDiscarded" doc:"An open designer draft was discarded"`
}
