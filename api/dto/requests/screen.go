// ABOUTME: Request DTOs for screen, content library and schedule endpoints
// ABOUTME: Provides validation tags and default values for incoming requests

package requests

// Defaults for newly registered screens
const (
	DefaultResolution  = "1920x1080"
	DefaultOrientation = "landscape"
)

// CreateScreenRequest registers a new screen
type CreateScreenRequest struct {
	// ID is optional; a UUID is generated when empty
	ID string `json:"id,omitempty" doc:"Optional screen identifier"`

	Name        string `json:"name" minLength:"1" doc:"Display name of the screen"`
	Location    string `json:"location,omitempty" doc:"Where the screen is installed"`
	Status      string `json:"status,omitempty" doc:"online, offline or warning (default offline)"`
	Resolution  string `json:"resolution,omitempty" doc:"Panel resolution, e.g. 1920x1080"`
	Orientation string `json:"orientation,omitempty" doc:"landscape or portrait"`
	IPAddress   string `json:"ipAddress,omitempty" doc:"Network address of the player"`
	Version     string `json:"version,omitempty" doc:"Player software version"`
}

// ApplyDefaults sets default values for optional fields
func (r *CreateScreenRequest) ApplyDefaults() {
	if r.Resolution == "" {
		r.Resolution = DefaultResolution
	}
	if r.Orientation == "" {
		r.Orientation = DefaultOrientation
	}
}

// CreateContentRequest adds an item to the content library
type CreateContentRequest struct {
	ID        string   `json:"id,omitempty" doc:"Optional content identifier"`
	Name      string   `json:"name" minLength:"1" doc:"Display name, as screens report it in currentContent"`
	Type      string   `json:"type" enum:"image,video,webpage" doc:"Media type"`
	Duration  int      `json:"duration,omitempty" minimum:"0" doc:"Play time in seconds"`
	Size      string   `json:"size,omitempty" doc:"Human readable file size"`
	Thumbnail string   `json:"thumbnail,omitempty" doc:"Preview image URL"`
	URL       string   `json:"url,omitempty" doc:"Media or page URL"`
	Tags      []string `json:"tags,omitempty" doc:"Free-form tags"`
}

// TimeSlotRequest is one recurring window of a schedule
type TimeSlotRequest struct {
	ID        string   `json:"id,omitempty" doc:"Optional slot identifier"`
	StartTime string   `json:"startTime" doc:"Start time, HH:MM"`
	EndTime   string   `json:"endTime" doc:"End time, HH:MM"`
	ContentID string   `json:"contentId" doc:"Content shown during the slot"`
	Days      []string `json:"days" doc:"Weekdays the slot repeats on"`
}

// CreateScheduleRequest assigns content to a screen over a date range
type CreateScheduleRequest struct {
	ID        string            `json:"id,omitempty" doc:"Optional schedule identifier"`
	Name      string            `json:"name" minLength:"1" doc:"Schedule name"`
	ScreenID  string            `json:"screenId" doc:"Target screen"`
	StartDate string            `json:"startDate" doc:"First day, YYYY-MM-DD"`
	EndDate   string            `json:"endDate" doc:"Last day, YYYY-MM-DD"`
	TimeSlots []TimeSlotRequest `json:"timeSlots,omitempty" doc:"Recurring windows"`
}
