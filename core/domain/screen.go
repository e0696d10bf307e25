// ABOUTME: Screen, Content and Schedule entities owned by the application state store
// ABOUTME: The layout engine only reads screen identity, the layout and content by id

package domain

import "time"

// Screen status values
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusWarning = "warning"
)

// Screen is a physical display registered with the platform
type Screen struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Location       string  `json:"location,omitempty"`
	Status         string  `json:"status"`
	Resolution     string  `json:"resolution"`
	Orientation    string  `json:"orientation"`
	LastSeen       string  `json:"lastSeen,omitempty"`
	CurrentContent string  `json:"currentContent,omitempty"`
	IPAddress      string  `json:"ipAddress,omitempty"`
	Version        string  `json:"version,omitempty"`
	Uptime         string  `json:"uptime,omitempty"`
	Temperature    string  `json:"temperature,omitempty"`
	StorageUsed    string  `json:"storageUsed,omitempty"`
	Layout         *Layout `json:"layout,omitempty"`
}

// Clone returns a deep copy of the screen including its layout
func (s Screen) Clone() Screen {
	out := s
	if s.Layout != nil {
		l := s.Layout.Clone()
		out.Layout = &l
	}
	return out
}

// Content types of library items
const (
	MediaImage   = "image"
	MediaVideo   = "video"
	MediaWebpage = "webpage"
)

// Content is an item of the content library
type Content struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Duration  int      `json:"duration,omitempty"`
	Size      string   `json:"size,omitempty"`
	Created   string   `json:"created,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	URL       string   `json:"url,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// IsImage reports whether the content renders as a picture
func (c Content) IsImage() bool {
	return c.Type == MediaImage
}

// TimeSlot is one recurring window of a schedule
type TimeSlot struct {
	ID        string   `json:"id"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	ContentID string   `json:"contentId"`
	Days      []string `json:"days"`
}

// Schedule assigns content to a screen over a date range
type Schedule struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ScreenID  string     `json:"screenId"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Settings are the console-wide preferences
type Settings struct {
	Theme                  string   `json:"theme"`
	AutoRefresh            bool     `json:"autoRefresh"`
	Notifications          bool     `json:"notifications"`
	DefaultContentDuration int      `json:"defaultContentDuration"`
	MaxFileSize            int      `json:"maxFileSize"`
	AllowedFormats         []string `json:"allowedFormats"`
}

// Analytics are counters derived from the current state
type Analytics struct {
	TotalScreens   int `json:"totalScreens"`
	OnlineScreens  int `json:"onlineScreens"`
	TotalContent   int `json:"totalContent"`
	TotalSchedules int `json:"totalSchedules"`
}

// AppState is the whole persisted tree
type AppState struct {
	Screens   []Screen   `json:"screens"`
	Content   []Content  `json:"content"`
	Schedules []Schedule `json:"schedules"`
	Settings  Settings   `json:"settings"`
}

// Clone returns a deep copy of the content item
func (c Content) Clone() Content {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}

// Clone returns a deep copy of the schedule and its slots
func (s Schedule) Clone() Schedule {
	out := s
	if s.TimeSlots != nil {
		out.TimeSlots = make([]TimeSlot, len(s.TimeSlots))
		for i, slot := range s.TimeSlots {
			out.TimeSlots[i] = slot
			if slot.Days != nil {
				out.TimeSlots[i].Days = append([]string(nil), slot.Days...)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the whole tree
func (a AppState) Clone() AppState {
	out := AppState{Settings: a.Settings}
	if a.Settings.AllowedFormats != nil {
		out.Settings.AllowedFormats = append([]string(nil), a.Settings.AllowedFormats...)
	}
	if a.Screens != nil {
		out.Screens = make([]Screen, len(a.Screens))
		for i, s := range a.Screens {
			out.Screens[i] = s.Clone()
		}
	}
	if a.Content != nil {
		out.Content = make([]Content, len(a.Content))
		for i, c := range a.Content {
			out.Content[i] = c.Clone()
		}
	}
	if a.Schedules != nil {
		out.Schedules = make([]Schedule, len(a.Schedules))
		for i, s := range a.Schedules {
			out.Schedules[i] = s.Clone()
		}
	}
	return out
}

// SeedState returns the initial state used when nothing has been persisted yet
func SeedState(now time.Time) AppState {
	ts := now.UTC().Format(time.RFC3339)
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

	return AppState{
		Screens: []Screen{
			{
				ID: "1", Name: "Main Lobby Display", Location: "Building A - Lobby",
				Status: StatusOnline, Resolution: "1920x1080", Orientation: "landscape",
				LastSeen: ts, CurrentContent: "Welcome Presentation", IPAddress: "192.168.1.100",
				Version: "1.2.3", Uptime: "24h 15m", Temperature: "42°C", StorageUsed: "65%",
			},
			{
				ID: "2", Name: "Conference Room A", Location: "Building A - Floor 2",
				Status: StatusOffline, Resolution: "1920x1080", Orientation: "landscape",
				LastSeen: now.Add(-5 * time.Minute).UTC().Format(time.RFC3339), CurrentContent: "None",
				IPAddress: "192.168.1.101", Version: "1.2.3", Uptime: "0h 0m", Temperature: "N/A", StorageUsed: "45%",
			},
			{
				ID: "3", Name: "Cafeteria Menu Board", Location: "Building B - Cafeteria",
				Status: StatusOnline, Resolution: "1080x1920", Orientation: "portrait",
				LastSeen: ts, CurrentContent: "Daily Menu", IPAddress: "192.168.1.102",
				Version: "1.2.3", Uptime: "72h 30m", Temperature: "38°C", StorageUsed: "82%",
			},
		},
		Content: []Content{
			{
				ID: "1", Name: "Welcome Presentation", Type: MediaVideo, Duration: 120, Size: "45.2 MB", Created: ts,
				Thumbnail: "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=300&h=200&fit=crop",
				URL:       "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
				Tags:      []string{"welcome", "intro"},
			},
			{
				ID: "2", Name: "Daily Menu", Type: MediaImage, Duration: 30, Size: "2.1 MB", Created: ts,
				Thumbnail: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=300&h=200&fit=crop",
				URL:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=1920&h=1080&fit=crop",
				Tags:      []string{"menu", "food"},
			},
			{
				ID: "3", Name: "Company News", Type: MediaWebpage, Duration: 60, Size: "0.5 MB", Created: ts,
				Thumbnail: "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=300&h=200&fit=crop",
				URL:       "https://example.com/news",
				Tags:      []string{"news", "company"},
			},
		},
		Schedules: []Schedule{
			{
				ID: "1", Name: "Main Lobby Schedule", ScreenID: "1",
				StartDate: ts, EndDate: now.Add(7 * 24 * time.Hour).UTC().Format(time.RFC3339),
				TimeSlots: []TimeSlot{
					{ID: "1", StartTime: "09:00", EndTime: "12:00", ContentID: "1", Days: weekdays},
					{ID: "2", StartTime: "12:00", EndTime: "13:00", ContentID: "2", Days: weekdays},
				},
			},
		},
		Settings: Settings{
			Theme:                  "dark",
			AutoRefresh:            true,
			Notifications:          true,
			DefaultContentDuration: 30,
			MaxFileSize:            100,
			AllowedFormats:         []string{"jpg", "png", "mp4", "gif", "html"},
		},
	}
}
