// ABOUTME: Reducer actions are the only way the application state changes
// ABOUTME: Each action edits a private copy of the state; the store commits it on success

package store

import (
	"strings"

	"signage-app-api/core/domain"
	coreerrors "signage-app-api/core/errors"
	"signage-app-api/core/layout"

	"github.com/google/uuid"
)

// Action is one state transition
type Action interface {
	apply(s *domain.AppState) error
}

// ScreenPatch holds the screen fields an update may change. Nil fields are left alone.
type ScreenPatch struct {
	Name           *string `json:"name,omitempty"`
	Location       *string `json:"location,omitempty"`
	Status         *string `json:"status,omitempty"`
	Resolution     *string `json:"resolution,omitempty"`
	Orientation    *string `json:"orientation,omitempty"`
	LastSeen       *string `json:"lastSeen,omitempty"`
	CurrentContent *string `json:"currentContent,omitempty"`
	IPAddress      *string `json:"ipAddress,omitempty"`
	Version        *string `json:"version,omitempty"`
	Uptime         *string `json:"uptime,omitempty"`
	Temperature    *string `json:"temperature,omitempty"`
	StorageUsed    *string `json:"storageUsed,omitempty"`
}

// UpdateScreen merges a patch into an existing screen
type UpdateScreen struct {
	ID    string
	Patch ScreenPatch
}

func (a UpdateScreen) apply(s *domain.AppState) error {
	i := screenIndex(s, a.ID)
	if i < 0 {
		return coreerrors.ScreenNotFound(a.ID)
	}
	if a.Patch.Status != nil && !validStatus(*a.Patch.Status) {
		return coreerrors.Invalid("status", "unknown status %q", *a.Patch.Status)
	}
	scr := &s.Screens[i]
	p := a.Patch
	set(&scr.Name, p.Name)
	set(&scr.Location, p.Location)
	set(&scr.Status, p.Status)
	set(&scr.Resolution, p.Resolution)
	set(&scr.Orientation, p.Orientation)
	set(&scr.LastSeen, p.LastSeen)
	set(&scr.CurrentContent, p.CurrentContent)
	set(&scr.IPAddress, p.IPAddress)
	set(&scr.Version, p.Version)
	set(&scr.Uptime, p.Uptime)
	set(&scr.Temperature, p.Temperature)
	set(&scr.StorageUsed, p.StorageUsed)
	return nil
}

// AddScreen registers a screen. An empty ID gets a generated one.
type AddScreen struct {
	Screen domain.Screen
}

func (a AddScreen) apply(s *domain.AppState) error {
	scr := a.Screen.Clone()
	if strings.TrimSpace(scr.Name) == "" {
		return coreerrors.Invalid("name", "screen name is required")
	}
	if scr.ID == "" {
		scr.ID = uuid.NewString()
	}
	if screenIndex(s, scr.ID) >= 0 {
		return coreerrors.Invalid("id", "screen %s already exists", scr.ID)
	}
	if scr.Status == "" {
		scr.Status = domain.StatusOffline
	}
	if !validStatus(scr.Status) {
		return coreerrors.Invalid("status", "unknown status %q", scr.Status)
	}
	if scr.Layout != nil {
		l := layout.Normalize(*scr.Layout)
		if err := layout.Validate(l); err != nil {
			return err
		}
		scr.Layout = &l
	}
	s.Screens = append(s.Screens, scr)
	return nil
}

// DeleteScreen removes a screen and with it the screen's layout
type DeleteScreen struct {
	ID string
}

func (a DeleteScreen) apply(s *domain.AppState) error {
	i := screenIndex(s, a.ID)
	if i < 0 {
		return coreerrors.ScreenNotFound(a.ID)
	}
	s.Screens = append(s.Screens[:i], s.Screens[i+1:]...)
	return nil
}

// SetScreenLayout replaces the layout stored on a screen
type SetScreenLayout struct {
	ScreenID string
	Layout   domain.Layout
}

func (a SetScreenLayout) apply(s *domain.AppState) error {
	i := screenIndex(s, a.ScreenID)
	if i < 0 {
		return coreerrors.ScreenNotFound(a.ScreenID)
	}
	l := layout.Normalize(a.Layout)
	if err := layout.Validate(l); err != nil {
		return err
	}
	s.Screens[i].Layout = &l
	return nil
}

// AddContent adds a library item. An empty ID gets a generated one.
type AddContent struct {
	Content domain.Content
}

func (a AddContent) apply(s *domain.AppState) error {
	c := a.Content.Clone()
	if strings.TrimSpace(c.Name) == "" {
		return coreerrors.Invalid("name", "content name is required")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if contentIndex(s, c.ID) >= 0 {
		return coreerrors.Invalid("id", "content %s already exists", c.ID)
	}
	s.Content = append(s.Content, c)
	return nil
}

// DeleteContent removes a library item. Regions that still reference it render a placeholder.
type DeleteContent struct {
	ID string
}

func (a DeleteContent) apply(s *domain.AppState) error {
	i := contentIndex(s, a.ID)
	if i < 0 {
		return coreerrors.ContentNotFound(a.ID)
	}
	s.Content = append(s.Content[:i], s.Content[i+1:]...)
	return nil
}

// AddSchedule adds a schedule. An empty ID gets a generated one.
type AddSchedule struct {
	Schedule domain.Schedule
}

func (a AddSchedule) apply(s *domain.AppState) error {
	sch := a.Schedule.Clone()
	if strings.TrimSpace(sch.Name) == "" {
		return coreerrors.Invalid("name", "schedule name is required")
	}
	if sch.ID == "" {
		sch.ID = uuid.NewString()
	}
	if scheduleIndex(s, sch.ID) >= 0 {
		return coreerrors.Invalid("id", "schedule %s already exists", sch.ID)
	}
	for i := range sch.TimeSlots {
		if sch.TimeSlots[i].ID == "" {
			sch.TimeSlots[i].ID = uuid.NewString()
		}
	}
	s.Schedules = append(s.Schedules, sch)
	return nil
}

// SchedulePatch holds the schedule fields an update may change
type SchedulePatch struct {
	Name      *string            `json:"name,omitempty"`
	ScreenID  *string            `json:"screenId,omitempty"`
	StartDate *string            `json:"startDate,omitempty"`
	EndDate   *string            `json:"endDate,omitempty"`
	TimeSlots *[]domain.TimeSlot `json:"timeSlots,omitempty"`
}

// UpdateSchedule merges a patch into an existing schedule
type UpdateSchedule struct {
	ID    string
	Patch SchedulePatch
}

func (a UpdateSchedule) apply(s *domain.AppState) error {
	i := scheduleIndex(s, a.ID)
	if i < 0 {
		return coreerrors.ScheduleNotFound(a.ID)
	}
	sch := &s.Schedules[i]
	set(&sch.Name, a.Patch.Name)
	set(&sch.ScreenID, a.Patch.ScreenID)
	set(&sch.StartDate, a.Patch.StartDate)
	set(&sch.EndDate, a.Patch.EndDate)
	if a.Patch.TimeSlots != nil {
		sch.TimeSlots = domain.Schedule{TimeSlots: *a.Patch.TimeSlots}.Clone().TimeSlots
	}
	return nil
}

// DeleteSchedule removes a schedule
type DeleteSchedule struct {
	ID string
}

func (a DeleteSchedule) apply(s *domain.AppState) error {
	i := scheduleIndex(s, a.ID)
	if i < 0 {
		return coreerrors.ScheduleNotFound(a.ID)
	}
	s.Schedules = append(s.Schedules[:i], s.Schedules[i+1:]...)
	return nil
}

// SettingsPatch holds the settings an update may change
type SettingsPatch struct {
	Theme                  *string   `json:"theme,omitempty"`
	AutoRefresh            *bool     `json:"autoRefresh,omitempty"`
	Notifications          *bool     `json:"notifications,omitempty"`
	DefaultContentDuration *int      `json:"defaultContentDuration,omitempty"`
	MaxFileSize            *int      `json:"maxFileSize,omitempty"`
	AllowedFormats         *[]string `json:"allowedFormats,omitempty"`
}

// UpdateSettings merges a patch into the settings
type UpdateSettings struct {
	Patch SettingsPatch
}

func (a UpdateSettings) apply(s *domain.AppState) error {
	p := a.Patch
	if p.DefaultContentDuration != nil && *p.DefaultContentDuration <= 0 {
		return coreerrors.Invalid("defaultContentDuration", "must be positive")
	}
	if p.MaxFileSize != nil && *p.MaxFileSize <= 0 {
		return coreerrors.Invalid("maxFileSize", "must be positive")
	}
	set(&s.Settings.Theme, p.Theme)
	set(&s.Settings.AutoRefresh, p.AutoRefresh)
	set(&s.Settings.Notifications, p.Notifications)
	set(&s.Settings.DefaultContentDuration, p.DefaultContentDuration)
	set(&s.Settings.MaxFileSize, p.MaxFileSize)
	if p.AllowedFormats != nil {
		s.Settings.AllowedFormats = append([]string(nil), (*p.AllowedFormats)...)
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func validStatus(status string) bool {
	switch status {
	case domain.StatusOnline, domain.StatusOffline, domain.StatusWarning:
		return true
	}
	return false
}

func screenIndex(s *domain.AppState, id string) int {
	for i := range s.Screens {
		if s.Screens[i].ID == id {
			return i
		}
	}
	return -1
}

func contentIndex(s *domain.AppState, id string) int {
	for i := range s.Content {
		if s.Content[i].ID == id {
			return i
		}
	}
	return -1
}

func scheduleIndex(s *domain.AppState, id string) int {
	for i := range s.Schedules {
		if s.Schedules[i].ID == id {
			return i
		}
	}
	return -1
}
