// ABOUTME: Mappers for converting create requests into state entities
// ABOUTME: Identifier generation is left to the store when a request carries no id

package mappers

import (
	"signage-app-api/api/dto/requests"
	"signage-app-api/core/domain"
)

// ToScreen converts a CreateScreenRequest into a screen record
func ToScreen(req requests.CreateScreenRequest) domain.Screen {
	req.ApplyDefaults()
	return domain.Screen{
		ID:          req.ID,
		Name:        req.Name,
		Location:    req.Location,
		Status:      req.Status,
		Resolution:  req.Resolution,
		Orientation: req.Orientation,
		IPAddress:   req.IPAddress,
		Version:     req.Version,
	}
}

// ToContent converts a CreateContentRequest into a library item created on the given date
func ToContent(req requests.CreateContentRequest, created string) domain.Content {
	c := domain.Content{
		ID:        req.ID,
		Name:      req.Name,
		Type:      req.Type,
		Duration:  req.Duration,
		Size:      req.Size,
		Created:   created,
		Thumbnail: req.Thumbnail,
		URL:       req.URL,
	}
	if len(req.Tags) > 0 {
		c.Tags = append([]string(nil), req.Tags...)
	}
	return c
}

// ToSchedule converts a CreateScheduleRequest into a schedule
func ToSchedule(req requests.CreateScheduleRequest) domain.Schedule {
	return domain.Schedule{
		ID:        req.ID,
		Name:      req.Name,
		ScreenID:  req.ScreenID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TimeSlots: ToTimeSlots(req.TimeSlots),
	}
}

// ToTimeSlots converts slot requests; the result is never nil
func ToTimeSlots(reqs []requests.TimeSlotRequest) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(reqs))
	for _, r := range reqs {
		slots = append(slots, domain.TimeSlot{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			ContentID: r.ContentID,
			Days:      append([]string(nil), r.Days...),
		})
	}
	return slots
}
