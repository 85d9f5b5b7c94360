package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// ScheduleRequest is the wire form of a schedule in requests. Weekdays are
// numbered Sunday=1 through Saturday=7; a date makes the tracker a one-off
// event instead.
type ScheduleRequest struct {
	Weekdays []int  `json:"weekdays"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD
}

// ToSchedule converts the request shape into the domain value. Unknown
// weekday numbers are rejected rather than silently dropped.
func (r ScheduleRequest) ToSchedule() (valueobject.Schedule, error) {
	if r.Date != "" {
		date, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return valueobject.Schedule{}, fmt.Errorf("invalid schedule date %q: %w", r.Date, err)
		}
		return valueobject.NewEventSchedule(date), nil
	}
	weekdays := make([]valueobject.Weekday, 0, len(r.Weekdays))
	for _, raw := range r.Weekdays {
		w := valueobject.Weekday(raw)
		if !w.IsValid() {
			return valueobject.Schedule{}, fmt.Errorf("invalid weekday %d", raw)
		}
		weekdays = append(weekdays, w)
	}
	return valueobject.NewSchedule(weekdays...), nil
}

// ScheduleResponse is the wire form of a schedule in responses.
type ScheduleResponse struct {
	Weekdays []int  `json:"weekdays"`
	Date     string `json:"date,omitempty"`
	Summary  string `json:"summary"`
}

// CreateTrackerRequest represents the tracker creation request body.
type CreateTrackerRequest struct {
	Title      string          `json:"title" binding:"required,min=1,max=38"`
	Emoji      string          `json:"emoji" binding:"required"`
	Color      string          `json:"color" binding:"required"`
	Schedule   ScheduleRequest `json:"schedule" binding:"required"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
}

// UpdateTrackerRequest represents the tracker update request body. All
// fields are replaced; there is no partial update.
type UpdateTrackerRequest struct {
	Title      string          `json:"title" binding:"required,min=1,max=38"`
	Emoji      string          `json:"emoji" binding:"required"`
	Color      string          `json:"color" binding:"required"`
	Schedule   ScheduleRequest `json:"schedule" binding:"required"`
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
}

// PinTrackerRequest represents the pin toggle request body.
type PinTrackerRequest struct {
	IsPinned *bool `json:"is_pinned" binding:"required"`
}

// TrackerResponse represents a tracker in API responses.
type TrackerResponse struct {
	ID         uuid.UUID        `json:"id"`
	Title      string           `json:"title"`
	Emoji      string           `json:"emoji"`
	Color      string           `json:"color"`
	Schedule   ScheduleResponse `json:"schedule"`
	CategoryID *uuid.UUID       `json:"category_id,omitempty"`
	IsPinned   bool             `json:"is_pinned"`
	CreatedAt  time.Time        `json:"created_at"`
}

// TrackerListResponse represents a list of trackers.
type TrackerListResponse struct {
	Trackers []TrackerResponse `json:"trackers"`
}

// ToScheduleResponse converts a schedule value to its API representation.
func ToScheduleResponse(s valueobject.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		Weekdays: make([]int, 0, len(s.Weekdays())),
		Summary:  s.Summary(),
	}
	for _, w := range s.Weekdays() {
		resp.Weekdays = append(resp.Weekdays, int(w))
	}
	if date := s.Date(); date != nil {
		resp.Date = date.Format("2006-01-02")
	}
	return resp
}

// ToTrackerResponse converts a tracker entity to its API representation.
func ToTrackerResponse(tracker *entity.Tracker) TrackerResponse {
	return TrackerResponse{
		ID:         tracker.ID,
		Title:      tracker.Title,
		Emoji:      tracker.Emoji,
		Color:      tracker.Color,
		Schedule:   ToScheduleResponse(tracker.Schedule),
		CategoryID: tracker.CategoryID,
		IsPinned:   tracker.IsPinned,
		CreatedAt:  tracker.CreatedAt,
	}
}

// ToTrackerListResponse converts tracker entities to a list response.
func ToTrackerListResponse(trackers []*entity.Tracker) TrackerListResponse {
	resp := TrackerListResponse{Trackers: make([]TrackerResponse, 0, len(trackers))}
	for _, t := range trackers {
		resp.Trackers = append(resp.Trackers, ToTrackerResponse(t))
	}
	return resp
}
