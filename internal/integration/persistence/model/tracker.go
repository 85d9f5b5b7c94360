// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// TrackerModel represents the trackers table in the database.
// The schedule is stored as a JSON blob; a blob that fails to decode loads
// as an empty schedule rather than failing the whole query.
type TrackerModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title        string     `gorm:"type:varchar(38);not null"`
	Emoji        string     `gorm:"type:varchar(10);not null"`
	Color        string     `gorm:"type:varchar(7);not null"`
	ScheduleBlob string     `gorm:"type:jsonb;not null;default:'{}'"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	IsPinned     bool       `gorm:"default:false"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TrackerModel.
func (TrackerModel) TableName() string {
	return "trackers"
}

// ToEntity converts a TrackerModel to a domain Tracker entity.
func (m *TrackerModel) ToEntity() *entity.Tracker {
	var schedule valueobject.Schedule
	if m.ScheduleBlob != "" {
		if err := json.Unmarshal([]byte(m.ScheduleBlob), &schedule); err != nil {
			slog.Warn("Failed to unmarshal tracker schedule", "error", err, "id", m.ID)
		}
	}

	return &entity.Tracker{
		ID:         m.ID,
		UserID:     m.UserID,
		Title:      m.Title,
		Emoji:      m.Emoji,
		Color:      m.Color,
		Schedule:   schedule,
		CategoryID: m.CategoryID,
		IsPinned:   m.IsPinned,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TrackerFromEntity creates a TrackerModel from a domain Tracker entity.
func TrackerFromEntity(tracker *entity.Tracker) *TrackerModel {
	blob, err := json.Marshal(tracker.Schedule)
	if err != nil {
		slog.Error("Failed to marshal tracker schedule", "error", err, "id", tracker.ID)
		blob = []byte("{}")
	}

	return &TrackerModel{
		ID:           tracker.ID,
		UserID:       tracker.UserID,
		Title:        tracker.Title,
		Emoji:        tracker.Emoji,
		Color:        tracker.Color,
		ScheduleBlob: string(blob),
		CategoryID:   tracker.CategoryID,
		IsPinned:     tracker.IsPinned,
		CreatedAt:    tracker.CreatedAt,
		UpdatedAt:    tracker.UpdatedAt,
	}
}
