// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// CompletionRecordModel represents the completion_records table. The
// composite unique index enforces at most one record per tracker and day.
type CompletionRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completion_tracker_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_completion_tracker_date"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CompletionRecordModel.
func (CompletionRecordModel) TableName() string {
	return "completion_records"
}

// ToEntity converts a CompletionRecordModel to a domain CompletionRecord entity.
func (m *CompletionRecordModel) ToEntity() *entity.CompletionRecord {
	return &entity.CompletionRecord{
		TrackerID: m.TrackerID,
		Date:      m.Date,
	}
}

// CompletionRecordFromEntity creates a CompletionRecordModel from a domain entity.
func CompletionRecordFromEntity(record *entity.CompletionRecord) *CompletionRecordModel {
	return &CompletionRecordModel{
		ID:        uuid.New(),
		TrackerID: record.TrackerID,
		Date:      record.Date,
		CreatedAt: time.Now().UTC(),
	}
}
