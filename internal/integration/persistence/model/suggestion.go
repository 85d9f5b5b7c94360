// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// TrackerSuggestionModel represents the tracker_suggestions table in the database.
type TrackerSuggestionModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title             string         `gorm:"type:varchar(255);not null"`
	SuggestedEmoji    string         `gorm:"type:varchar(10);not null"`
	SuggestedColor    string         `gorm:"type:varchar(7);not null"`
	SuggestedCategory string         `gorm:"type:varchar(50);not null"`
	AlternativeEmojis pq.StringArray `gorm:"type:text[]"`
	CreatedAt         time.Time      `gorm:"not null"`
}

// TableName returns the table name for the TrackerSuggestionModel.
func (TrackerSuggestionModel) TableName() string {
	return "tracker_suggestions"
}

// ToEntity converts a TrackerSuggestionModel to a domain TrackerSuggestion entity.
func (m *TrackerSuggestionModel) ToEntity() *entity.TrackerSuggestion {
	return &entity.TrackerSuggestion{
		ID:                m.ID,
		UserID:            m.UserID,
		Title:             m.Title,
		SuggestedEmoji:    m.SuggestedEmoji,
		SuggestedColor:    m.SuggestedColor,
		SuggestedCategory: m.SuggestedCategory,
		AlternativeEmojis: []string(m.AlternativeEmojis),
		CreatedAt:         m.CreatedAt,
	}
}

// SuggestionFromEntity creates a TrackerSuggestionModel from a domain entity.
func SuggestionFromEntity(suggestion *entity.TrackerSuggestion) *TrackerSuggestionModel {
	return &TrackerSuggestionModel{
		ID:                suggestion.ID,
		UserID:            suggestion.UserID,
		Title:             suggestion.Title,
		SuggestedEmoji:    suggestion.SuggestedEmoji,
		SuggestedColor:    suggestion.SuggestedColor,
		SuggestedCategory: suggestion.SuggestedCategory,
		AlternativeEmojis: pq.StringArray(suggestion.AlternativeEmojis),
		CreatedAt:         suggestion.CreatedAt,
	}
}
