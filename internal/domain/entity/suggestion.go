// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackerSuggestion holds an AI-generated starting point for a new tracker:
// a suggested emoji, palette color and category for a free-text title.
type TrackerSuggestion struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Title             string
	SuggestedEmoji    string
	SuggestedColor    string
	SuggestedCategory string
	AlternativeEmojis []string
	CreatedAt         time.Time
}

// NewTrackerSuggestion creates a new TrackerSuggestion entity.
func NewTrackerSuggestion(userID uuid.UUID, title, emoji, color, category string, alternatives []string) *TrackerSuggestion {
	return &TrackerSuggestion{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             title,
		SuggestedEmoji:    emoji,
		SuggestedColor:    color,
		SuggestedCategory: category,
		AlternativeEmojis: alternatives,
		CreatedAt:         time.Now().UTC(),
	}
}
