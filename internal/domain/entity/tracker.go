// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// Tracker represents a trackable habit or one-off event.
type Tracker struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	Emoji      string
	Color      string
	Schedule   valueobject.Schedule
	CategoryID *uuid.UUID // Optional until the tracker is placed in a category
	IsPinned   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTracker creates a new Tracker entity.
func NewTracker(
	userID uuid.UUID,
	title string,
	emoji string,
	color string,
	schedule valueobject.Schedule,
	categoryID *uuid.UUID,
) *Tracker {
	now := time.Now().UTC()

	return &Tracker{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Emoji:      emoji,
		Color:      color,
		Schedule:   schedule,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsPlaced reports whether the tracker has been assigned to a category.
// A tracker without a category is valid during creation but never shows
// up in a category section of the board.
func (t *Tracker) IsPlaced() bool {
	return t.CategoryID != nil
}

// TrackerDisplayItem bundles a tracker with its completion state for a
// reference date, ready for the presentation layer.
type TrackerDisplayItem struct {
	Tracker         *Tracker
	IsCompleted     bool
	CompletionCount int
}
