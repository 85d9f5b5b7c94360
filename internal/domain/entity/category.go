// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoryTitleLength is the maximum allowed length for category titles.
const MaxCategoryTitleLength = 50

// Category represents a named grouping of trackers. Titles are unique by
// convention only; duplicates are accepted at creation time.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, title string) *Category {
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
}
