// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// CompletionRepository defines the interface for completion-record
// persistence. The table is logically a set keyed by (tracker, day).
type CompletionRepository interface {
	// Create inserts a completion record. Inserting an existing
	// (tracker, day) pair is a conflict.
	Create(ctx context.Context, record *entity.CompletionRecord) error

	// Delete removes the record for the given (tracker, day) pair.
	Delete(ctx context.Context, trackerID uuid.UUID, date time.Time) error

	// Exists checks membership for the given (tracker, day) pair.
	Exists(ctx context.Context, trackerID uuid.UUID, date time.Time) (bool, error)

	// FindByUser retrieves all completion records for trackers owned by the
	// user. The board reloads this before every query instead of caching.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CompletionRecord, error)

	// CountByTracker returns the total number of completions for a tracker.
	// This is a plain total, not a consecutive-day streak.
	CountByTracker(ctx context.Context, trackerID uuid.UUID) (int, error)
}
