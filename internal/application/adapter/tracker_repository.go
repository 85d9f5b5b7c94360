// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// TrackerRepository defines the interface for tracker persistence operations.
type TrackerRepository interface {
	// Create creates a new tracker in the database.
	Create(ctx context.Context, tracker *entity.Tracker) error

	// FindByID retrieves a tracker by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, error)

	// FindByUser retrieves all trackers belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tracker, error)

	// Update updates an existing tracker in the database.
	Update(ctx context.Context, tracker *entity.Tracker) error

	// Delete removes a tracker and all of its completion records in one
	// transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
