// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// FilterPreferenceStore persists the last selected board filter per user.
// The value survives sessions but is ephemeral state, not part of the
// tracker model; a missing or unreachable store degrades to FilterNone.
type FilterPreferenceStore interface {
	// Get returns the user's last selected filter, or FilterNone when unset.
	Get(ctx context.Context, userID uuid.UUID) (entity.Filter, error)

	// Set stores the user's last selected filter.
	Set(ctx context.Context, userID uuid.UUID, filter entity.Filter) error
}
