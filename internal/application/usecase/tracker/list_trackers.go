// Package tracker contains tracker-related use cases.
package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
)

// ListTrackersInput represents the input for listing trackers.
type ListTrackersInput struct {
	UserID uuid.UUID
}

// ListTrackersOutput represents the flat tracker list for a user.
type ListTrackersOutput struct {
	Trackers []*entity.Tracker
}

// ListTrackersUseCase returns the user's trackers without grouping or
// filtering; the board use case owns the sectioned view.
type ListTrackersUseCase struct {
	trackerRepo adapter.TrackerRepository
}

// NewListTrackersUseCase creates a new ListTrackersUseCase instance.
func NewListTrackersUseCase(trackerRepo adapter.TrackerRepository) *ListTrackersUseCase {
	return &ListTrackersUseCase{
		trackerRepo: trackerRepo,
	}
}

// Execute lists all trackers owned by the user.
func (uc *ListTrackersUseCase) Execute(ctx context.Context, input ListTrackersInput) (*ListTrackersOutput, error) {
	trackers, err := uc.trackerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	return &ListTrackersOutput{Trackers: trackers}, nil
}
