// Package tracker contains tracker-related use cases.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
)

// DeleteTrackerInput represents the input for tracker deletion.
type DeleteTrackerInput struct {
	TrackerID uuid.UUID
	UserID    uuid.UUID
}

// DeleteTrackerOutput represents the output of tracker deletion.
type DeleteTrackerOutput struct{}

// DeleteTrackerUseCase handles tracker deletion logic.
type DeleteTrackerUseCase struct {
	trackerRepo adapter.TrackerRepository
}

// NewDeleteTrackerUseCase creates a new DeleteTrackerUseCase instance.
func NewDeleteTrackerUseCase(trackerRepo adapter.TrackerRepository) *DeleteTrackerUseCase {
	return &DeleteTrackerUseCase{
		trackerRepo: trackerRepo,
	}
}

// Execute deletes the tracker and, through the repository transaction, all
// of its completion records.
func (uc *DeleteTrackerUseCase) Execute(ctx context.Context, input DeleteTrackerInput) (*DeleteTrackerOutput, error) {
	tracker, err := uc.trackerRepo.FindByID(ctx, input.TrackerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTrackerNotFound) {
			return nil, domainerror.NewTrackerError(
				domainerror.ErrCodeTrackerNotFound,
				"tracker not found",
				domainerror.ErrTrackerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load tracker: %w", err)
	}

	if tracker.UserID != input.UserID {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeNotAuthorizedTracker,
			"not authorized to delete this tracker",
			domainerror.ErrNotAuthorizedToModifyTracker,
		)
	}

	if err := uc.trackerRepo.Delete(ctx, input.TrackerID); err != nil {
		return nil, fmt.Errorf("failed to delete tracker: %w", err)
	}

	return &DeleteTrackerOutput{}, nil
}
