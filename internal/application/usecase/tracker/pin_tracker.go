// Package tracker contains tracker-related use cases.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
)

// PinTrackerInput represents the input for toggling a tracker's pin state.
type PinTrackerInput struct {
	TrackerID uuid.UUID
	UserID    uuid.UUID
	IsPinned  bool
}

// PinTrackerOutput represents the output of the pin toggle.
type PinTrackerOutput struct {
	Tracker *entity.Tracker
}

// PinTrackerUseCase flips the pin flag independently of the other tracker
// fields. Pinned trackers surface in the leading board section.
type PinTrackerUseCase struct {
	trackerRepo adapter.TrackerRepository
}

// NewPinTrackerUseCase creates a new PinTrackerUseCase instance.
func NewPinTrackerUseCase(trackerRepo adapter.TrackerRepository) *PinTrackerUseCase {
	return &PinTrackerUseCase{
		trackerRepo: trackerRepo,
	}
}

// Execute sets the pin state and persists the tracker.
func (uc *PinTrackerUseCase) Execute(ctx context.Context, input PinTrackerInput) (*PinTrackerOutput, error) {
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
			"not authorized to modify this tracker",
			domainerror.ErrNotAuthorizedToModifyTracker,
		)
	}

	tracker.IsPinned = input.IsPinned
	if err := uc.trackerRepo.Update(ctx, tracker); err != nil {
		return nil, fmt.Errorf("failed to update tracker: %w", err)
	}

	return &PinTrackerOutput{Tracker: tracker}, nil
}
