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
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// UpdateTrackerInput represents the input for tracker update. Every field
// except the id is replaceable.
type UpdateTrackerInput struct {
	TrackerID  uuid.UUID
	UserID     uuid.UUID
	Title      string
	Emoji      string
	Color      string
	Schedule   valueobject.Schedule
	CategoryID uuid.UUID
}

// UpdateTrackerOutput represents the output of tracker update.
type UpdateTrackerOutput struct {
	Tracker *entity.Tracker
}

// UpdateTrackerUseCase handles tracker update logic.
type UpdateTrackerUseCase struct {
	trackerRepo  adapter.TrackerRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateTrackerUseCase creates a new UpdateTrackerUseCase instance.
func NewUpdateTrackerUseCase(trackerRepo adapter.TrackerRepository, categoryRepo adapter.CategoryRepository) *UpdateTrackerUseCase {
	return &UpdateTrackerUseCase{
		trackerRepo:  trackerRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the tracker update.
func (uc *UpdateTrackerUseCase) Execute(ctx context.Context, input UpdateTrackerInput) (*UpdateTrackerOutput, error) {
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

	if err := validateTrackerAttributes(input.Title, input.Emoji, input.Color, input.Schedule); err != nil {
		return nil, err
	}

	if input.CategoryID == uuid.Nil {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeMissingCategory,
			"tracker must be assigned to a category",
			domainerror.ErrMissingCategory,
		)
	}
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeMissingCategory,
			"category does not exist",
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.UserID != input.UserID {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeNotAuthorizedTracker,
			"category belongs to another user",
			domainerror.ErrNotAuthorizedToModifyTracker,
		)
	}

	categoryID := input.CategoryID
	tracker.Title = input.Title
	tracker.Emoji = input.Emoji
	tracker.Color = input.Color
	tracker.Schedule = input.Schedule
	tracker.CategoryID = &categoryID

	if err := uc.trackerRepo.Update(ctx, tracker); err != nil {
		return nil, fmt.Errorf("failed to update tracker: %w", err)
	}

	return &UpdateTrackerOutput{Tracker: tracker}, nil
}
