// Package tracker contains tracker-related use cases.
package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// MaxTrackerTitleLength is the maximum allowed length for tracker titles.
const MaxTrackerTitleLength = 38

// CreateTrackerInput represents the input for tracker creation.
type CreateTrackerInput struct {
	UserID     uuid.UUID
	Title      string
	Emoji      string
	Color      string
	Schedule   valueobject.Schedule
	CategoryID uuid.UUID
}

// CreateTrackerOutput represents the output of tracker creation.
type CreateTrackerOutput struct {
	Tracker *entity.Tracker
}

// CreateTrackerUseCase handles tracker creation logic.
type CreateTrackerUseCase struct {
	trackerRepo  adapter.TrackerRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateTrackerUseCase creates a new CreateTrackerUseCase instance.
func NewCreateTrackerUseCase(trackerRepo adapter.TrackerRepository, categoryRepo adapter.CategoryRepository) *CreateTrackerUseCase {
	return &CreateTrackerUseCase{
		trackerRepo:  trackerRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the tracker creation. Title, emoji, color, schedule and
// category are all required before a tracker can be saved.
func (uc *CreateTrackerUseCase) Execute(ctx context.Context, input CreateTrackerInput) (*CreateTrackerOutput, error) {
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

	// The category reference is weak by id; resolve it so a tracker is never
	// placed under a category that does not exist.
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
	tracker := entity.NewTracker(
		input.UserID,
		input.Title,
		input.Emoji,
		input.Color,
		input.Schedule,
		&categoryID,
	)

	if err := uc.trackerRepo.Create(ctx, tracker); err != nil {
		return nil, fmt.Errorf("failed to create tracker: %w", err)
	}

	return &CreateTrackerOutput{Tracker: tracker}, nil
}

// validateTrackerAttributes checks the user-editable tracker fields shared
// by the create and update flows.
func validateTrackerAttributes(title, emoji, color string, schedule valueobject.Schedule) error {
	if title == "" {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeEmptyTrackerTitle,
			"tracker title must not be empty",
			domainerror.ErrEmptyTrackerTitle,
		)
	}
	if len(title) > MaxTrackerTitleLength {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerTitleTooLong,
			fmt.Sprintf("tracker title must not exceed %d characters", MaxTrackerTitleLength),
			domainerror.ErrTrackerTitleTooLong,
		)
	}
	if !entity.IsValidTrackerEmoji(emoji) {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidTrackerEmoji,
			"emoji must be one of the palette values",
			domainerror.ErrInvalidTrackerEmoji,
		)
	}
	if !entity.IsValidTrackerColor(color) {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidTrackerColor,
			"color must be one of the palette values",
			domainerror.ErrInvalidTrackerColor,
		)
	}
	// Degenerate schedules loaded from the store are tolerated by the board,
	// but user input must pick weekdays or an event date.
	if schedule.IsEmpty() {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeEmptySchedule,
			"schedule must have weekdays or an event date",
			domainerror.ErrEmptySchedule,
		)
	}
	return nil
}
