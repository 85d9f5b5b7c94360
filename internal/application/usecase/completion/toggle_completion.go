// Package completion contains completion-ledger use cases.
package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// ToggleCompletionInput represents a toggle of the (tracker, day) ledger entry.
type ToggleCompletionInput struct {
	TrackerID uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
}

// ToggleCompletionOutput reports the ledger state after the toggle.
type ToggleCompletionOutput struct {
	IsCompleted     bool
	CompletionCount int
}

// ToggleCompletionUseCase flips membership of a (tracker, day) pair in the
// completion ledger and persists the change. Toggling a future day is a
// hard error surfaced to the user; nothing mutates in that case.
type ToggleCompletionUseCase struct {
	trackerRepo    adapter.TrackerRepository
	completionRepo adapter.CompletionRepository
	now            func() time.Time
}

// NewToggleCompletionUseCase creates a new ToggleCompletionUseCase instance.
func NewToggleCompletionUseCase(trackerRepo adapter.TrackerRepository, completionRepo adapter.CompletionRepository) *ToggleCompletionUseCase {
	return &ToggleCompletionUseCase{
		trackerRepo:    trackerRepo,
		completionRepo: completionRepo,
		now:            time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *ToggleCompletionUseCase) WithClock(now func() time.Time) *ToggleCompletionUseCase {
	uc.now = now
	return uc
}

// Execute toggles the completion state for the given day.
func (uc *ToggleCompletionUseCase) Execute(ctx context.Context, input ToggleCompletionInput) (*ToggleCompletionOutput, error) {
	day := valueobject.NormalizeDate(input.Date)

	// The guard compares the calendar day, not the instant: completing
	// earlier today is fine, tomorrow is not.
	today := valueobject.NormalizeDate(uc.now().UTC())
	if day.After(today) {
		return nil, domainerror.NewCompletionError(
			domainerror.ErrCodeFutureDateCompletion,
			"cannot complete a tracker for a future date",
			domainerror.ErrFutureDateCompletion,
		)
	}

	tracker, err := uc.trackerRepo.FindByID(ctx, input.TrackerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTrackerNotFound) {
			return nil, domainerror.NewCompletionError(
				domainerror.ErrCodeCompletionTrackerNotFound,
				"tracker not found",
				domainerror.ErrTrackerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load tracker: %w", err)
	}
	if tracker.UserID != input.UserID {
		return nil, domainerror.NewCompletionError(
			domainerror.ErrCodeCompletionTrackerNotFound,
			"tracker not found",
			domainerror.ErrTrackerNotFound,
		)
	}

	exists, err := uc.completionRepo.Exists(ctx, input.TrackerID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check completion state: %w", err)
	}

	if exists {
		if err := uc.completionRepo.Delete(ctx, input.TrackerID, day); err != nil {
			return nil, fmt.Errorf("failed to delete completion record: %w", err)
		}
	} else {
		record := entity.NewCompletionRecord(input.TrackerID, day)
		if err := uc.completionRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create completion record: %w", err)
		}
	}

	count, err := uc.completionRepo.CountByTracker(ctx, input.TrackerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}

	return &ToggleCompletionOutput{
		IsCompleted:     !exists,
		CompletionCount: count,
	}, nil
}
