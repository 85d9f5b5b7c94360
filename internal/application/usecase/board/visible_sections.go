// Package board contains board-related use cases.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
)

// VisibleSectionsInput represents one board query. When Filter is empty the
// user's persisted preference applies.
type VisibleSectionsInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time
	Filter        entity.Filter
	SearchText    string
}

// VisibleSectionsOutput carries the derived board plus the values the query
// actually ran with, so the client can mirror a forced date reset.
type VisibleSectionsOutput struct {
	Sections      []Section
	ReferenceDate time.Time
	Filter        entity.Filter
}

// VisibleSectionsUseCase rebuilds the board from persisted state on every
// call. There is no in-memory cache to invalidate: the store is the single
// source of truth.
type VisibleSectionsUseCase struct {
	trackerRepo    adapter.TrackerRepository
	categoryRepo   adapter.CategoryRepository
	completionRepo adapter.CompletionRepository
	filterPrefs    adapter.FilterPreferenceStore
}

// NewVisibleSectionsUseCase creates a new VisibleSectionsUseCase instance.
func NewVisibleSectionsUseCase(
	trackerRepo adapter.TrackerRepository,
	categoryRepo adapter.CategoryRepository,
	completionRepo adapter.CompletionRepository,
	filterPrefs adapter.FilterPreferenceStore,
) *VisibleSectionsUseCase {
	return &VisibleSectionsUseCase{
		trackerRepo:    trackerRepo,
		categoryRepo:   categoryRepo,
		completionRepo: completionRepo,
		filterPrefs:    filterPrefs,
	}
}

// Execute loads trackers, categories and completion records and derives the
// visible sections for the query.
func (uc *VisibleSectionsUseCase) Execute(ctx context.Context, input VisibleSectionsInput) (*VisibleSectionsOutput, error) {
	filter := input.Filter
	if filter == "" {
		stored, err := uc.filterPrefs.Get(ctx, input.UserID)
		if err != nil {
			// Preference storage is best-effort; an unreachable store
			// degrades to no filter rather than failing the board.
			slog.Warn("failed to load filter preference", "user_id", input.UserID, "error", err)
			stored = entity.FilterNone
		}
		filter = stored
	}
	if !filter.IsValid() {
		filter = entity.FilterNone
	}

	referenceDate := input.ReferenceDate
	if referenceDate.IsZero() {
		referenceDate = time.Now().UTC()
	}

	trackers, err := uc.trackerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trackers: %w", err)
	}
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	records, err := uc.completionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion records: %w", err)
	}

	effectiveDate := EffectiveDate(referenceDate, filter, input.SearchText)

	sections := BuildSections(trackers, categories, records, effectiveDate, filter, input.SearchText)

	return &VisibleSectionsOutput{
		Sections:      sections,
		ReferenceDate: effectiveDate,
		Filter:        filter,
	}, nil
}
