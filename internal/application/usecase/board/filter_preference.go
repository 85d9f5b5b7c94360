// Package board contains board-related use cases.
package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
)

// GetFilterInput represents the input for reading the filter preference.
type GetFilterInput struct {
	UserID uuid.UUID
}

// GetFilterOutput represents the stored filter preference.
type GetFilterOutput struct {
	Filter entity.Filter
}

// GetFilterUseCase reads the user's last selected board filter.
type GetFilterUseCase struct {
	filterPrefs adapter.FilterPreferenceStore
}

// NewGetFilterUseCase creates a new GetFilterUseCase instance.
func NewGetFilterUseCase(filterPrefs adapter.FilterPreferenceStore) *GetFilterUseCase {
	return &GetFilterUseCase{filterPrefs: filterPrefs}
}

// Execute returns the stored filter, defaulting to FilterNone.
func (uc *GetFilterUseCase) Execute(ctx context.Context, input GetFilterInput) (*GetFilterOutput, error) {
	filter, err := uc.filterPrefs.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter preference: %w", err)
	}
	if !filter.IsValid() {
		filter = entity.FilterNone
	}
	return &GetFilterOutput{Filter: filter}, nil
}

// SetFilterInput represents the input for storing the filter preference.
type SetFilterInput struct {
	UserID uuid.UUID
	Filter entity.Filter
}

// SetFilterOutput represents the result of storing a filter preference.
type SetFilterOutput struct {
	Filter entity.Filter
}

// SetFilterUseCase persists the user's selected board filter across sessions.
type SetFilterUseCase struct {
	filterPrefs adapter.FilterPreferenceStore
}

// NewSetFilterUseCase creates a new SetFilterUseCase instance.
func NewSetFilterUseCase(filterPrefs adapter.FilterPreferenceStore) *SetFilterUseCase {
	return &SetFilterUseCase{filterPrefs: filterPrefs}
}

// Execute validates and stores the filter.
func (uc *SetFilterUseCase) Execute(ctx context.Context, input SetFilterInput) (*SetFilterOutput, error) {
	if !input.Filter.IsValid() {
		return nil, fmt.Errorf("unknown filter %q", input.Filter)
	}
	if err := uc.filterPrefs.Set(ctx, input.UserID, input.Filter); err != nil {
		return nil, fmt.Errorf("failed to store filter preference: %w", err)
	}
	return &SetFilterOutput{Filter: input.Filter}, nil
}
