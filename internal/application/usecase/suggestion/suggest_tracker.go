// Package suggestion contains AI suggestion use cases.
package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
)

// SuggestTrackerInput represents the input for a tracker suggestion.
type SuggestTrackerInput struct {
	UserID uuid.UUID
	Title  string
}

// SuggestTrackerOutput represents the output of a tracker suggestion.
type SuggestTrackerOutput struct {
	Suggestion *entity.TrackerSuggestion
}

// SuggestTrackerUseCase asks the AI service for emoji, color and category
// proposals for a tracker title and records what it answered.
type SuggestTrackerUseCase struct {
	suggestionService adapter.SuggestionService
	suggestionRepo    adapter.SuggestionRepository
	categoryRepo      adapter.CategoryRepository
}

// NewSuggestTrackerUseCase creates a new SuggestTrackerUseCase instance.
func NewSuggestTrackerUseCase(
	suggestionService adapter.SuggestionService,
	suggestionRepo adapter.SuggestionRepository,
	categoryRepo adapter.CategoryRepository,
) *SuggestTrackerUseCase {
	return &SuggestTrackerUseCase{
		suggestionService: suggestionService,
		suggestionRepo:    suggestionRepo,
		categoryRepo:      categoryRepo,
	}
}

// Execute generates a suggestion for the given title.
func (uc *SuggestTrackerUseCase) Execute(ctx context.Context, input SuggestTrackerInput) (*SuggestTrackerOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeEmptySuggestionTitle,
			"title is required for a suggestion",
			domainerror.ErrEmptySuggestionTitle,
		)
	}

	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"suggestion service is not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	// Existing category titles steer the model towards reusing the user's
	// own groupings instead of inventing new ones.
	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.Title)
	}

	result, err := uc.suggestionService.Suggest(ctx, &adapter.SuggestionRequest{
		Title:              input.Title,
		ExistingCategories: titles,
	})
	if err != nil {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionFailed,
			"suggestion generation failed",
			err,
		)
	}

	// The model can drift outside the palette; clamp to valid values.
	if !entity.IsValidTrackerEmoji(result.Emoji) {
		result.Emoji = entity.TrackerEmojis[0]
	}
	if !entity.IsValidTrackerColor(result.Color) {
		result.Color = entity.TrackerColors[0]
	}

	suggestion := entity.NewTrackerSuggestion(
		input.UserID,
		input.Title,
		result.Emoji,
		result.Color,
		result.Category,
		result.AlternativeEmojis,
	)

	if err := uc.suggestionRepo.Create(ctx, suggestion); err != nil {
		// The answer is still useful when the audit write fails.
		slog.Error("failed to persist tracker suggestion", "error", err)
	}

	return &SuggestTrackerOutput{Suggestion: suggestion}, nil
}
