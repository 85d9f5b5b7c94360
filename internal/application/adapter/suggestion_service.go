// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// SuggestionRequest carries the context the AI needs to suggest tracker
// attributes: the title being created and the user's existing categories.
type SuggestionRequest struct {
	Title              string
	ExistingCategories []string
}

// SuggestionResult is the AI's proposal for a new tracker.
type SuggestionResult struct {
	Emoji             string
	Color             string
	Category          string
	AlternativeEmojis []string
}

// SuggestionService defines the interface for AI-backed tracker suggestions.
type SuggestionService interface {
	// IsAvailable checks if the service is configured.
	IsAvailable() bool

	// Suggest proposes emoji, color and category for a tracker title.
	Suggest(ctx context.Context, request *SuggestionRequest) (*SuggestionResult, error)
}

// SuggestionRepository persists generated suggestions for later inspection.
type SuggestionRepository interface {
	// Create stores a generated suggestion.
	Create(ctx context.Context, suggestion *entity.TrackerSuggestion) error
}
