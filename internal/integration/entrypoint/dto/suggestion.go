package dto

import (
	"github.com/tracker-app/backend/internal/domain/entity"
)

// SuggestTrackerRequest represents the tracker suggestion request body.
type SuggestTrackerRequest struct {
	Title string `json:"title" binding:"required,min=1,max=38"`
}

// SuggestionResponse represents an AI-generated tracker suggestion.
type SuggestionResponse struct {
	Emoji             string   `json:"emoji"`
	Color             string   `json:"color"`
	Category          string   `json:"category"`
	AlternativeEmojis []string `json:"alternative_emojis"`
}

// PaletteResponse lists the fixed emoji and color palettes trackers can
// be styled with.
type PaletteResponse struct {
	Emojis []string `json:"emojis"`
	Colors []string `json:"colors"`
}

// ToSuggestionResponse converts a suggestion entity to its API representation.
func ToSuggestionResponse(suggestion *entity.TrackerSuggestion) SuggestionResponse {
	alternatives := suggestion.AlternativeEmojis
	if alternatives == nil {
		alternatives = []string{}
	}
	return SuggestionResponse{
		Emoji:             suggestion.SuggestedEmoji,
		Color:             suggestion.SuggestedColor,
		Category:          suggestion.SuggestedCategory,
		AlternativeEmojis: alternatives,
	}
}
