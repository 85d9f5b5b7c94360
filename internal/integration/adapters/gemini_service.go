// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
)

// GeminiService implements the adapter.SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest proposes emoji, color and category for a tracker title.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.SuggestionRequest) (*adapter.SuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.SuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are helping a user set up a habit tracker. Given the habit title, pick the most fitting emoji and color from the fixed palettes below, and suggest a category name for grouping the habit.

RULES:
- The emoji MUST be one of the palette emojis, exactly as written.
- The color MUST be one of the palette hex codes, exactly as written.
- Prefer one of the user's existing categories when it fits; otherwise propose a short new category name (one or two words).
- Also list up to three alternative palette emojis that would fit.

EMOJI PALETTE:
`)
	sb.WriteString(strings.Join(entity.TrackerEmojis, " "))
	sb.WriteString("\n\nCOLOR PALETTE:\n")
	sb.WriteString(strings.Join(entity.TrackerColors, " "))

	sb.WriteString("\n\nEXISTING CATEGORIES:\n")
	if len(request.ExistingCategories) > 0 {
		for _, title := range request.ExistingCategories {
			sb.WriteString(fmt.Sprintf("- %s\n", title))
		}
	} else {
		sb.WriteString("(none yet)\n")
	}

	sb.WriteString(fmt.Sprintf("\nHABIT TITLE: %q\n", request.Title))

	sb.WriteString(`
Respond with a single JSON object:
{
  "emoji": "palette emoji",
  "color": "#XXXXXX from the palette",
  "category": "category name",
  "alternative_emojis": ["up to three palette emojis"]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	Emoji             string   `json:"emoji"`
	Color             string   `json:"color"`
	Category          string   `json:"category"`
	AlternativeEmojis []string `json:"alternative_emojis"`
}

// parseResponse parses the Gemini response into a SuggestionResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (*adapter.SuggestionResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	// Alternatives outside the palette are dropped rather than clamped
	alternatives := make([]string, 0, len(suggestion.AlternativeEmojis))
	for _, e := range suggestion.AlternativeEmojis {
		if entity.IsValidTrackerEmoji(e) {
			alternatives = append(alternatives, e)
		}
	}

	return &adapter.SuggestionResult{
		Emoji:             suggestion.Emoji,
		Color:             suggestion.Color,
		Category:          suggestion.Category,
		AlternativeEmojis: alternatives,
	}, nil
}
