package dto

// ToggleCompletionRequest represents the completion toggle request body.
// Date selects the calendar day being toggled, defaulting to today.
type ToggleCompletionRequest struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD
}

// ToggleCompletionResponse reports the ledger state after a toggle.
type ToggleCompletionResponse struct {
	IsCompleted     bool `json:"is_completed"`
	CompletionCount int  `json:"completion_count"`
}
