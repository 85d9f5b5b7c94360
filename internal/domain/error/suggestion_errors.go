// Package error defines domain-specific errors for the Tracker application.
package error

import "errors"

// Suggestion domain errors.
var (
	// ErrSuggestionUnavailable is returned when the AI service is not configured.
	ErrSuggestionUnavailable = errors.New("suggestion service is not available")

	// ErrEmptySuggestionTitle is returned when no title was provided to suggest for.
	ErrEmptySuggestionTitle = errors.New("suggestion title must not be empty")
)

// SuggestionErrorCode defines error codes for suggestion errors.
// Format: SUG-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	ErrCodeEmptySuggestionTitle  SuggestionErrorCode = "SUG-010001"
	ErrCodeSuggestionUnavailable SuggestionErrorCode = "SUG-020001"
	ErrCodeSuggestionFailed      SuggestionErrorCode = "SUG-020002"
)

// SuggestionError represents a suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
