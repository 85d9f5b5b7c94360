// Package error defines domain-specific errors for the Tracker application.
package error

import "errors"

// Completion domain errors.
var (
	// ErrFutureDateCompletion is returned when completion is toggled for a day
	// after the current moment. The rule is hard: no mutation happens and the
	// message reaches the user.
	ErrFutureDateCompletion = errors.New("cannot complete a tracker for a future date")
)

// CompletionErrorCode defines error codes for completion errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CompletionErrorCode string

const (
	ErrCodeFutureDateCompletion      CompletionErrorCode = "CMP-010001"
	ErrCodeCompletionTrackerNotFound CompletionErrorCode = "CMP-020001"
)

// CompletionError represents a completion error with code and message.
type CompletionError struct {
	Code    CompletionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompletionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError creates a new CompletionError with the given code and message.
func NewCompletionError(code CompletionErrorCode, message string, err error) *CompletionError {
	return &CompletionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
