// Package error defines domain-specific errors for the Tracker application.
package error

import "errors"

// Tracker domain errors.
var (
	// ErrTrackerNotFound is returned when a tracker is not found in the store.
	ErrTrackerNotFound = errors.New("tracker not found")

	// ErrEmptyTrackerTitle is returned when the tracker title is empty.
	ErrEmptyTrackerTitle = errors.New("tracker title must not be empty")

	// ErrTrackerTitleTooLong is returned when the title exceeds the maximum length.
	ErrTrackerTitleTooLong = errors.New("tracker title too long")

	// ErrInvalidTrackerColor is returned when the color is not in the palette.
	ErrInvalidTrackerColor = errors.New("tracker color is not in the palette")

	// ErrInvalidTrackerEmoji is returned when the emoji is not in the palette.
	ErrInvalidTrackerEmoji = errors.New("tracker emoji is not in the palette")

	// ErrEmptySchedule is returned when neither weekdays nor an event date are set.
	ErrEmptySchedule = errors.New("schedule must have weekdays or an event date")

	// ErrMissingCategory is returned when saving a tracker without a category.
	ErrMissingCategory = errors.New("tracker must be assigned to a category")

	// ErrNotAuthorizedToModifyTracker is returned when the tracker belongs to
	// another user.
	ErrNotAuthorizedToModifyTracker = errors.New("not authorized to modify tracker")
)

// TrackerErrorCode defines error codes for tracker errors.
// Format: TRK-XXYYYY where XX is category and YYYY is specific error.
type TrackerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyTrackerTitle    TrackerErrorCode = "TRK-010001"
	ErrCodeInvalidTrackerColor  TrackerErrorCode = "TRK-010002"
	ErrCodeInvalidTrackerEmoji  TrackerErrorCode = "TRK-010003"
	ErrCodeEmptySchedule        TrackerErrorCode = "TRK-010004"
	ErrCodeMissingCategory      TrackerErrorCode = "TRK-010005"
	ErrCodeTrackerTitleTooLong  TrackerErrorCode = "TRK-010006"
	ErrCodeMissingTrackerFields TrackerErrorCode = "TRK-010007"

	// Lookup errors (02XXXX)
	ErrCodeTrackerNotFound      TrackerErrorCode = "TRK-020001"
	ErrCodeNotAuthorizedTracker TrackerErrorCode = "TRK-020002"
)

// TrackerError represents a tracker error with code and message.
type TrackerError struct {
	Code    TrackerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TrackerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TrackerError) Unwrap() error {
	return e.Err
}

// NewTrackerError creates a new TrackerError with the given code and message.
func NewTrackerError(code TrackerErrorCode, message string, err error) *TrackerError {
	return &TrackerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
