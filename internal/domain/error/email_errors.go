// Package error defines domain-specific errors for the Tracker application.
package error

import "errors"

// Email domain errors.
var (
	// ErrEmailSendFailed is returned when an email could not be sent.
	ErrEmailSendFailed = errors.New("failed to send email")

	// ErrEmailJobNotFound is returned when an email job is not in the queue.
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrInvalidTemplate is returned for unknown email template types.
	ErrInvalidTemplate = errors.New("unknown email template")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// ErrCodeTemporaryEmailFailure marks failures worth retrying.
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010001"
	// ErrCodePermanentEmailFailure marks failures that must not be retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010002"
	// ErrCodeEmailQueueFailed marks queue persistence failures.
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-020001"
	// ErrCodeInvalidTemplate marks jobs referencing an unknown template.
	ErrCodeInvalidTemplate EmailErrorCode = "EML-020002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether the failure must not be retried.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
