// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetByID retrieves a specific job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// DeleteOldSentJobs removes sent jobs older than the specified number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueWeeklyDigestInput represents the input for queueing a weekly digest email.
type QueueWeeklyDigestInput struct {
	UserEmail      string
	UserName       string
	CompletedTotal int
	TrackerLines   []DigestTrackerLine
}

// DigestTrackerLine is one tracker row in the weekly digest email.
type DigestTrackerLine struct {
	Title           string
	Emoji           string
	CompletionCount int
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWeeklyDigestEmail queues a weekly summary email for a user.
	QueueWeeklyDigestEmail(ctx context.Context, input QueueWeeklyDigestInput) error
}
