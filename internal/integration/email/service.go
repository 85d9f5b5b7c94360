// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueWeeklyDigestEmail queues a weekly summary email for a user.
func (s *Service) QueueWeeklyDigestEmail(ctx context.Context, input adapter.QueueWeeklyDigestInput) error {
	subject := fmt.Sprintf("Your week in habits: %d completed", input.CompletedTotal)

	trackerLines := make([]map[string]interface{}, 0, len(input.TrackerLines))
	for _, line := range input.TrackerLines {
		trackerLines = append(trackerLines, map[string]interface{}{
			"title":            line.Title,
			"emoji":            line.Emoji,
			"completion_count": line.CompletionCount,
		})
	}

	templateData := map[string]interface{}{
		"user_name":       input.UserName,
		"completed_total": input.CompletedTotal,
		"tracker_lines":   trackerLines,
	}

	job := entity.NewEmailJob(
		entity.TemplateWeeklyDigest,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue weekly digest email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
