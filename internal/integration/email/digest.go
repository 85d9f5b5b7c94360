// Package email provides email sending functionality.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// DigestScheduler queues the weekly digest email for every opted-in user.
// It runs on an interval and only acts when a full week has passed since
// the configured weekday, so restarting the process does not double-send.
type DigestScheduler struct {
	users       adapter.UserRepository
	trackers    adapter.TrackerRepository
	completions adapter.CompletionRepository
	service     adapter.EmailService
	interval    time.Duration
	sendWeekday time.Weekday
	lastRun     time.Time
	now         func() time.Time
}

// NewDigestScheduler creates a new digest scheduler. The digest goes out on
// Sundays, covering the preceding seven days.
func NewDigestScheduler(
	users adapter.UserRepository,
	trackers adapter.TrackerRepository,
	completions adapter.CompletionRepository,
	service adapter.EmailService,
	interval time.Duration,
) *DigestScheduler {
	return &DigestScheduler{
		users:       users,
		trackers:    trackers,
		completions: completions,
		service:     service,
		interval:    interval,
		sendWeekday: time.Sunday,
		now:         time.Now,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (s *DigestScheduler) Start(ctx context.Context) {
	slog.Info("Digest scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest scheduler shutting down")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *DigestScheduler) tick(ctx context.Context) {
	now := s.now().UTC()
	if now.Weekday() != s.sendWeekday {
		return
	}
	// At most one run per calendar day
	if !s.lastRun.IsZero() && valueobject.NormalizeDate(s.lastRun).Equal(valueobject.NormalizeDate(now)) {
		return
	}
	s.lastRun = now

	if err := s.RunOnce(ctx); err != nil {
		slog.Error("Weekly digest run failed", "error", err)
	}
}

// RunOnce queues the digest for all recipients immediately.
func (s *DigestScheduler) RunOnce(ctx context.Context) error {
	users, err := s.users.FindDigestRecipients(ctx)
	if err != nil {
		return err
	}

	since := valueobject.NormalizeDate(s.now().UTC().AddDate(0, 0, -7))

	for _, user := range users {
		input, err := s.buildDigest(ctx, user.ID, since)
		if err != nil {
			slog.Error("Failed to build digest", "user_id", user.ID, "error", err)
			continue
		}
		if input == nil {
			// Nothing completed this week; skip the email entirely
			continue
		}

		input.UserEmail = user.Email
		input.UserName = user.Name

		if err := s.service.QueueWeeklyDigestEmail(ctx, *input); err != nil {
			slog.Error("Failed to queue digest email", "user_id", user.ID, "error", err)
		}
	}

	slog.Info("Weekly digest run complete", "recipients", len(users))
	return nil
}

// buildDigest aggregates the past week's completions for one user. A nil
// result means no activity.
func (s *DigestScheduler) buildDigest(ctx context.Context, userID uuid.UUID, since time.Time) (*adapter.QueueWeeklyDigestInput, error) {
	trackers, err := s.trackers.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.completions.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekCounts := make(map[uuid.UUID]int)
	total := 0
	for _, record := range records {
		if record.Date.Before(since) {
			continue
		}
		weekCounts[record.TrackerID]++
		total++
	}
	if total == 0 {
		return nil, nil
	}

	lines := make([]adapter.DigestTrackerLine, 0, len(weekCounts))
	for _, tracker := range trackers {
		count, ok := weekCounts[tracker.ID]
		if !ok {
			continue
		}
		lines = append(lines, adapter.DigestTrackerLine{
			Title:           tracker.Title,
			Emoji:           tracker.Emoji,
			CompletionCount: count,
		})
	}

	return &adapter.QueueWeeklyDigestInput{
		CompletedTotal: total,
		TrackerLines:   lines,
	}, nil
}
