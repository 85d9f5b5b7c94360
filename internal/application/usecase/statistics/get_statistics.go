// Package statistics contains statistics-related use cases.
package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// GetStatisticsInput represents the input for getting statistics.
type GetStatisticsInput struct {
	UserID uuid.UUID
}

// GetStatisticsOutput represents the output of getting statistics.
type GetStatisticsOutput struct {
	CompletedTotal int             `json:"completed_total"`
	PerfectDays    int             `json:"perfect_days"`
	AveragePerDay  decimal.Decimal `json:"average_per_day"`
}

// GetStatisticsUseCase aggregates the completion ledger into the numbers
// shown on the statistics screen.
type GetStatisticsUseCase struct {
	trackerRepo    adapter.TrackerRepository
	completionRepo adapter.CompletionRepository
}

// NewGetStatisticsUseCase creates a new GetStatisticsUseCase instance.
func NewGetStatisticsUseCase(trackerRepo adapter.TrackerRepository, completionRepo adapter.CompletionRepository) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		trackerRepo:    trackerRepo,
		completionRepo: completionRepo,
	}
}

// Execute computes the statistics for the user.
//
// CompletedTotal is the size of the completion ledger and is the
// authoritative number; PerfectDays counts active days where every
// scheduled tracker was completed, and AveragePerDay divides the total by
// the number of distinct active days.
func (uc *GetStatisticsUseCase) Execute(ctx context.Context, input GetStatisticsInput) (*GetStatisticsOutput, error) {
	trackers, err := uc.trackerRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trackers: %w", err)
	}

	records, err := uc.completionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion records: %w", err)
	}

	// Group completions by calendar day, deduplicating repeated records.
	byDay := make(map[time.Time]map[uuid.UUID]bool)
	for _, record := range records {
		day := valueobject.NormalizeDate(record.Date)
		if byDay[day] == nil {
			byDay[day] = make(map[uuid.UUID]bool)
		}
		byDay[day][record.TrackerID] = true
	}

	total := 0
	perfectDays := 0
	for day, completed := range byDay {
		total += len(completed)
		if uc.isPerfectDay(trackers, completed, day) {
			perfectDays++
		}
	}

	average := decimal.Zero
	if len(byDay) > 0 {
		average = decimal.NewFromInt(int64(total)).
			Div(decimal.NewFromInt(int64(len(byDay)))).
			Round(2)
	}

	return &GetStatisticsOutput{
		CompletedTotal: total,
		PerfectDays:    perfectDays,
		AveragePerDay:  average,
	}, nil
}

// isPerfectDay reports whether every tracker scheduled for the day was
// completed. A day with no scheduled trackers is not perfect; the records
// on it belong to one-off toggles.
func (uc *GetStatisticsUseCase) isPerfectDay(trackers []*entity.Tracker, completed map[uuid.UUID]bool, day time.Time) bool {
	scheduled := 0
	for _, tracker := range trackers {
		if !tracker.Schedule.Matches(day) {
			continue
		}
		scheduled++
		if !completed[tracker.ID] {
			return false
		}
	}
	return scheduled > 0
}
