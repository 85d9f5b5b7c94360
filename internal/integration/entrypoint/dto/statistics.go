package dto

import (
	"github.com/tracker-app/backend/internal/application/usecase/statistics"
)

// StatisticsResponse represents the aggregated completion numbers.
type StatisticsResponse struct {
	CompletedTotal int    `json:"completed_total"`
	PerfectDays    int    `json:"perfect_days"`
	AveragePerDay  string `json:"average_per_day"`
}

// ToStatisticsResponse converts the statistics output to its API
// representation. The average is serialized as a fixed two-decimal string.
func ToStatisticsResponse(output *statistics.GetStatisticsOutput) StatisticsResponse {
	return StatisticsResponse{
		CompletedTotal: output.CompletedTotal,
		PerfectDays:    output.PerfectDays,
		AveragePerDay:  output.AveragePerDay.StringFixed(2),
	}
}
