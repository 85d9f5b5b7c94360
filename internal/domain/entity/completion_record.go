// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// CompletionRecord marks a tracker as completed on a specific calendar day.
// The ledger holds at most one record per (TrackerID, Date) pair.
type CompletionRecord struct {
	TrackerID uuid.UUID
	Date      time.Time // Midnight-normalized
}

// NewCompletionRecord creates a completion record for the given day,
// normalizing away any time-of-day component.
func NewCompletionRecord(trackerID uuid.UUID, date time.Time) *CompletionRecord {
	return &CompletionRecord{
		TrackerID: trackerID,
		Date:      valueobject.NormalizeDate(date),
	}
}
