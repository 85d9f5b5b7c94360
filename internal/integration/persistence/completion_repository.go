// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
	"github.com/tracker-app/backend/internal/integration/persistence/model"
)

// completionRepository implements the adapter.CompletionRepository interface.
type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new completion repository instance.
func NewCompletionRepository(db *gorm.DB) adapter.CompletionRepository {
	return &completionRepository{
		db: db,
	}
}

// Create adds a completion record to the ledger.
func (r *completionRepository) Create(ctx context.Context, record *entity.CompletionRecord) error {
	recordModel := model.CompletionRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes the completion record for the given tracker and day.
func (r *completionRepository) Delete(ctx context.Context, trackerID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Where("tracker_id = ? AND date = ?", trackerID, valueobject.NormalizeDate(date)).
		Delete(&model.CompletionRecordModel{})
	return result.Error
}

// Exists reports whether a completion record exists for the tracker and day.
func (r *completionRepository) Exists(ctx context.Context, trackerID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CompletionRecordModel{}).
		Where("tracker_id = ? AND date = ?", trackerID, valueobject.NormalizeDate(date)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindByUser retrieves all completion records for a user's trackers.
func (r *completionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CompletionRecord, error) {
	var recordModels []model.CompletionRecordModel
	result := r.db.WithContext(ctx).
		Joins("JOIN trackers ON trackers.id = completion_records.tracker_id").
		Where("trackers.user_id = ?", userID).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.CompletionRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// CountByTracker counts completion records for a tracker.
func (r *completionRepository) CountByTracker(ctx context.Context, trackerID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CompletionRecordModel{}).
		Where("tracker_id = ?", trackerID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}
