// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/integration/persistence/model"
)

// trackerRepository implements the adapter.TrackerRepository interface.
type trackerRepository struct {
	db *gorm.DB
}

// NewTrackerRepository creates a new tracker repository instance.
func NewTrackerRepository(db *gorm.DB) adapter.TrackerRepository {
	return &trackerRepository{
		db: db,
	}
}

// Create creates a new tracker in the database.
func (r *trackerRepository) Create(ctx context.Context, tracker *entity.Tracker) error {
	trackerModel := model.TrackerFromEntity(tracker)
	result := r.db.WithContext(ctx).Create(trackerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tracker by its ID.
func (r *trackerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, error) {
	var trackerModel model.TrackerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&trackerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTrackerNotFound
		}
		return nil, result.Error
	}
	return trackerModel.ToEntity(), nil
}

// FindByUser retrieves all trackers for a user, oldest first.
func (r *trackerRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tracker, error) {
	var trackerModels []model.TrackerModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&trackerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trackers := make([]*entity.Tracker, len(trackerModels))
	for i, tm := range trackerModels {
		trackers[i] = tm.ToEntity()
	}
	return trackers, nil
}

// Update updates an existing tracker in the database.
func (r *trackerRepository) Update(ctx context.Context, tracker *entity.Tracker) error {
	trackerModel := model.TrackerFromEntity(tracker)
	result := r.db.WithContext(ctx).Save(trackerModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a tracker along with its completion records.
func (r *trackerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CompletionRecordModel{}, "tracker_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TrackerModel{}, "id = ?", id).Error
	})
}
