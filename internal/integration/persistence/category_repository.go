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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var record model.CategoryModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, err
	}
	return record.ToEntity(), nil
}

// FindByUser returns the user's categories sorted by title, the order the
// board lists its sections in.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var records []model.CategoryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("title ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(records))
	for i, record := range records {
		categories[i] = record.ToEntity()
	}
	return categories, nil
}

// ExistsByTitle reports whether the user already has a category with this
// title. Creation does not reject duplicates; clients use this to warn.
func (r *categoryRepository) ExistsByTitle(ctx context.Context, userID uuid.UUID, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND title = ?", userID, title).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
