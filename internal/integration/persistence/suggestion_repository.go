// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/integration/persistence/model"
)

// suggestionRepository implements the adapter.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(db *gorm.DB) adapter.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// Create stores a generated suggestion.
func (r *suggestionRepository) Create(ctx context.Context, suggestion *entity.TrackerSuggestion) error {
	suggestionModel := model.SuggestionFromEntity(suggestion)
	result := r.db.WithContext(ctx).Create(suggestionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
