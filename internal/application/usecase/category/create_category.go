// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/application/adapter"
	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Title  string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Titles are validated for length
// but duplicates are permitted; the board disambiguates by id, not title.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryTitle,
			"category title must not be empty",
			domainerror.ErrEmptyCategoryTitle,
		)
	}
	if len(input.Title) > entity.MaxCategoryTitleLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryTitleTooLong,
			fmt.Sprintf("category title must not exceed %d characters", entity.MaxCategoryTitleLength),
			domainerror.ErrCategoryTitleTooLong,
		)
	}

	exists, err := uc.categoryRepo.ExistsByTitle(ctx, input.UserID, input.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check category title: %w", err)
	}
	if exists {
		slog.Info("creating category with duplicate title", "title", input.Title)
	}

	category := entity.NewCategory(input.UserID, input.Title)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
