package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the category creation request body.
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=50"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse represents a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a category entity to its API representation.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Title:     category.Title,
		CreatedAt: category.CreatedAt,
	}
}

// ToCategoryListResponse converts category entities to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	resp := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, ToCategoryResponse(c))
	}
	return resp
}
