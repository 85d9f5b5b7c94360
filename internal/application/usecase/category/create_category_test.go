package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByTitle(_ context.Context, userID uuid.UUID, title string) (bool, error) {
	for _, c := range r.categories {
		if c.UserID == userID && c.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateCategory(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	out, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Title: "Health"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Category.Title != "Health" || out.Category.UserID != userID {
		t.Errorf("unexpected category: %+v", out.Category)
	}
	if out.Category.ID == uuid.Nil {
		t.Error("category id not assigned")
	}
}

func TestCreateCategoryAllowsDuplicateTitles(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Title: "Health"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if len(repo.categories) != 2 {
		t.Errorf("got %d categories, want 2", len(repo.categories))
	}
}

func TestCreateCategoryValidation(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := NewCreateCategoryUseCase(repo)

	tests := []struct {
		name  string
		title string
		code  domainerror.CategoryErrorCode
	}{
		{"empty title", "", domainerror.ErrCodeEmptyCategoryTitle},
		{"title too long", strings.Repeat("x", entity.MaxCategoryTitleLength+1), domainerror.ErrCodeCategoryTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: uuid.New(), Title: tt.title})
			var catErr *domainerror.CategoryError
			if !errors.As(err, &catErr) || catErr.Code != tt.code {
				t.Fatalf("got %v, want code %s", err, tt.code)
			}
		})
	}
	if len(repo.categories) != 0 {
		t.Error("rejected category was persisted")
	}
}

func TestCreateCategoryAcceptsMaxLengthTitle(t *testing.T) {
	uc := NewCreateCategoryUseCase(&fakeCategoryRepo{})
	title := strings.Repeat("x", entity.MaxCategoryTitleLength)

	if _, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: uuid.New(), Title: title}); err != nil {
		t.Fatalf("max-length title rejected: %v", err)
	}
}

func TestListCategories(t *testing.T) {
	repo := &fakeCategoryRepo{}
	userID := uuid.New()
	otherID := uuid.New()
	repo.categories = []*entity.Category{
		entity.NewCategory(userID, "Health"),
		entity.NewCategory(userID, "Work"),
		entity.NewCategory(otherID, "Travel"),
	}

	out, err := NewListCategoriesUseCase(repo).Execute(context.Background(), ListCategoriesInput{UserID: userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(out.Categories))
	}
	for _, c := range out.Categories {
		if c.UserID != userID {
			t.Errorf("category %q belongs to another user", c.Title)
		}
	}
}
