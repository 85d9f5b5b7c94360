package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// fakeTrackerRepo serves a single tracker and records updates.
type fakeTrackerRepo struct {
	tracker *entity.Tracker
	updated bool
}

func (r *fakeTrackerRepo) Create(context.Context, *entity.Tracker) error { return nil }
func (r *fakeTrackerRepo) Delete(context.Context, uuid.UUID) error       { return nil }
func (r *fakeTrackerRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Tracker, error) {
	return []*entity.Tracker{r.tracker}, nil
}
func (r *fakeTrackerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tracker, error) {
	if r.tracker != nil && r.tracker.ID == id {
		return r.tracker, nil
	}
	return nil, domainerror.ErrTrackerNotFound
}
func (r *fakeTrackerRepo) Update(_ context.Context, tracker *entity.Tracker) error {
	r.tracker = tracker
	r.updated = true
	return nil
}

// fakeCategoryRepo serves categories by id.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (r *fakeCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) ExistsByTitle(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func newUpdateFixture() (*UpdateTrackerUseCase, *fakeTrackerRepo, *entity.Tracker, *entity.Category) {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Health")
	catID := category.ID
	tracker := entity.NewTracker(userID, "Run", "🙂", "#FD4C49", valueobject.NewSchedule(valueobject.Monday), &catID)

	trackers := &fakeTrackerRepo{tracker: tracker}
	categories := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}}
	return NewUpdateTrackerUseCase(trackers, categories), trackers, tracker, category
}

func updateInput(tracker *entity.Tracker, categoryID uuid.UUID) UpdateTrackerInput {
	return UpdateTrackerInput{
		TrackerID:  tracker.ID,
		UserID:     tracker.UserID,
		Title:      "Run further",
		Emoji:      "🙂",
		Color:      "#FD4C49",
		Schedule:   valueobject.NewSchedule(valueobject.Monday, valueobject.Tuesday),
		CategoryID: categoryID,
	}
}

func TestUpdateTracker(t *testing.T) {
	uc, trackers, tracker, category := newUpdateFixture()

	output, err := uc.Execute(context.Background(), updateInput(tracker, category.ID))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !trackers.updated {
		t.Error("tracker was not persisted")
	}
	if output.Tracker.Title != "Run further" {
		t.Errorf("title not updated: %q", output.Tracker.Title)
	}
	if !output.Tracker.Schedule.Contains(valueobject.Tuesday) {
		t.Error("schedule not updated")
	}
}

func TestUpdateTrackerRejectsForeignCategory(t *testing.T) {
	uc, trackers, tracker, _ := newUpdateFixture()

	// Another user's category exists but must not become the tracker's home.
	foreign := entity.NewCategory(uuid.New(), "Theirs")
	uc.categoryRepo.(*fakeCategoryRepo).categories[foreign.ID] = foreign

	_, err := uc.Execute(context.Background(), updateInput(tracker, foreign.ID))
	var trackerErr *domainerror.TrackerError
	if !errors.As(err, &trackerErr) || trackerErr.Code != domainerror.ErrCodeNotAuthorizedTracker {
		t.Fatalf("got %v, want %s", err, domainerror.ErrCodeNotAuthorizedTracker)
	}
	if trackers.updated {
		t.Error("tracker persisted despite foreign category")
	}
}

func TestUpdateTrackerUnknownCategory(t *testing.T) {
	uc, _, tracker, _ := newUpdateFixture()

	_, err := uc.Execute(context.Background(), updateInput(tracker, uuid.New()))
	var trackerErr *domainerror.TrackerError
	if !errors.As(err, &trackerErr) || trackerErr.Code != domainerror.ErrCodeMissingCategory {
		t.Fatalf("got %v, want %s", err, domainerror.ErrCodeMissingCategory)
	}
}

func TestUpdateTrackerForeignTracker(t *testing.T) {
	uc, _, tracker, category := newUpdateFixture()

	input := updateInput(tracker, category.ID)
	input.UserID = uuid.New()

	_, err := uc.Execute(context.Background(), input)
	var trackerErr *domainerror.TrackerError
	if !errors.As(err, &trackerErr) || trackerErr.Code != domainerror.ErrCodeNotAuthorizedTracker {
		t.Fatalf("got %v, want %s", err, domainerror.ErrCodeNotAuthorizedTracker)
	}
}
