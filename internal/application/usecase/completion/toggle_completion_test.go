package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	domainerror "github.com/tracker-app/backend/internal/domain/error"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// fakeTrackerRepo serves a single tracker by id.
type fakeTrackerRepo struct {
	tracker *entity.Tracker
}

func (r *fakeTrackerRepo) Create(context.Context, *entity.Tracker) error { return nil }
func (r *fakeTrackerRepo) Update(context.Context, *entity.Tracker) error { return nil }
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

// fakeCompletionRepo keeps the ledger in a map.
type fakeCompletionRepo struct {
	records map[string]struct{}
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{records: make(map[string]struct{})}
}

func key(trackerID uuid.UUID, date time.Time) string {
	return trackerID.String() + "|" + valueobject.NormalizeDate(date).Format("2006-01-02")
}

func (r *fakeCompletionRepo) Create(_ context.Context, record *entity.CompletionRecord) error {
	r.records[key(record.TrackerID, record.Date)] = struct{}{}
	return nil
}

func (r *fakeCompletionRepo) Delete(_ context.Context, trackerID uuid.UUID, date time.Time) error {
	delete(r.records, key(trackerID, date))
	return nil
}

func (r *fakeCompletionRepo) Exists(_ context.Context, trackerID uuid.UUID, date time.Time) (bool, error) {
	_, ok := r.records[key(trackerID, date)]
	return ok, nil
}

func (r *fakeCompletionRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.CompletionRecord, error) {
	return nil, nil
}

func (r *fakeCompletionRepo) CountByTracker(_ context.Context, trackerID uuid.UUID) (int, error) {
	count := 0
	prefix := trackerID.String() + "|"
	for k := range r.records {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			count++
		}
	}
	return count, nil
}

func newTestUseCase(t *testing.T) (*ToggleCompletionUseCase, *entity.Tracker, *fakeCompletionRepo) {
	t.Helper()
	userID := uuid.New()
	catID := uuid.New()
	tracker := entity.NewTracker(userID, "Run", "🙂", "#FD4C49", valueobject.NewSchedule(valueobject.Monday), &catID)
	completions := newFakeCompletionRepo()
	now := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	uc := NewToggleCompletionUseCase(&fakeTrackerRepo{tracker: tracker}, completions).
		WithClock(func() time.Time { return now })
	return uc, tracker, completions
}

func TestToggleCompletionInsertsAndRemoves(t *testing.T) {
	uc, tracker, completions := newTestUseCase(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	input := ToggleCompletionInput{TrackerID: tracker.ID, UserID: tracker.UserID, Date: day}

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !out.IsCompleted || out.CompletionCount != 1 {
		t.Errorf("first toggle: completed=%v count=%d", out.IsCompleted, out.CompletionCount)
	}

	// Double application returns to the original membership state.
	out, err = uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if out.IsCompleted || out.CompletionCount != 0 {
		t.Errorf("second toggle: completed=%v count=%d", out.IsCompleted, out.CompletionCount)
	}
	if exists, _ := completions.Exists(context.Background(), tracker.ID, day); exists {
		t.Error("record still present after double toggle")
	}
}

func TestToggleCompletionNormalizesTimeOfDay(t *testing.T) {
	uc, tracker, completions := newTestUseCase(t)

	morning := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC)

	if _, err := uc.Execute(context.Background(), ToggleCompletionInput{TrackerID: tracker.ID, UserID: tracker.UserID, Date: morning}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	out, err := uc.Execute(context.Background(), ToggleCompletionInput{TrackerID: tracker.ID, UserID: tracker.UserID, Date: evening})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if out.IsCompleted {
		t.Error("same calendar day at a different hour did not toggle off")
	}
	if count, _ := completions.CountByTracker(context.Background(), tracker.ID); count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestToggleCompletionRejectsFutureDates(t *testing.T) {
	uc, tracker, completions := newTestUseCase(t)
	tomorrow := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), ToggleCompletionInput{TrackerID: tracker.ID, UserID: tracker.UserID, Date: tomorrow})
	if err == nil {
		t.Fatal("expected error for future date")
	}
	var compErr *domainerror.CompletionError
	if !errors.As(err, &compErr) || compErr.Code != domainerror.ErrCodeFutureDateCompletion {
		t.Fatalf("got %v, want FutureDateCompletion", err)
	}
	if len(completions.records) != 0 {
		t.Error("ledger mutated by rejected toggle")
	}

	// Far future behaves the same for any tracker id.
	farFuture := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), ToggleCompletionInput{TrackerID: tracker.ID, UserID: tracker.UserID, Date: farFuture})
	if !errors.As(err, &compErr) || compErr.Code != domainerror.ErrCodeFutureDateCompletion {
		t.Fatalf("far future: got %v", err)
	}
}

func TestToggleCompletionAllowsEarlierToday(t *testing.T) {
	// The clock is 15:00; completing the same day must pass the guard.
	uc, tracker, _ := newTestUseCase(t)
	today := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)

	if _, err := uc.Execute(context.Background(), ToggleCompletionInput{TrackerID: tracker.ID, UserID: tracker.UserID, Date: today}); err != nil {
		t.Fatalf("same-day toggle rejected: %v", err)
	}
}

func TestToggleCompletionUnknownTracker(t *testing.T) {
	uc, tracker, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), ToggleCompletionInput{
		TrackerID: uuid.New(),
		UserID:    tracker.UserID,
		Date:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	var compErr *domainerror.CompletionError
	if !errors.As(err, &compErr) || compErr.Code != domainerror.ErrCodeCompletionTrackerNotFound {
		t.Fatalf("got %v, want tracker-not-found completion error", err)
	}
}
