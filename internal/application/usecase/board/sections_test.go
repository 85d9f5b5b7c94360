package board

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// 2024-03-04 is a Monday.
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

type fixture struct {
	userID     uuid.UUID
	health     *entity.Category
	work       *entity.Category
	trackerA   *entity.Tracker // Monday, Health
	trackerB   *entity.Tracker // Monday+Tuesday, Health, pinned
	trackerC   *entity.Tracker // Tuesday only, Work
	categories []*entity.Category
	trackers   []*entity.Tracker
}

func newFixture() fixture {
	userID := uuid.New()
	health := entity.NewCategory(userID, "Health")
	work := entity.NewCategory(userID, "Work")

	healthID := health.ID
	workID := work.ID

	a := entity.NewTracker(userID, "Run", "🙂", "#FD4C49", valueobject.NewSchedule(valueobject.Monday), &healthID)
	b := entity.NewTracker(userID, "Stretch", "😻", "#007BFA", valueobject.NewSchedule(valueobject.Monday, valueobject.Tuesday), &healthID)
	b.IsPinned = true
	c := entity.NewTracker(userID, "Standup notes", "🤔", "#33CF69", valueobject.NewSchedule(valueobject.Tuesday), &workID)

	return fixture{
		userID:     userID,
		health:     health,
		work:       work,
		trackerA:   a,
		trackerB:   b,
		trackerC:   c,
		categories: []*entity.Category{health, work},
		trackers:   []*entity.Tracker{a, b, c},
	}
}

func sectionTitles(sections []Section) []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	return titles
}

func containsTracker(section Section, id uuid.UUID) bool {
	for _, item := range section.Items {
		if item.Tracker.ID == id {
			return true
		}
	}
	return false
}

func TestBuildSectionsAllTrackersOnMonday(t *testing.T) {
	f := newFixture()

	sections := BuildSections(f.trackers, f.categories, nil, monday, entity.FilterAllTrackers, "")

	// Expected: [("Pinned", [B]), ("Health", [A])]; C is Tuesday-only.
	if len(sections) != 2 {
		t.Fatalf("got %d sections %v, want 2", len(sections), sectionTitles(sections))
	}
	if sections[0].Title != PinnedSectionTitle || !containsTracker(sections[0], f.trackerB.ID) || len(sections[0].Items) != 1 {
		t.Errorf("pinned section wrong: %+v", sections[0])
	}
	if sections[1].Title != "Health" || !containsTracker(sections[1], f.trackerA.ID) || len(sections[1].Items) != 1 {
		t.Errorf("health section wrong: %+v", sections[1])
	}
}

func TestBuildSectionsPinnedExclusivity(t *testing.T) {
	f := newFixture()

	sections := BuildSections(f.trackers, f.categories, nil, monday, entity.FilterNone, "")

	appearances := 0
	for _, s := range sections {
		if containsTracker(s, f.trackerB.ID) {
			appearances++
			if s.Title != PinnedSectionTitle {
				t.Errorf("pinned tracker appeared under %q", s.Title)
			}
		}
	}
	if appearances != 1 {
		t.Errorf("pinned tracker appeared %d times, want exactly 1", appearances)
	}
}

func TestBuildSectionsCompletedAndUncompleted(t *testing.T) {
	f := newFixture()
	records := []*entity.CompletionRecord{
		entity.NewCompletionRecord(f.trackerA.ID, monday),
	}

	completed := BuildSections(f.trackers, f.categories, records, monday, entity.FilterCompletedTrackers, "")
	if len(completed) != 1 || completed[0].Title != "Health" || !containsTracker(completed[0], f.trackerA.ID) {
		t.Errorf("completed filter: got %v", sectionTitles(completed))
	}
	for _, s := range completed {
		if containsTracker(s, f.trackerC.ID) {
			t.Error("uncompleted tracker leaked into completed filter")
		}
	}

	uncompleted := BuildSections(f.trackers, f.categories, records, monday, entity.FilterUncompletedTrackers, "")
	for _, s := range uncompleted {
		if containsTracker(s, f.trackerA.ID) {
			t.Error("completed tracker leaked into uncompleted filter")
		}
	}
	foundB, foundC := false, false
	for _, s := range uncompleted {
		if containsTracker(s, f.trackerB.ID) {
			foundB = true
		}
		if containsTracker(s, f.trackerC.ID) {
			foundC = true
		}
	}
	if !foundB || !foundC {
		t.Errorf("uncompleted filter missing trackers: B=%v C=%v", foundB, foundC)
	}
}

func TestBuildSectionsSearchMasksFilter(t *testing.T) {
	// Search text wins over any active filter; the asymmetry is intentional.
	// Completion state must come out identical too, so the comparison runs
	// with records and resolves the date the way Execute does.
	f := newFixture()
	records := []*entity.CompletionRecord{
		entity.NewCompletionRecord(f.trackerA.ID, monday),
	}

	searchOnly := BuildSections(f.trackers, f.categories, records,
		EffectiveDate(monday, entity.FilterNone, "Run"), entity.FilterNone, "Run")
	for _, filter := range []entity.Filter{
		entity.FilterAllTrackers,
		entity.FilterCompletedTrackers,
		entity.FilterUncompletedTrackers,
		entity.FilterTrackersForToday,
	} {
		withFilter := BuildSections(f.trackers, f.categories, records,
			EffectiveDate(monday, filter, "Run"), filter, "Run")
		if len(withFilter) != len(searchOnly) {
			t.Fatalf("filter %s changed search output: %v vs %v", filter, sectionTitles(withFilter), sectionTitles(searchOnly))
		}
		for i := range withFilter {
			if withFilter[i].Title != searchOnly[i].Title || len(withFilter[i].Items) != len(searchOnly[i].Items) {
				t.Fatalf("filter %s changed search section %d", filter, i)
			}
			for j, item := range withFilter[i].Items {
				want := searchOnly[i].Items[j]
				if item.IsCompleted != want.IsCompleted || item.CompletionCount != want.CompletionCount {
					t.Errorf("filter %s changed item state for %q: completed=%v count=%d, want completed=%v count=%d",
						filter, item.Tracker.Title, item.IsCompleted, item.CompletionCount, want.IsCompleted, want.CompletionCount)
				}
			}
		}
	}

	if len(searchOnly) != 1 || searchOnly[0].Title != "Health" || !containsTracker(searchOnly[0], f.trackerA.ID) {
		t.Fatalf("search result wrong: %v", sectionTitles(searchOnly))
	}
	if !searchOnly[0].Items[0].IsCompleted {
		t.Error("completed tracker not marked completed under search")
	}
}

func TestEffectiveDate(t *testing.T) {
	today := valueobject.NormalizeDate(time.Now().UTC())

	if got := EffectiveDate(monday, entity.FilterTrackersForToday, ""); !got.Equal(today) {
		t.Errorf("trackersForToday without search: got %v, want %v", got, today)
	}
	// A non-empty search masks the filter, so the requested date stands.
	if got := EffectiveDate(monday, entity.FilterTrackersForToday, "Run"); !got.Equal(monday) {
		t.Errorf("trackersForToday with search: got %v, want %v", got, monday)
	}
	if got := EffectiveDate(monday, entity.FilterCompletedTrackers, ""); !got.Equal(monday) {
		t.Errorf("other filters must keep the requested date: got %v", got)
	}
}

func TestBuildSectionsSearchIsCaseSensitive(t *testing.T) {
	f := newFixture()

	if got := BuildSections(f.trackers, f.categories, nil, monday, entity.FilterNone, "standup"); len(got) != 0 {
		t.Errorf("lowercase search matched %v, want no sections", sectionTitles(got))
	}
	if got := BuildSections(f.trackers, f.categories, nil, monday, entity.FilterNone, "Standup"); len(got) != 1 {
		t.Errorf("exact-case search got %v, want one section", sectionTitles(got))
	}
}

func TestBuildSectionsDeterministicOrder(t *testing.T) {
	f := newFixture()

	first := BuildSections(f.trackers, f.categories, nil, monday, entity.FilterNone, "")
	for i := 0; i < 20; i++ {
		again := BuildSections(f.trackers, f.categories, nil, monday, entity.FilterNone, "")
		if len(again) != len(first) {
			t.Fatalf("section count changed between runs")
		}
		for j := range again {
			if again[j].Title != first[j].Title {
				t.Fatalf("section order changed: %v vs %v", sectionTitles(again), sectionTitles(first))
			}
		}
	}

	// Category sections sorted by title ascending, after the pinned section.
	want := []string{PinnedSectionTitle, "Health", "Work"}
	got := sectionTitles(first)
	if len(got) != len(want) {
		t.Fatalf("got sections %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got sections %v, want %v", got, want)
		}
	}
}

func TestBuildSectionsDropsEmptySections(t *testing.T) {
	f := newFixture()
	// Tuesday: only B (pinned) and C (Work) are scheduled; Health would be
	// empty and must not appear.
	tuesday := monday.AddDate(0, 0, 1)

	sections := BuildSections(f.trackers, f.categories, nil, tuesday, entity.FilterAllTrackers, "")
	for _, s := range sections {
		if s.Title == "Health" {
			t.Error("empty Health section was not dropped")
		}
		if len(s.Items) == 0 {
			t.Errorf("section %q rendered empty", s.Title)
		}
	}
}

func TestBuildSectionsToleratesDegenerateSchedules(t *testing.T) {
	userID := uuid.New()
	cat := entity.NewCategory(userID, "Misc")
	catID := cat.ID
	degenerate := entity.NewTracker(userID, "Odd", "🙂", "#FD4C49", valueobject.NewSchedule(), &catID)
	unplaced := entity.NewTracker(userID, "Floating", "🙂", "#FD4C49", valueobject.NewSchedule(valueobject.Monday), nil)

	sections := BuildSections(
		[]*entity.Tracker{degenerate, unplaced},
		[]*entity.Category{cat},
		nil,
		monday,
		entity.FilterAllTrackers,
		"",
	)
	if len(sections) != 0 {
		t.Errorf("degenerate/unplaced trackers produced sections %v", sectionTitles(sections))
	}
}

func TestBuildSectionsDisplayItemState(t *testing.T) {
	f := newFixture()
	records := []*entity.CompletionRecord{
		entity.NewCompletionRecord(f.trackerA.ID, monday),
		entity.NewCompletionRecord(f.trackerA.ID, monday.AddDate(0, 0, -7)),
		// Duplicate day must not inflate the count.
		entity.NewCompletionRecord(f.trackerA.ID, monday),
	}

	sections := BuildSections(f.trackers, f.categories, records, monday, entity.FilterNone, "")
	for _, s := range sections {
		for _, item := range s.Items {
			if item.Tracker.ID != f.trackerA.ID {
				continue
			}
			if !item.IsCompleted {
				t.Error("tracker A should be completed for the reference date")
			}
			if item.CompletionCount != 2 {
				t.Errorf("completion count = %d, want 2", item.CompletionCount)
			}
		}
	}
}
