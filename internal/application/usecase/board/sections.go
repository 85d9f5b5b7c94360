// Package board contains the use cases building the visible tracker board:
// grouping by category, the pinned section, filters and search.
package board

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
)

// PinnedSectionTitle labels the synthetic leading section for pinned trackers.
const PinnedSectionTitle = "Pinned"

// Section is one titled group of display items on the board.
type Section struct {
	Title string
	Items []entity.TrackerDisplayItem
}

// completionKey identifies one (tracker, day) ledger entry.
type completionKey struct {
	trackerID uuid.UUID
	date      time.Time
}

// completionSet is the in-memory view of the completion ledger, rebuilt
// from the store before every board query.
type completionSet struct {
	members map[completionKey]struct{}
	totals  map[uuid.UUID]int
}

func newCompletionSet(records []*entity.CompletionRecord) completionSet {
	set := completionSet{
		members: make(map[completionKey]struct{}, len(records)),
		totals:  make(map[uuid.UUID]int),
	}
	for _, r := range records {
		key := completionKey{trackerID: r.TrackerID, date: valueobject.NormalizeDate(r.Date)}
		if _, seen := set.members[key]; seen {
			continue
		}
		set.members[key] = struct{}{}
		set.totals[r.TrackerID]++
	}
	return set
}

func (s completionSet) isCompleted(trackerID uuid.UUID, date time.Time) bool {
	_, ok := s.members[completionKey{trackerID: trackerID, date: valueobject.NormalizeDate(date)}]
	return ok
}

// countFor returns the total completions for the tracker. The number is a
// plain total, not a consecutive-day streak, matching the shipped behavior.
func (s completionSet) countFor(trackerID uuid.UUID) int {
	return s.totals[trackerID]
}

// EffectiveDate resolves the date a board query runs against. The
// TrackersForToday filter resets it to today, but only when no search text
// masks the filter; with a search active the requested date stands, so the
// output stays identical to a search-only query.
func EffectiveDate(referenceDate time.Time, filter entity.Filter, searchText string) time.Time {
	if filter == entity.FilterTrackersForToday && searchText == "" {
		return valueobject.NormalizeDate(time.Now().UTC())
	}
	return valueobject.NormalizeDate(referenceDate)
}

// BuildSections derives the visible board from the full tracker set. The
// reference date is taken as given; callers resolve it with EffectiveDate.
//
// Resolution order: a non-empty search text wins over the active filter
// entirely (case-sensitive substring match on the title); otherwise the
// filter narrows by schedule or completion state for the reference date.
// Pinned trackers that survive the narrowing form the leading "Pinned"
// section and never reappear under their own category; the remaining
// sections are keyed by category, sorted by title ascending, with empty
// sections dropped.
func BuildSections(
	trackers []*entity.Tracker,
	categories []*entity.Category,
	records []*entity.CompletionRecord,
	referenceDate time.Time,
	filter entity.Filter,
	searchText string,
) []Section {
	refDate := valueobject.NormalizeDate(referenceDate)

	completions := newCompletionSet(records)
	visible := visiblePredicate(filter, searchText, refDate, completions)

	categoryTitles := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryTitles[c.ID] = c.Title
	}

	var pinned []entity.TrackerDisplayItem
	grouped := make(map[uuid.UUID][]entity.TrackerDisplayItem)

	for _, t := range trackers {
		if !visible(t) {
			continue
		}
		item := entity.TrackerDisplayItem{
			Tracker:         t,
			IsCompleted:     completions.isCompleted(t.ID, refDate),
			CompletionCount: completions.countFor(t.ID),
		}
		if t.IsPinned {
			pinned = append(pinned, item)
			continue
		}
		// Unplaced trackers have no section to appear in.
		if t.CategoryID == nil {
			continue
		}
		if _, known := categoryTitles[*t.CategoryID]; !known {
			continue
		}
		grouped[*t.CategoryID] = append(grouped[*t.CategoryID], item)
	}

	sections := make([]Section, 0, len(grouped)+1)
	if len(pinned) > 0 {
		sections = append(sections, Section{Title: PinnedSectionTitle, Items: pinned})
	}

	ids := make([]uuid.UUID, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return categoryTitles[ids[i]] < categoryTitles[ids[j]]
	})
	for _, id := range ids {
		sections = append(sections, Section{Title: categoryTitles[id], Items: grouped[id]})
	}

	return sections
}

// visiblePredicate returns the narrowing rule for the given search text and
// filter. Search masks the filter when both are active; the asymmetry is
// intentional and carried over from the shipped app.
func visiblePredicate(filter entity.Filter, searchText string, refDate time.Time, completions completionSet) func(*entity.Tracker) bool {
	if searchText != "" {
		return func(t *entity.Tracker) bool {
			return strings.Contains(t.Title, searchText)
		}
	}

	weekday := valueobject.WeekdayOf(refDate)
	switch filter {
	case entity.FilterAllTrackers, entity.FilterTrackersForToday:
		return func(t *entity.Tracker) bool {
			return t.Schedule.Contains(weekday)
		}
	case entity.FilterCompletedTrackers:
		return func(t *entity.Tracker) bool {
			return completions.isCompleted(t.ID, refDate)
		}
	case entity.FilterUncompletedTrackers:
		return func(t *entity.Tracker) bool {
			return !completions.isCompleted(t.ID, refDate)
		}
	default:
		return func(*entity.Tracker) bool { return true }
	}
}
