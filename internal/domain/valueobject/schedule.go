// Package valueobject defines immutable value types for the domain layer.
package valueobject

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Weekday represents a day of the week using calendar numbering,
// Sunday=1 through Saturday=7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// shortNames maps weekdays to their short display names in canonical order.
var shortNames = map[Weekday]string{
	Sunday:    "Sun",
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
	Saturday:  "Sat",
}

// ShortName returns the short display name for the weekday, or an empty
// string for out-of-range values.
func (w Weekday) ShortName() string {
	return shortNames[w]
}

// IsValid reports whether the weekday is within Sunday..Saturday.
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// WeekdayOf returns the Weekday for a calendar date.
func WeekdayOf(date time.Time) Weekday {
	// time.Weekday is zero-based starting at Sunday.
	return Weekday(int(date.Weekday()) + 1)
}

// NormalizeDate strips the time-of-day component, returning midnight UTC
// for the same calendar day. All ledger dates pass through here so that
// (tracker, day) membership is exact.
func NormalizeDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Schedule is the recurrence rule attached to a tracker: a set of weekdays
// for recurring habits, or a single fixed day for one-off events. A schedule
// with neither matches nothing; a schedule with both is tolerated and
// matches per either rule.
type Schedule struct {
	weekdays map[Weekday]bool
	date     *time.Time
}

// NewSchedule creates a weekly schedule from the given weekdays.
// Invalid weekday values are dropped.
func NewSchedule(weekdays ...Weekday) Schedule {
	s := Schedule{weekdays: make(map[Weekday]bool, len(weekdays))}
	for _, w := range weekdays {
		if w.IsValid() {
			s.weekdays[w] = true
		}
	}
	return s
}

// NewEventSchedule creates a one-off schedule fixed to a single calendar day.
func NewEventSchedule(date time.Time) Schedule {
	d := NormalizeDate(date)
	return Schedule{weekdays: map[Weekday]bool{}, date: &d}
}

// Weekdays returns the scheduled weekdays in canonical order.
func (s Schedule) Weekdays() []Weekday {
	days := make([]Weekday, 0, len(s.weekdays))
	for w := range s.weekdays {
		days = append(days, w)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Date returns the one-off event day, or nil for weekly schedules.
func (s Schedule) Date() *time.Time {
	if s.date == nil {
		return nil
	}
	d := *s.date
	return &d
}

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(weekday Weekday) bool {
	return s.weekdays[weekday]
}

// Matches reports whether the schedule covers the given calendar day:
// either the day's weekday is scheduled, or the day equals the one-off
// event date. Degenerate schedules never match and never panic.
func (s Schedule) Matches(date time.Time) bool {
	if s.Contains(WeekdayOf(date)) {
		return true
	}
	if s.date != nil {
		return s.date.Equal(NormalizeDate(date))
	}
	return false
}

// IsEmpty reports whether the schedule has no weekdays and no event date,
// i.e. it can never match any day.
func (s Schedule) IsEmpty() bool {
	return len(s.weekdays) == 0 && s.date == nil
}

// IsEvent reports whether the schedule is a one-off event schedule.
func (s Schedule) IsEvent() bool {
	return s.date != nil && len(s.weekdays) == 0
}

// Equal reports value equality with another schedule.
func (s Schedule) Equal(other Schedule) bool {
	if len(s.weekdays) != len(other.weekdays) {
		return false
	}
	for w := range s.weekdays {
		if !other.weekdays[w] {
			return false
		}
	}
	if (s.date == nil) != (other.date == nil) {
		return false
	}
	if s.date != nil && !s.date.Equal(*other.date) {
		return false
	}
	return true
}

// Summary returns the human-readable description of the schedule:
// all seven days -> "Every day", Monday-Friday -> "Weekdays",
// Saturday+Sunday -> "Weekend", otherwise a comma-joined list of short
// weekday names in canonical order. One-off events render their date.
func (s Schedule) Summary() string {
	if s.date != nil && len(s.weekdays) == 0 {
		return s.date.Format("2 Jan 2006")
	}
	switch {
	case len(s.weekdays) == 7:
		return "Every day"
	case len(s.weekdays) == 5 && !s.Contains(Saturday) && !s.Contains(Sunday):
		return "Weekdays"
	case len(s.weekdays) == 2 && s.Contains(Saturday) && s.Contains(Sunday):
		return "Weekend"
	}
	names := make([]string, 0, len(s.weekdays))
	for _, w := range s.Weekdays() {
		names = append(names, w.ShortName())
	}
	return strings.Join(names, ", ")
}

// scheduleJSON is the persisted wire form of a schedule. It must round-trip
// the value exactly; the storage layer treats it as an opaque blob.
type scheduleJSON struct {
	Weekdays []int      `json:"weekdays"`
	Date     *time.Time `json:"date,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s Schedule) MarshalJSON() ([]byte, error) {
	wire := scheduleJSON{Weekdays: make([]int, 0, len(s.weekdays)), Date: s.date}
	for _, w := range s.Weekdays() {
		wire.Weekdays = append(wire.Weekdays, int(w))
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var wire scheduleJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.weekdays = make(map[Weekday]bool, len(wire.Weekdays))
	for _, raw := range wire.Weekdays {
		w := Weekday(raw)
		if w.IsValid() {
			s.weekdays[w] = true
		}
	}
	s.date = nil
	if wire.Date != nil {
		d := NormalizeDate(*wire.Date)
		s.date = &d
	}
	return nil
}
