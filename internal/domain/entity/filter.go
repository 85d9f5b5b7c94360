// Package entity defines the core business entities for the domain layer.
package entity

// Filter narrows the visible board to a named subset of trackers. The last
// selected value is persisted per user across sessions; it is UI state, not
// part of the tracker model proper.
type Filter string

const (
	FilterAllTrackers         Filter = "allTrackers"
	FilterCompletedTrackers   Filter = "completedTrackers"
	FilterUncompletedTrackers Filter = "uncompletedTrackers"
	FilterTrackersForToday    Filter = "trackersForToday"
	FilterNone                Filter = "none"
)

// IsValid reports whether the filter is one of the known values.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAllTrackers, FilterCompletedTrackers, FilterUncompletedTrackers,
		FilterTrackersForToday, FilterNone:
		return true
	}
	return false
}
