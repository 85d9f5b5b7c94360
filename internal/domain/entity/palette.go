// Package entity defines the core business entities for the domain layer.
package entity

// TrackerColors is the fixed palette trackers can be colored with.
// Configuration data, not domain logic; the creation flow rejects colors
// outside this list.
var TrackerColors = []string{
	"#FD4C49", "#FF881E", "#007BFA", "#6E44FE", "#33CF69", "#E66DD4",
	"#F9D4D4", "#34A7FE", "#46E69D", "#35347C", "#FF674D", "#FF99CC",
	"#F6C48B", "#7994F5", "#832CF1", "#AD56DA", "#8D72E3", "#2FD058",
}

// TrackerEmojis is the fixed emoji palette for trackers.
var TrackerEmojis = []string{
	"🙂", "😻", "🌺", "🐶", "❤️", "😱",
	"😇", "😡", "🥶", "🤔", "🙌", "🍔",
	"🥦", "🏓", "🥇", "🎸", "🏝", "😪",
}

// IsValidTrackerColor reports whether the color belongs to the palette.
func IsValidTrackerColor(color string) bool {
	for _, c := range TrackerColors {
		if c == color {
			return true
		}
	}
	return false
}

// IsValidTrackerEmoji reports whether the emoji belongs to the palette.
func IsValidTrackerEmoji(emoji string) bool {
	for _, e := range TrackerEmojis {
		if e == emoji {
			return true
		}
	}
	return false
}
