package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// ActivitySeparator separates activities in free-text input.
const ActivitySeparator = ","

// SplitActivities splits comma-separated input into trimmed, non-empty
// activities, preserving order. Duplicates are kept.
// Example: " Running, ,Coffee " -> ["Running", "Coffee"]
func SplitActivities(input string) []string {
	activities := []string{}
	for _, part := range strings.Split(input, ActivitySeparator) {
		if a := strings.TrimSpace(part); a != "" {
			activities = append(activities, a)
		}
	}
	return activities
}

// JoinActivities is the inverse of SplitActivities for display and editing.
func JoinActivities(activities []string) string {
	return strings.Join(activities, ActivitySeparator+" ")
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseMood accepts a number 1-5 or a mood label (case-insensitive).
// Valid inputs: "4", "good", "Great"
func ParseMood(input string) (int, error) {
	s := strings.TrimSpace(input)
	if n, err := strconv.Atoi(s); err == nil {
		if n < MinMood || n > MaxMood {
			return 0, fmt.Errorf("invalid mood: %d is outside %d-%d", n, MinMood, MaxMood)
		}
		return n, nil
	}
	for i, label := range moodLabels {
		if strings.EqualFold(s, label) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("invalid mood: expected 1-5 or one of %s, got %q",
		strings.ToLower(strings.Join(moodLabels[:], ", ")), input)
}
