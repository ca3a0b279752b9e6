package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xolan/mood/internal/journal"
)

// Statistics contains aggregated statistics for a set of entries
type Statistics struct {
	EntryCount      int
	MoodSum         int
	DaysWithEntries int
}

// ActivityBreakdown contains statistics for a single activity
type ActivityBreakdown struct {
	Activity   string
	EntryCount int
	MoodSum    int
}

// AverageMood returns the mean mood of entries mentioning the activity.
func (a ActivityBreakdown) AverageMood() float64 {
	return float64(a.MoodSum) / float64(a.EntryCount)
}

// CalculateStatistics computes statistics for entries. Entries are counted
// in full; the feed never holds a partial period.
func CalculateStatistics(entries []journal.Entry) Statistics {
	stats := Statistics{}

	if len(entries) == 0 {
		return stats
	}

	// Track which days have entries
	daysWithEntries := make(map[string]bool)

	for _, e := range entries {
		stats.EntryCount++
		stats.MoodSum += e.Mood

		if !e.Date.IsZero() {
			daysWithEntries[e.Date.Local().Format("2006-01-02")] = true
		}
	}

	stats.DaysWithEntries = len(daysWithEntries)
	return stats
}

// AverageMood returns the arithmetic mean mood. It reports false when there
// are no entries instead of dividing by zero.
func (s Statistics) AverageMood() (float64, bool) {
	if s.EntryCount == 0 {
		return 0, false
	}
	return float64(s.MoodSum) / float64(s.EntryCount), true
}

// FormatAverage returns the mean mood with one decimal place (e.g. "4.0"),
// or false when there are no entries.
func (s Statistics) FormatAverage() (string, bool) {
	avg, ok := s.AverageMood()
	if !ok {
		return "", false
	}
	return FormatMood(avg), true
}

// FormatMood formats a mood value with one decimal place.
func FormatMood(mood float64) string {
	return fmt.Sprintf("%.1f", mood)
}

// MoodDistribution counts entries per mood; index 0 holds mood 1.
// Out-of-range moods are ignored.
func MoodDistribution(entries []journal.Entry) [journal.MaxMood]int {
	var dist [journal.MaxMood]int
	for _, e := range entries {
		if e.Mood >= journal.MinMood && e.Mood <= journal.MaxMood {
			dist[e.Mood-1]++
		}
	}
	return dist
}

// CalculateActivityBreakdown groups entries by activity and returns the breakdown sorted by
// entry count, then name. Activities are matched case-insensitively; the first spelling seen
// is reported. An entry listing the same activity twice counts once for it.
func CalculateActivityBreakdown(entries []journal.Entry) []ActivityBreakdown {
	if len(entries) == 0 {
		return []ActivityBreakdown{}
	}

	// Group entries by activity
	activityMap := make(map[string]*ActivityBreakdown)
	var order []string

	for _, e := range entries {
		seen := make(map[string]bool)
		for _, a := range e.Activities {
			key := strings.ToLower(strings.TrimSpace(a))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			if _, exists := activityMap[key]; !exists {
				activityMap[key] = &ActivityBreakdown{Activity: strings.TrimSpace(a)}
				order = append(order, key)
			}
			activityMap[key].EntryCount++
			activityMap[key].MoodSum += e.Mood
		}
	}

	// Convert map to slice
	breakdowns := make([]ActivityBreakdown, 0, len(order))
	for _, key := range order {
		breakdowns = append(breakdowns, *activityMap[key])
	}

	sort.SliceStable(breakdowns, func(i, j int) bool {
		if breakdowns[i].EntryCount != breakdowns[j].EntryCount {
			return breakdowns[i].EntryCount > breakdowns[j].EntryCount
		}
		return strings.ToLower(breakdowns[i].Activity) < strings.ToLower(breakdowns[j].Activity)
	})

	return breakdowns
}
