package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/journal"
	"github.com/xolan/mood/internal/stats"
)

// maxActivities is how many activities the breakdown lists
const maxActivities = 10

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize your moods and activities",
	Long: `Show aggregated statistics over all of your entries:
  - Number of entries and days written
  - Average mood
  - How often each mood was recorded
  - The most frequent activities with their average mood

Examples:
  mood stats`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runStats(commandContext(cmd))
	},
}

// runStats handles the stats command logic
func runStats(ctx context.Context) {
	services := loadServices()
	if services == nil {
		return
	}
	if !requireLogin(services) {
		return
	}

	result, err := services.Journal.Stats(ctx)
	if err != nil {
		failRequest("Failed to load entries", err, services.Auth.Status().APIURL)
		return
	}

	s := result.Statistics
	if s.EntryCount == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries yet")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Mood statistics")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:       %d\n", s.EntryCount)
	_, _ = fmt.Fprintf(deps.Stdout, "Days written:  %d\n", s.DaysWithEntries)
	if avg, ok := s.FormatAverage(); ok {
		mean, _ := s.AverageMood()
		_, _ = fmt.Fprintf(deps.Stdout, "Average mood:  %s %s\n", avg, journal.MoodFace(journal.ClampMood(int(mean+0.5))))
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Distribution:")
	for mood := journal.MaxMood; mood >= journal.MinMood; mood-- {
		count := result.Distribution[mood-1]
		_, _ = fmt.Fprintf(deps.Stdout, "  %s %-6s %-20s %d\n",
			journal.MoodFace(mood), journal.MoodLabel(mood), bar(count, s.EntryCount, 20), count)
	}

	if len(result.Activities) == 0 {
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "Activities:")
	activities := result.Activities
	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	for _, a := range activities {
		_, _ = fmt.Fprintf(deps.Stdout, "  %-20s %3d %-7s avg %s\n",
			a.Activity, a.EntryCount, pluralize("entry", a.EntryCount), stats.FormatMood(a.AverageMood()))
	}
	if hidden := len(result.Activities) - len(activities); hidden > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "  ... and %d more\n", hidden)
	}
}

// bar renders count out of total as a bar of at most width cells
func bar(count, total, width int) string {
	if total <= 0 || count <= 0 {
		return ""
	}
	n := count * width / total
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
