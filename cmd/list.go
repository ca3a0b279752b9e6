package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/stats"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your entries",
	Long: `List your journal entries in the order the API returns them.

Examples:
  mood list                 All entries
  mood list -n 5            The first five entries
  mood list --json          Entries as JSON`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")
		listEntries(commandContext(cmd), limit, asJSON)
	},
}

func init() {
	listCmd.Flags().IntP("limit", "n", 0, "Show at most this many entries (0 = all)")
	listCmd.Flags().Bool("json", false, "Print entries as JSON")
}

// listEntries fetches and prints the feed
func listEntries(ctx context.Context, limit int, asJSON bool) {
	services := loadServices()
	if services == nil {
		return
	}
	if !requireLogin(services) {
		return
	}

	entries, err := services.Journal.List(ctx)
	if err != nil {
		failRequest("Failed to load entries", err, services.Auth.Status().APIURL)
		return
	}

	summary := stats.CalculateStatistics(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if asJSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			fail("Failed to encode entries", err, "")
		}
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries yet")
		_, _ = fmt.Fprintln(deps.Stdout, `Write your first one with: mood write "How was your day?" --mood 4`)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%d %s:\n", len(entries), pluralize("entry", len(entries)))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	// Calculate width for right-aligned indices
	maxIndexWidth := len(fmt.Sprintf("%d", len(entries)))

	for i, e := range entries {
		date := "unknown date"
		if !e.Date.IsZero() {
			date = e.Date.Local().Format("Mon Jan 2 15:04")
		}
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s  %s%s\n",
			maxIndexWidth, i+1, date, formatMood(e.Mood), formatActivities(e.Activities))
		for _, line := range strings.Split(strings.TrimSpace(e.Content), "\n") {
			_, _ = fmt.Fprintf(deps.Stdout, "%*s %s\n", maxIndexWidth+2, "", line)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	if avg, ok := summary.FormatAverage(); ok {
		_, _ = fmt.Fprintf(deps.Stdout, "Total: %d %s, average mood %s\n",
			summary.EntryCount, pluralize("entry", summary.EntryCount), avg)
	}
}
