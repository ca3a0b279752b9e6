package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/journal"
)

var rootCmd = &cobra.Command{
	Use:   "mood",
	Short: "A mood journal for the terminal",
	Long: `mood is a client for a remote mood journal. Each entry records a mood
from 1 to 5, the activities of the day and a free-text note.

Usage:
  mood                                          Open the interactive journal
  mood login                                    Sign in and store the token
  mood register                                 Create an account and sign in
  mood logout                                   Forget the stored token
  mood status                                   Show whether you are signed in
  mood write "text" --mood 4 --activities "a, b"  Save an entry
  mood list                                     List your entries in API order
  mood stats                                    Summarize your moods and activities
  mood config                                   Show the effective configuration

Moods: 1 awful, 2 bad, 3 okay, 4 good, 5 great`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"mood version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command. ctx is handed to every API request.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// commandContext returns the context of a running command, falling back to
// Background when the command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// formatMood formats a mood as "🙂 Good (4)"
func formatMood(mood int) string {
	label := journal.MoodLabel(mood)
	if label == "" {
		return fmt.Sprintf("mood %d", mood)
	}
	return fmt.Sprintf("%s %s (%d)", journal.MoodFace(mood), label, mood)
}

// formatActivities returns " [a, b]" or "" when there are none
func formatActivities(activities []string) string {
	if len(activities) == 0 {
		return ""
	}
	return fmt.Sprintf(" [%s]", strings.Join(activities, ", "))
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
