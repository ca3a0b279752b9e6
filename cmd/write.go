package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/journal"
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:     "write [text]",
	Aliases: []string{"w"},
	Short:   "Save a journal entry",
	Long: `Save a journal entry. The entry text is taken from the arguments, or read
from stdin when there are none.

Mood is a number from 1 to 5 or one of: awful, bad, okay, good, great.
Activities are comma-separated; blank items are dropped.

Examples:
  mood write "Long walk by the river" --mood 4 --activities "Walking, Friends"
  mood write --mood great < today.txt`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mood, _ := cmd.Flags().GetString("mood")
		activities, _ := cmd.Flags().GetString("activities")

		var content string
		if len(args) > 0 {
			content = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(deps.Stdin)
			if err != nil {
				fail("Failed to read the entry from stdin", err, "")
				return
			}
			content = strings.TrimRight(string(data), "\r\n")
		}

		writeEntry(commandContext(cmd), content, mood, activities)
	},
}

func init() {
	writeCmd.Flags().StringP("mood", "m", fmt.Sprint(journal.DefaultMood), "Mood from 1 (awful) to 5 (great)")
	writeCmd.Flags().StringP("activities", "a", "", "Comma-separated activities")
}

// writeEntry validates and saves one entry
func writeEntry(ctx context.Context, content, moodText, activities string) {
	services := loadServices()
	if services == nil {
		return
	}
	if !requireLogin(services) {
		return
	}

	mood, err := journal.ParseMood(moodText)
	if err != nil {
		fail(fmt.Sprintf("Invalid mood '%s'", moodText), err,
			"Use a number from 1 to 5 or one of: awful, bad, okay, good, great")
		return
	}

	draft := journal.Draft{Mood: mood, ActivitiesText: activities, Content: content}
	if err := draft.Validate(); err != nil {
		var vErr *journal.ValidationError
		if errors.As(err, &vErr) {
			fail(vErr.Message, nil, "Pass the entry text as arguments or pipe it on stdin")
			return
		}
		fail("Invalid entry", err, "")
		return
	}

	created, err := services.Journal.Create(ctx, draft.Request())
	if err != nil {
		failRequest(journal.SaveFailedMessage, err, services.Auth.Status().APIURL)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s: %s%s\n", journal.SavedMessage, formatMood(created.Mood), formatActivities(created.Activities))
}
