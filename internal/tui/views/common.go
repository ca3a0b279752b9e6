package views

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/mood/internal/journal"
	"github.com/xolan/mood/internal/stats"
	"github.com/xolan/mood/internal/tui/ui"
)

// viewSeq numbers view instances so results addressed to a torn-down view
// can be recognized and dropped.
var viewSeq atomic.Uint64

// lifetime is the cancellation scope of one view instance.
type lifetime struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
}

func newLifetime() lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return lifetime{id: viewSeq.Add(1), ctx: ctx, cancel: cancel}
}

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width int       // Available width for rendering
	Now   time.Time // Reference time for relative dates
}

// RenderEntryList renders entries in the order given, one block per entry:
// a header line (mood, date, activity pills) followed by the content.
func RenderEntryList(entries []journal.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}

		header := []string{
			RenderMood(e.Mood, styles),
			styles.EntryDate.Render(FormatRelative(e.Date, opts.Now)),
		}
		if pills := RenderPills(e.Activities, styles); pills != "" {
			header = append(header, pills)
		}
		b.WriteString(strings.Join(header, "  "))
		b.WriteString("\n")

		content := strings.TrimSpace(e.Content)
		b.WriteString(styles.EntryContent.Width(max(20, width-4)).Render(content))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderMood renders a mood as face and label in the mood's color.
func RenderMood(mood int, styles ui.Styles) string {
	label := journal.MoodLabel(mood)
	if label == "" {
		return styles.Muted.Render(fmt.Sprintf("mood %d", mood))
	}
	return styles.Mood(mood).Render(journal.MoodFace(mood) + " " + label)
}

// RenderPills renders activities as pills. Blank activities are skipped.
func RenderPills(activities []string, styles ui.Styles) string {
	var pills []string
	for _, a := range activities {
		if a = strings.TrimSpace(a); a != "" {
			pills = append(pills, styles.Pill.Render(a))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(pills, " ")...)
}

// RenderStatsLine summarizes entries as "N entries · avg mood X.X".
// The average is omitted when there are no entries.
func RenderStatsLine(entries []journal.Entry, styles ui.Styles) string {
	s := stats.CalculateStatistics(entries)

	parts := []string{
		styles.StatValue.Render(fmt.Sprintf("%d", s.EntryCount)) + " " +
			styles.StatLabel.Render(pluralize("entry", s.EntryCount)),
	}
	if avg, ok := s.FormatAverage(); ok {
		mean, _ := s.AverageMood()
		rounded := journal.ClampMood(int(mean + 0.5))
		parts = append(parts, styles.StatLabel.Render("avg mood ")+
			styles.Mood(rounded).Render(avg+" "+journal.MoodFace(rounded)))
	}
	return strings.Join(parts, styles.Muted.Render(" · "))
}

// FormatRelative formats t relative to now: "just now", "5m ago",
// "3h ago", "yesterday 18:04", a weekday within the last week, and a
// plain date beyond that.
func FormatRelative(t, now time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	if now.IsZero() {
		now = time.Now()
	}
	t = t.In(now.Location())

	d := now.Sub(t)
	switch {
	case d < 0:
		return t.Format("Jan 2 15:04")
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	today := startOfDay(now)
	day := startOfDay(t)
	switch {
	case day.Equal(today):
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case day.Equal(today.AddDate(0, 0, -1)):
		return "yesterday " + t.Format("15:04")
	case day.After(today.AddDate(0, 0, -7)):
		return t.Format("Mon 15:04")
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2, 2006")
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func joinWith(items []string, sep string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
