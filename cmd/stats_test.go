package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xolan/mood/internal/journal"
)

func TestRunStats_NotLoggedIn(t *testing.T) {
	e := setupCLI(t, "")

	runStats(t.Context())

	e.assertNotLoggedIn(t)
}

func TestRunStats(t *testing.T) {
	e := setupCLI(t, "")
	e.signIn(t)
	day := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	e.server.Seed(testEmail,
		journal.Entry{Mood: 5, Activities: []string{"Running", "Coffee"}, Content: "a", Date: day},
		journal.Entry{Mood: 3, Activities: []string{"running"}, Content: "b", Date: day.Add(time.Hour)},
		journal.Entry{Mood: 4, Content: "c", Date: day.Add(48 * time.Hour)},
	)

	runStats(t.Context())

	output := e.stdout.String()
	assert.Equal(t, -1, e.exitCode, e.stderr.String())
	assert.Contains(t, output, "Entries:       3")
	assert.Contains(t, output, "Days written:  2")
	assert.Contains(t, output, "Average mood:  4.0")
	assert.Contains(t, output, "Distribution:")
	assert.Contains(t, output, "Activities:")
	assert.Contains(t, output, "Running")
	assert.Contains(t, output, "2 entries avg 4.0")
	assert.Contains(t, output, "1 entry   avg 5.0")
}

func TestRunStats_Empty(t *testing.T) {
	e := setupCLI(t, "")
	e.signIn(t)

	runStats(t.Context())

	assert.Equal(t, "No entries yet\n", e.stdout.String())
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10, 20))
	assert.Equal(t, "", bar(3, 0, 20))
	assert.Equal(t, "█", bar(1, 100, 20))
	assert.Equal(t, "██████████", bar(5, 10, 20))
}
