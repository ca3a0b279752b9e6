package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/journal"
)

func newHTTPServer(t *testing.T, h http.Handler) string {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts.URL
}

func draftRequest(mood int, activities, content string) journal.NewEntry {
	return journal.Draft{Mood: mood, ActivitiesText: activities, Content: content}.Request()
}

func TestJournalService_Create(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")

	created, err := f.services.Journal.Create(t.Context(), draftRequest(4, "Running, Coffee", "Good day"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Running", "Coffee"}, created.Activities)

	stored := f.server.Entries("a@b.com")
	require.Len(t, stored, 1)
	assert.Equal(t, 4, stored[0].Mood)
	assert.Equal(t, []string{"Running", "Coffee"}, stored[0].Activities)
	assert.Equal(t, "Good day", stored[0].Content)

	entries, err := f.services.Journal.List(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
}

func TestJournalService_Create_Validation(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")

	tests := []struct {
		name  string
		req   journal.NewEntry
		field string
	}{
		{"empty content", journal.NewEntry{Mood: 3, Content: ""}, "content"},
		{"whitespace content", journal.NewEntry{Mood: 3, Content: " \n\t "}, "content"},
		{"mood too low", journal.NewEntry{Mood: 0, Content: "x"}, "mood"},
		{"mood too high", journal.NewEntry{Mood: 6, Content: "x"}, "mood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.services.Journal.Create(t.Context(), tt.req)

			var vErr *journal.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	assert.Equal(t, 0, f.server.Requests(http.MethodPost, api.PathJournals))
}

func TestJournalService_Create_NilActivities(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")

	_, err := f.services.Journal.Create(t.Context(), journal.NewEntry{Mood: 2, Content: "x"})
	require.NoError(t, err)

	stored := f.server.Entries("a@b.com")
	require.Len(t, stored, 1)
	assert.Equal(t, []string{}, stored[0].Activities)
}

func TestJournalService_Create_ServerError(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")
	f.server.Fail(http.MethodPost, api.PathJournals, http.StatusBadRequest, "Content too long")

	_, err := f.services.Journal.Create(t.Context(), journal.NewEntry{Mood: 3, Content: "x"})
	require.Error(t, err)
	assert.Equal(t, "Content too long", api.MessageOr(err, journal.SaveFailedMessage))
}

func TestJournalService_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.Journal.Create(t.Context(), journal.NewEntry{Mood: 3, Content: "x"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = f.services.Journal.List(t.Context())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Equal(t, 0, f.server.Requests(http.MethodGet, api.PathJournals))
}

func TestJournalService_List_ServerOrder(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f.server.Seed("a@b.com",
		journal.Entry{Mood: 1, Content: "first", Date: day},
		journal.Entry{Mood: 5, Content: "second", Date: day.Add(time.Hour)},
	)

	entries, err := f.services.Journal.List(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Content)
	assert.Equal(t, "first", entries[1].Content)
}

func TestJournalService_List_Error(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")
	f.server.Fail(http.MethodGet, api.PathJournals, http.StatusServiceUnavailable, "")

	_, err := f.services.Journal.List(t.Context())
	require.Error(t, err)
	assert.Equal(t, journal.RefreshFailedNotice, api.MessageOr(err, journal.RefreshFailedNotice))
}

func TestJournalService_Stats(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, "a@b.com")
	f.server.Seed("a@b.com",
		journal.Entry{Mood: 5, Activities: []string{"Running"}, Content: "a"},
		journal.Entry{Mood: 3, Activities: []string{"running", "Coffee"}, Content: "b"},
	)

	result, err := f.services.Journal.Stats(t.Context())
	require.NoError(t, err)

	avg, ok := result.Statistics.FormatAverage()
	assert.True(t, ok)
	assert.Equal(t, "4.0", avg)
	assert.Equal(t, 1, result.Distribution[4])
	assert.Equal(t, 1, result.Distribution[2])
	require.NotEmpty(t, result.Activities)
	assert.Equal(t, 2, result.Activities[0].EntryCount)
}

func TestSummarize_Empty(t *testing.T) {
	result := Summarize(nil)

	_, ok := result.Statistics.FormatAverage()
	assert.False(t, ok)
	assert.Empty(t, result.Activities)
}
