package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleEntries(moods ...int) []Entry {
	entries := make([]Entry, len(moods))
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, m := range moods {
		entries[i] = Entry{
			ID:         string(rune('a' + i)),
			Mood:       m,
			Activities: []string{},
			Content:    "entry",
			Date:       base.Add(time.Duration(i) * time.Hour),
		}
	}
	return entries
}

func TestFeed_ApplyReplacesWholesale(t *testing.T) {
	var f Feed

	gen := f.Begin()
	assert.True(t, f.Loading())
	assert.True(t, f.Apply(gen, sampleEntries(5, 3, 1)))
	assert.Equal(t, 3, f.Len())
	assert.True(t, f.Loaded())
	assert.False(t, f.Loading())

	gen = f.Begin()
	assert.True(t, f.Apply(gen, sampleEntries(2)))
	assert.Equal(t, 1, f.Len(), "no merge with the previous list")
	assert.Equal(t, 2, f.Entries()[0].Mood)
}

func TestFeed_PreservesServerOrder(t *testing.T) {
	var f Feed
	entries := sampleEntries(1, 5, 3)
	entries[0].Date, entries[2].Date = entries[2].Date, entries[0].Date

	f.Apply(f.Begin(), entries)

	got := f.Entries()
	for i := range entries {
		assert.Equal(t, entries[i].ID, got[i].ID)
	}
}

func TestFeed_FailKeepsPreviousList(t *testing.T) {
	var f Feed
	f.Apply(f.Begin(), sampleEntries(4, 4, 2))

	gen := f.Begin()
	assert.True(t, f.Fail(gen, "network unreachable"))

	assert.Equal(t, 3, f.Len(), "stale-but-available")
	assert.False(t, f.Loading())
	assert.Equal(t, Notice{Kind: NoticeError, Text: "network unreachable"}, f.Notice())

	f.Apply(f.Begin(), sampleEntries(1))
	assert.True(t, f.Notice().Empty(), "successful refresh clears the error")
}

func TestFeed_FailFallbackMessage(t *testing.T) {
	var f Feed
	f.Fail(f.Begin(), "")
	assert.Equal(t, RefreshFailedNotice, f.Notice().Text)
}

func TestFeed_StaleGenerationsDropped(t *testing.T) {
	var f Feed

	first := f.Begin()
	second := f.Begin()

	assert.True(t, f.Apply(second, sampleEntries(5)))
	assert.False(t, f.Apply(first, sampleEntries(1, 1, 1)), "older response must not overwrite newer data")
	assert.False(t, f.Fail(first, "late failure"))

	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Notice().Empty())
	assert.False(t, f.Loading())
}

func TestFeed_EntriesReturnsCopy(t *testing.T) {
	var f Feed
	f.Apply(f.Begin(), sampleEntries(3))

	got := f.Entries()
	got[0].Mood = 1

	assert.Equal(t, 3, f.Entries()[0].Mood)
}

func TestFeed_DismissNotice(t *testing.T) {
	var f Feed
	f.Fail(f.Begin(), "x")
	f.DismissNotice()
	assert.True(t, f.Notice().Empty())
}
