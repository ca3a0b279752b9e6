// Package journal holds the client-side journal model: persisted entries,
// the unsaved draft, the entry form state machine and the entry feed.
package journal

import (
	"encoding/json"
	"time"
)

// Mood bounds and the neutral default.
const (
	MinMood     = 1
	MaxMood     = 5
	DefaultMood = 3
)

var moodLabels = [...]string{"Awful", "Bad", "Okay", "Good", "Great"}

var moodFaces = [...]string{"😞", "🙁", "😐", "🙂", "😄"}

// MoodLabel returns the word for mood, or "" when out of range.
func MoodLabel(mood int) string {
	if mood < MinMood || mood > MaxMood {
		return ""
	}
	return moodLabels[mood-1]
}

// MoodFace returns an emoji for mood, or "" when out of range.
func MoodFace(mood int) string {
	if mood < MinMood || mood > MaxMood {
		return ""
	}
	return moodFaces[mood-1]
}

// ClampMood forces mood into [MinMood, MaxMood].
func ClampMood(mood int) int {
	if mood < MinMood {
		return MinMood
	}
	if mood > MaxMood {
		return MaxMood
	}
	return mood
}

// Entry is a journal entry as persisted by the server. Entries are never
// modified by the client.
type Entry struct {
	ID         string    `json:"id"`
	Mood       int       `json:"mood"`
	Activities []string  `json:"activities"`
	Content    string    `json:"content"`
	Date       time.Time `json:"date"`
}

// UnmarshalJSON also accepts the "_id" and "createdAt" field names used by
// document-store backends.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	var raw struct {
		plain
		MongoID   string    `json:"_id"`
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Entry(raw.plain)
	if e.ID == "" {
		e.ID = raw.MongoID
	}
	if e.Date.IsZero() {
		e.Date = raw.CreatedAt
	}
	if e.Activities == nil {
		e.Activities = []string{}
	}
	return nil
}

// NewEntry is the create request sent to the server.
type NewEntry struct {
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
	Content    string   `json:"content"`
}

// Validate checks the request before it is sent. It applies the same rules
// as Draft.Validate.
func (e NewEntry) Validate() error {
	return validate(e.Mood, e.Content)
}

func validate(mood int, content string) error {
	if IsBlank(content) {
		return &ValidationError{Field: "content", Message: EmptyContentMessage}
	}
	if mood < MinMood || mood > MaxMood {
		return &ValidationError{Field: "mood", Message: MoodRangeMessage}
	}
	return nil
}

// Draft is the unsaved, in-progress entry.
type Draft struct {
	Mood           int
	ActivitiesText string
	Content        string
}

// NewDraft returns a draft with default values.
func NewDraft() Draft {
	return Draft{Mood: DefaultMood}
}

// IsZero reports whether the draft holds only default values.
func (d Draft) IsZero() bool {
	return d == NewDraft()
}

// Validate checks the draft can be submitted.
func (d Draft) Validate() error {
	return validate(d.Mood, d.Content)
}

// Request builds the create request. Content is sent as typed; activities
// are split and trimmed.
func (d Draft) Request() NewEntry {
	return NewEntry{
		Mood:       d.Mood,
		Activities: SplitActivities(d.ActivitiesText),
		Content:    d.Content,
	}
}
