// Package entry holds a single mood journal entry and its on-disk line format.
package entry

import (
	"errors"
	"math"
	"strings"
	"time"

	"tableflip.dev/moodjournal/pkg/mood"
)

// ErrEmptyFeedback is returned when feedback text is blank.
var ErrEmptyFeedback = errors.New("entry: feedback cannot be empty")

// ErrEndBeforeStart is returned when feedback would end before the entry started.
var ErrEndBeforeStart = errors.New("entry: end time is before start time")

// Entry is one mood observation and the feedback recorded after it.
//
// A zero End means no end time, and an empty Note means feedback is pending.
type Entry struct {
	Start time.Time
	End   time.Time
	Mood  mood.Kind
	Note  string
	Tags  []string

	durationMinutes int64
}

// New creates a pending entry starting at start. Start is truncated to the
// millisecond, the precision of the journal file.
func New(start time.Time, m mood.Kind, tags []string) *Entry {
	e := &Entry{
		Start: start.Truncate(time.Millisecond),
		Mood:  m,
		Tags:  append([]string(nil), tags...),
	}
	e.recompute()
	return e
}

// SetFeedback records the outcome note and end time and refreshes the duration.
func (e *Entry) SetFeedback(note string, end time.Time) error {
	note = sanitizeNote(strings.TrimSpace(note))
	if note == "" {
		return ErrEmptyFeedback
	}
	end = end.Truncate(time.Millisecond)
	if end.Before(e.Start) {
		return ErrEndBeforeStart
	}
	e.Note = note
	e.End = end
	e.recompute()
	return nil
}

// NeedsFeedback reports whether the entry is still pending.
func (e *Entry) NeedsFeedback() bool {
	return e.Note == ""
}

// HasEnd reports whether an end time was recorded.
func (e *Entry) HasEnd() bool {
	return !e.End.IsZero()
}

// DurationMinutes is the whole number of minutes between Start and End, or 0
// while End is unset.
func (e *Entry) DurationMinutes() int64 {
	return e.durationMinutes
}

func (e *Entry) recompute() {
	if !e.HasEnd() {
		e.durationMinutes = 0
		return
	}
	e.durationMinutes = int64(math.Floor(e.End.Sub(e.Start).Minutes()))
}

// Day is the calendar day bucket of the entry's start, in local time.
func (e *Entry) Day() string {
	return FormatDay(e.Start)
}

// Equal reports whether two entries carry the same data.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	if !e.Start.Equal(o.Start) || !e.End.Equal(o.End) {
		return false
	}
	if e.Mood != o.Mood || e.Note != o.Note || len(e.Tags) != len(o.Tags) {
		return false
	}
	for i := range e.Tags {
		if e.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return true
}
