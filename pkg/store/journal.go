// Package store persists journals and the user directory as flat files.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/moodjournal/pkg/cipher"
	"tableflip.dev/moodjournal/pkg/entry"
	"tableflip.dev/moodjournal/pkg/mood"
)

var (
	// ErrInvalidIndex is returned for a position outside the journal.
	ErrInvalidIndex = errors.New("store: invalid entry number")
	// ErrCorruptJournal is returned by Load when any record can not be read.
	// The journal is left empty in that case.
	ErrCorruptJournal = errors.New("store: journal file is corrupt")
)

// Journal is the ordered, in-memory list of one user's entries. Order is
// append order and is never re-sorted.
type Journal struct {
	entries []*entry.Entry
}

// Len is the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns the entries in store order. The slice is a copy; the
// entries are shared.
func (j *Journal) Entries() []*entry.Entry {
	out := make([]*entry.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// At returns the entry at the 1-based position n.
func (j *Journal) At(n int) (*entry.Entry, error) {
	if n < 1 || n > len(j.entries) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}
	return j.entries[n-1], nil
}

// Add appends e.
func (j *Journal) Add(e *entry.Entry) {
	j.entries = append(j.entries, e)
}

// DeleteAt removes the entry at the 1-based position n and returns it.
func (j *Journal) DeleteAt(n int) (*entry.Entry, error) {
	e, err := j.At(n)
	if err != nil {
		return nil, err
	}
	j.entries = append(j.entries[:n-1], j.entries[n:]...)
	return e, nil
}

// FilterByMood returns the entries with mood m, in store order.
func (j *Journal) FilterByMood(m mood.Kind) []*entry.Entry {
	var out []*entry.Entry
	for _, e := range j.entries {
		if e.Mood == m {
			out = append(out, e)
		}
	}
	return out
}

// PendingFeedback returns the entries still waiting for feedback, in store order.
func (j *Journal) PendingFeedback() []*entry.Entry {
	var out []*entry.Entry
	for _, e := range j.entries {
		if e.NeedsFeedback() {
			out = append(out, e)
		}
	}
	return out
}

// Save writes a full snapshot of the journal to name, replacing whatever was
// there.
func (j *Journal) Save(f *Files, name string) error {
	lines := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		lines = append(lines, cipher.Encode(e.MarshalLine()))
	}
	if err := f.WriteLines(name, lines); err != nil {
		return err
	}
	slog.Debug("journal saved", "file", name, "entries", len(lines))
	return nil
}

// Load replaces the journal with the contents of name. A missing file gives an
// empty journal. If any line fails to decode the journal is cleared and
// ErrCorruptJournal is returned, rather than keeping a partial load.
func (j *Journal) Load(f *Files, name string) error {
	j.entries = nil
	lines, err := f.ReadLines(name)
	if err != nil {
		return err
	}
	loaded := make([]*entry.Entry, 0, len(lines))
	for i, line := range lines {
		plain, err := cipher.Decode(line)
		if err != nil {
			return corrupt(name, i+1, err)
		}
		e, err := entry.UnmarshalLine(plain)
		if err != nil {
			return corrupt(name, i+1, err)
		}
		loaded = append(loaded, e)
	}
	j.entries = loaded
	slog.Debug("journal loaded", "file", name, "entries", len(loaded))
	return nil
}

func corrupt(name string, line int, err error) error {
	slog.Warn("discarding journal", "file", name, "line", line, "err", err)
	return fmt.Errorf("%w: %s line %d: %v", ErrCorruptJournal, name, line, err)
}
