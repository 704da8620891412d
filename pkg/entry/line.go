package entry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/moodjournal/pkg/mood"
)

// ErrMalformed is wrapped by every UnmarshalLine failure.
var ErrMalformed = errors.New("entry: malformed record")

const (
	fieldSeparator = ';'
	tagSeparator   = ','
	fieldCount     = 5
)

var noteReplacer = strings.NewReplacer(
	string(fieldSeparator), string(tagSeparator),
	"\r", " ",
	"\n", " ",
)

// sanitizeNote makes note safe to store as a single field.
func sanitizeNote(note string) string {
	return noteReplacer.Replace(note)
}

// MarshalLine renders the plain (not yet obfuscated) record:
//
//	startMillis;endMillis|0;MOOD;note;tag,tag
//
// ';' in the note is written as ','.
func (e *Entry) MarshalLine() string {
	note := sanitizeNote(e.Note)
	return strings.Join([]string{
		strconv.FormatInt(toMillis(e.Start), 10),
		strconv.FormatInt(toMillis(e.End), 10),
		e.Mood.Name(),
		note,
		strings.Join(e.Tags, string(tagSeparator)),
	}, string(fieldSeparator))
}

// UnmarshalLine parses a record written by MarshalLine.
func UnmarshalLine(line string) (*Entry, error) {
	parts := strings.SplitN(line, string(fieldSeparator), fieldCount)
	if len(parts) < fieldCount {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, fieldCount, len(parts))
	}
	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrMalformed, err)
	}
	if start == 0 {
		return nil, fmt.Errorf("%w: missing start time", ErrMalformed)
	}
	end, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrMalformed, err)
	}
	m, err := mood.Parse(parts[2])
	if err != nil || parts[2] != m.Name() {
		return nil, fmt.Errorf("%w: mood %q", ErrMalformed, parts[2])
	}

	e := &Entry{
		Start: fromMillis(start),
		End:   fromMillis(end),
		Mood:  m,
		Note:  parts[3],
		Tags:  []string{},
	}
	if parts[4] != "" {
		e.Tags = strings.Split(parts[4], string(tagSeparator))
	}
	e.recompute()
	return e, nil
}
