// Package mood defines the closed set of moods and the keyword classifier that
// maps free text onto them.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is one of a fixed set of moods.
type Kind int

const (
	Happy Kind = iota
	Sad
	Angry
	Tired
	Stressed
	Hungry
	Calm
	Confused
	Neutral
)

// ErrUnknown is returned when a mood name does not match any Kind.
var ErrUnknown = errors.New("mood: unknown mood")

type meta struct {
	name       string
	keywords   []string
	suggestion string
}

const defaultSuggestion = "Stay mindful and keep expressing your thoughts."

// table is indexed by Kind; its length is checked against All() in tests.
var table = [...]meta{
	Happy: {
		name:       "HAPPY",
		keywords:   []string{"happy", "excited", "joyful"},
		suggestion: "Share your joy with others.",
	},
	Sad: {
		name:       "SAD",
		keywords:   []string{"sad", "lonely", "upset"},
		suggestion: "Talk to someone you trust.",
	},
	Angry: {
		name:       "ANGRY",
		keywords:   []string{"angry", "frustrated", "mad"},
		suggestion: "Take deep breaths and calm yourself.",
	},
	Tired: {
		name:       "TIRED",
		keywords:   []string{"tired", "exhausted", "sleepy"},
		suggestion: "Rest or take a nap.",
	},
	Stressed: {
		name:       "STRESSED",
		keywords:   []string{"stressed", "worried", "anxious"},
		suggestion: "Pause and focus on one task.",
	},
	Hungry: {
		name:       "HUNGRY",
		keywords:   []string{"hungry", "starving"},
		suggestion: "Eat something healthy.",
	},
	Calm: {
		name:       "CALM",
		keywords:   []string{"calm", "relaxed"},
		suggestion: "Enjoy the stillness.",
	},
	Confused: {
		name:       "CONFUSED",
		keywords:   []string{"confused", "uncertain"},
		suggestion: "Break problem into smaller parts.",
	},
	Neutral: {
		name:       "NEUTRAL",
		suggestion: defaultSuggestion,
	},
}

// All returns every Kind in classification priority order.
func All() []Kind {
	return []Kind{Happy, Sad, Angry, Tired, Stressed, Hungry, Calm, Confused, Neutral}
}

func (k Kind) valid() bool {
	return k >= Happy && k <= Neutral
}

// Name is the persisted, upper case form, e.g. "HAPPY".
func (k Kind) Name() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return table[k].name
}

// String renders the display form, e.g. "Happy".
func (k Kind) String() string {
	if !k.valid() {
		return k.Name()
	}
	n := table[k].name
	return n[:1] + strings.ToLower(n[1:])
}

// Suggestion returns the advice shown after a mood is detected. Unknown kinds
// get the same advice as Neutral.
func (k Kind) Suggestion() string {
	if !k.valid() {
		return defaultSuggestion
	}
	return table[k].suggestion
}

// Keywords returns the words that make Classify pick k.
func (k Kind) Keywords() []string {
	if !k.valid() {
		return nil
	}
	return append([]string(nil), table[k].keywords...)
}

// Parse converts a mood name in any case ("happy", "Happy", "HAPPY").
func Parse(raw string) (Kind, error) {
	want := strings.ToUpper(strings.TrimSpace(raw))
	for _, k := range All() {
		if table[k].name == want {
			return k, nil
		}
	}
	return Neutral, fmt.Errorf("%w %q", ErrUnknown, raw)
}

// Classify picks the first mood, in All() order, with a keyword contained in
// text. Matching is case-insensitive; no match yields Neutral.
func Classify(text string) Kind {
	lower := strings.ToLower(text)
	for _, k := range All() {
		for _, kw := range table[k].keywords {
			if strings.Contains(lower, kw) {
				return k
			}
		}
	}
	return Neutral
}

// Suggestion is shorthand for k.Suggestion().
func Suggestion(k Kind) string {
	return k.Suggestion()
}
