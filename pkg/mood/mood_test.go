package mood

import (
	"errors"
	"testing"
)

func TestTableCoversAllKinds(t *testing.T) {
	if len(table) != len(All()) {
		t.Fatalf("table has %d rows, All() has %d kinds", len(table), len(All()))
	}
	for _, k := range All() {
		if table[k].name == "" {
			t.Errorf("kind %d has no name", int(k))
		}
		if table[k].suggestion == "" {
			t.Errorf("kind %s has no suggestion", k)
		}
		if k != Neutral && len(table[k].keywords) == 0 {
			t.Errorf("kind %s has no keywords", k)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"I am so happy today", Happy},
		{"I feel nothing special", Neutral},
		{"I AM SO HAPPY", Happy},
		{"Feeling Lonely tonight", Sad},
		{"really frustrated with traffic", Angry},
		{"exhausted after work", Tired},
		{"anxious about the exam", Stressed},
		{"starving", Hungry},
		{"relaxed by the sea", Calm},
		{"uncertain what to do", Confused},
		// happy is checked before sad.
		{"happy but also sad", Happy},
		// "mad" inside "made" still matches, as a plain substring check.
		{"I made dinner", Angry},
		{"", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuggestion(t *testing.T) {
	if got := Suggestion(Happy); got != "Share your joy with others." {
		t.Errorf("unexpected happy suggestion %q", got)
	}
	if got := Suggestion(Neutral); got != defaultSuggestion {
		t.Errorf("unexpected neutral suggestion %q", got)
	}
	if got := Kind(42).Suggestion(); got != defaultSuggestion {
		t.Errorf("unmapped kind should use default suggestion, got %q", got)
	}
}

func TestParse(t *testing.T) {
	for _, k := range All() {
		got, err := Parse(k.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("Parse(%q) = %s, want %s", k.String(), got, k)
		}
	}
	if _, err := Parse("  stressed "); err != nil {
		t.Errorf("expected trimmed lower case name to parse: %v", err)
	}
	if _, err := Parse("elated"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}

func TestNames(t *testing.T) {
	if Happy.Name() != "HAPPY" || Happy.String() != "Happy" {
		t.Errorf("unexpected forms %q %q", Happy.Name(), Happy.String())
	}
	if Kind(-1).Name() != "Kind(-1)" {
		t.Errorf("unexpected invalid name %q", Kind(-1).Name())
	}
}

func TestKeywordsIsACopy(t *testing.T) {
	kw := Happy.Keywords()
	kw[0] = "changed"
	if Happy.Keywords()[0] != "happy" {
		t.Fatalf("Keywords must not expose the table")
	}
	if Neutral.Keywords() != nil {
		t.Fatalf("Neutral has no keywords")
	}
}
