// Package stats computes mood frequencies per day and across a journal.
package stats

import (
	"errors"
	"math"
	"sort"

	"tableflip.dev/moodjournal/pkg/entry"
	"tableflip.dev/moodjournal/pkg/mood"
)

// ErrNothingToAnalyze is returned when there are no entries.
var ErrNothingToAnalyze = errors.New("stats: no entries to analyze")

// MoodCount is the frequency of one mood within a group of entries.
type MoodCount struct {
	Mood    mood.Kind
	Count   int
	Percent float64
}

// Summary describes a group of entries. Counts are ordered by the first
// appearance of each mood in the group, and MostCommon is the mood with the
// highest count, the earliest one winning ties.
type Summary struct {
	Total      int
	Counts     []MoodCount
	MostCommon mood.Kind
}

// Day is the Summary of one calendar day.
type Day struct {
	Day string
	Summary
}

// Overall summarizes every entry, ignoring days.
func Overall(entries []*entry.Entry) (Summary, error) {
	if len(entries) == 0 {
		return Summary{}, ErrNothingToAnalyze
	}
	return summarize(entries), nil
}

// PerDay groups entries by the day they started, ascending by day.
func PerDay(entries []*entry.Entry) ([]Day, error) {
	if len(entries) == 0 {
		return nil, ErrNothingToAnalyze
	}
	groups := make(map[string][]*entry.Entry)
	for _, e := range entries {
		day := e.Day()
		groups[day] = append(groups[day], e)
	}
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]Day, 0, len(days))
	for _, day := range days {
		out = append(out, Day{Day: day, Summary: summarize(groups[day])})
	}
	return out, nil
}

func summarize(entries []*entry.Entry) Summary {
	index := make(map[mood.Kind]int)
	var counts []MoodCount
	for _, e := range entries {
		i, ok := index[e.Mood]
		if !ok {
			i = len(counts)
			index[e.Mood] = i
			counts = append(counts, MoodCount{Mood: e.Mood})
		}
		counts[i].Count++
	}

	s := Summary{Total: len(entries), Counts: counts}
	best := 0
	for i := range counts {
		counts[i].Percent = percent(counts[i].Count, s.Total)
		if counts[i].Count > best {
			best = counts[i].Count
			s.MostCommon = counts[i].Mood
		}
	}
	return s
}

// percent is count/total*100 rounded to one decimal place.
func percent(count, total int) float64 {
	return math.Round(float64(count)*1000/float64(total)) / 10
}
