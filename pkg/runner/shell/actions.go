package shell

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"tableflip.dev/moodjournal/pkg/entry"
	"tableflip.dev/moodjournal/pkg/mood"
	"tableflip.dev/moodjournal/pkg/stats"
	"tableflip.dev/moodjournal/pkg/timeutil"
)

func (s *Shell) add(ctx context.Context) error {
	feeling, err := s.Prompt.Ask("How do you feel right now? ")
	if err != nil {
		return err
	}
	start := s.now()
	m := mood.Classify(feeling)
	s.Print.Message("Detected Mood: %s", m)
	s.Print.Message("Suggestion: %s", m.Suggestion())

	rawTags, err := s.Prompt.Ask("Add optional tags (space separated): ")
	if err != nil {
		return err
	}
	e := entry.New(start, m, entry.ParseTags(rawTags))
	s.Journal.Add(e)

	err = s.retry(ctx, "After suggestion, how do you feel now (feedback)? ", func(note string) error {
		if err := e.SetFeedback(note, s.now()); err != nil {
			if errors.Is(err, entry.ErrEmptyFeedback) {
				return rejection("Feedback required!")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Print.Success("Entry added. Duration: %s", timeutil.PhraseMinutes(e.DurationMinutes()))
	return nil
}

func (s *Shell) viewAll() {
	s.Print.Entries("No journal entries yet.", s.Journal.Entries()...)
}

func (s *Shell) statistics() {
	all := s.Journal.Entries()
	days, err := stats.PerDay(all)
	if errors.Is(err, stats.ErrNothingToAnalyze) {
		s.Print.None("No entries to analyze.")
		return
	}
	overall, _ := stats.Overall(all)
	s.Print.Stats(days, overall)
}

func (s *Shell) filter() error {
	s.Print.Moods()
	raw, err := s.Prompt.Ask("Enter mood to filter: ")
	if err != nil {
		return err
	}
	m, err := mood.Parse(raw)
	if err != nil {
		s.Print.Warn("Invalid mood.")
		return nil
	}
	s.Print.NewLine()
	s.Print.Title("Entries with Mood: " + m.String())
	s.Print.Entries("No entries found.", s.Journal.FilterByMood(m)...)
	return nil
}

func (s *Shell) report() {
	s.Print.NewLine()
	s.Print.Title("Journal Report")
	s.viewAll()
	s.statistics()
}

func (s *Shell) delete() error {
	if s.Journal.Len() == 0 {
		s.Print.None("No entries to delete.")
		return nil
	}
	s.viewAll()
	raw, err := s.Prompt.Ask("\nEnter entry number to delete: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.Print.Warn("Invalid input.")
		return nil
	}
	if _, err := s.Journal.At(n); err != nil {
		s.Print.Warn("Invalid number.")
		return nil
	}
	conf, err := s.Prompt.Ask("Confirm delete? (Y/N): ")
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(conf)) != "y" {
		s.Print.Message("Cancelled.")
		return nil
	}
	if _, err := s.Journal.DeleteAt(n); err != nil {
		s.Print.Warn("Invalid number.")
		return nil
	}
	s.Print.Success("Deleted.")
	return nil
}

// save reports whether the journal was written. A failed save keeps the
// session open so nothing is lost.
func (s *Shell) save() bool {
	if err := s.Journal.Save(s.Files, s.File); err != nil {
		slog.Error("save failed", "file", s.File, "err", err)
		s.Print.Warn("Could not save the journal: %v", err)
		s.Print.Warn("Your entries are still in memory; fix the problem and choose Save again.")
		return false
	}
	s.Print.Success("All data saved successfully. Goodbye!")
	return true
}
