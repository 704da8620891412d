package shell

import (
	"context"
	"errors"

	"tableflip.dev/moodjournal/pkg/entry"
)

// collectPending asks for the feedback and end time of every entry still
// waiting for them, before anything else can be added.
func (s *Shell) collectPending(ctx context.Context) error {
	if len(s.Journal.PendingFeedback()) == 0 {
		return nil
	}
	s.Print.NewLine()
	s.Print.Warn("You have pending feedback entries!")
	for i, e := range s.Journal.Entries() {
		if !e.NeedsFeedback() {
			continue
		}
		s.Print.Entry(i+1, e)
		if err := s.resolve(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) resolve(ctx context.Context, e *entry.Entry) error {
	var note string
	err := s.retry(ctx, "Please provide feedback for this entry: ", func(answer string) error {
		if answer == "" {
			return rejection("Feedback cannot be empty.")
		}
		note = answer
		return nil
	})
	if err != nil {
		return err
	}

	return s.retry(ctx, "Enter end time (yyyy-MM-dd HH:mm): ", func(answer string) error {
		end, err := entry.ParseMinute(answer)
		if err != nil {
			return rejection("Invalid. Enter again.")
		}
		if err := e.SetFeedback(note, end); err != nil {
			if errors.Is(err, entry.ErrEndBeforeStart) {
				return rejection("End time cannot be before the start time " + entry.FormatMinute(e.Start) + ".")
			}
			return err
		}
		return nil
	})
}
