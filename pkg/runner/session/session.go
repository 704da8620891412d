// Package session opens a user's journal and runs the interactive shell on it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tableflip.dev/moodjournal/pkg/printers"
	"tableflip.dev/moodjournal/pkg/prompt"
	"tableflip.dev/moodjournal/pkg/runner/login"
	"tableflip.dev/moodjournal/pkg/runner/shell"
	"tableflip.dev/moodjournal/pkg/store"
	"tableflip.dev/moodjournal/pkg/users"
)

// Session logs a user in, loads their journal and hands it to the shell.
type Session struct {
	Config store.Config
	Prompt prompt.Prompter
	Print  *printers.PrettyPrint
	Now    func() time.Time
}

func (s *Session) Do(ctx context.Context) error {
	cfg := s.Config
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	files, err := store.Open(cfg)
	if err != nil {
		return err
	}

	l := login.Login{
		Users:  users.NewDirectory(files, cfg),
		Prompt: s.Prompt,
		Print:  s.Print,
	}
	username, err := l.Do(ctx)
	if err != nil {
		return err
	}

	name := store.JournalName(username)
	journal := &store.Journal{}
	if err := journal.Load(files, name); err != nil {
		if !errors.Is(err, store.ErrCorruptJournal) {
			return err
		}
		s.Print.Warn("Error loading journal; starting with an empty one.")
		s.Print.Warn("Saving will replace %s.", name)
	}
	slog.Debug("journal opened", "user", username, "entries", journal.Len())

	sh := shell.Shell{
		Journal: journal,
		Files:   files,
		File:    name,
		Prompt:  s.Prompt,
		Print:   s.Print,
		Now:     s.Now,
	}
	err = sh.Do(ctx)
	if errors.Is(err, prompt.ErrAborted) {
		s.Print.Warn("Input closed before saving; changes from this session were not written.")
	}
	return err
}
