// Package shell runs the interactive, menu driven journal session.
package shell

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/moodjournal/pkg/printers"
	"tableflip.dev/moodjournal/pkg/prompt"
	"tableflip.dev/moodjournal/pkg/store"
)

// Choice is a numbered menu option.
type Choice int

const (
	AddEntry Choice = iota + 1
	ViewAll
	Statistics
	FilterByMood
	Report
	DeleteEntry
	SaveAndExit
)

var menu = []struct {
	choice Choice
	label  string
}{
	{AddEntry, "Add entry (Mood & Tags)"},
	{ViewAll, "View all entries"},
	{Statistics, "Mood statistics (daily & overall)"},
	{FilterByMood, "Filter entries by mood"},
	{Report, "Generate full report"},
	{DeleteEntry, "Delete specific entry"},
	{SaveAndExit, "Save and exit"},
}

// Shell drives one user's session over an already loaded journal. Nothing is
// written to disk until SaveAndExit.
type Shell struct {
	Journal *store.Journal
	Files   *store.Files
	File    string
	Prompt  prompt.Prompter
	Print   *printers.PrettyPrint
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Shell) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Do collects any pending feedback and then serves the menu until the journal
// is saved.
func (s *Shell) Do(ctx context.Context) error {
	if err := s.collectPending(ctx); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.showMenu()
		raw, err := s.Prompt.Ask("Choose an option: ")
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			choice = -1
		}
		done, err := s.dispatch(ctx, Choice(choice))
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Shell) showMenu() {
	s.Print.NewLine()
	s.Print.Title("Mood Journal")
	for _, item := range menu {
		s.Print.Message("%d. %s", item.choice, item.label)
	}
}

func (s *Shell) dispatch(ctx context.Context, c Choice) (bool, error) {
	switch c {
	case AddEntry:
		return false, s.add(ctx)
	case ViewAll:
		s.viewAll()
	case Statistics:
		s.statistics()
	case FilterByMood:
		return false, s.filter()
	case Report:
		s.report()
	case DeleteEntry:
		return false, s.delete()
	case SaveAndExit:
		return s.save(), nil
	default:
		s.Print.Warn("Invalid choice.")
	}
	return false, nil
}

// retry asks label until accept returns nil, showing each rejection.
func (s *Shell) retry(ctx context.Context, label string, accept func(string) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, err := s.Prompt.Ask(label)
		if err != nil {
			return err
		}
		err = accept(strings.TrimSpace(raw))
		if err == nil {
			return nil
		}
		var r rejection
		if !errors.As(err, &r) {
			return err
		}
		s.Print.Warn("%s", string(r))
	}
}

// rejection is an answer problem shown to the user before asking again.
type rejection string

func (r rejection) Error() string {
	return string(r)
}
