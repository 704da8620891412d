// Package login runs the username and password exchange that opens a journal.
package login

import (
	"context"
	"log/slog"

	"tableflip.dev/moodjournal/pkg/printers"
	"tableflip.dev/moodjournal/pkg/prompt"
	"tableflip.dev/moodjournal/pkg/users"
)

// Login asks for a user name, then either creates the account or checks the
// password with a bounded number of attempts.
type Login struct {
	Users  *users.Directory
	Prompt prompt.Prompter
	Print  *printers.PrettyPrint
}

// Do returns the authenticated user name, or users.ErrLockedOut.
func (l *Login) Do(ctx context.Context) (string, error) {
	username, err := l.askName(ctx)
	if err != nil {
		return "", err
	}

	_, known, err := l.Users.Find(username)
	if err != nil {
		return "", err
	}
	if !known {
		return username, l.create(ctx, username)
	}

	attempt := users.NewAttempt()
	for !attempt.Done() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pw, err := l.Prompt.Secret("Enter password: ")
		if err != nil {
			return "", err
		}
		ok, err := l.Users.Verify(username, pw)
		if err != nil {
			return "", err
		}
		attempt = attempt.Next(ok)
		if !ok {
			l.Print.Warn("Incorrect password. Attempts left: %d", attempt.Left)
		}
	}
	slog.Debug("login finished", "user", username, "phase", attempt.Phase)

	if attempt.Phase == users.LockedOut {
		l.Print.Warn("Too many failed attempts. Exiting.")
		return "", users.ErrLockedOut
	}
	l.Print.Success("Login successful.")
	l.Print.NewLine()
	return username, nil
}

func (l *Login) askName(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		raw, err := l.Prompt.Ask("Enter username: ")
		if err != nil {
			return "", err
		}
		name, err := users.NormalizeName(raw)
		if err != nil {
			l.Print.Warn("Usernames must not contain ':', '/' or '\\'.")
			continue
		}
		return name, nil
	}
}

func (l *Login) create(ctx context.Context, username string) error {
	var pw string
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		pw, err = l.Prompt.Secret("New user! Set password: ")
		if err != nil {
			return err
		}
		if pw != "" {
			break
		}
		l.Print.Warn("Password cannot be empty.")
	}
	if err := l.Users.Create(username, pw); err != nil {
		return err
	}
	l.Print.Success("User created successfully.")
	l.Print.NewLine()
	return nil
}
