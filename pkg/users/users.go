// Package users stores user names with obfuscated passwords and tracks login
// attempts.
package users

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/moodjournal/pkg/cipher"
	"tableflip.dev/moodjournal/pkg/store"
)

// DefaultName is used when a blank user name is entered.
const DefaultName = "default_user"

const separator = ":"

var (
	// ErrInvalidUsername is returned for names that can not be stored.
	ErrInvalidUsername = errors.New("users: invalid username")
	// ErrUserExists is returned when creating an account for a known name.
	ErrUserExists = errors.New("users: user already exists")
)

// NormalizeName trims name, maps blank to DefaultName and rejects names the
// directory or the journal file name can not hold (':' and path separators).
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName, nil
	}
	if strings.ContainsAny(name, separator+`/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w %q: must not contain ':', '/' or '\\'", ErrInvalidUsername, name)
	}
	return name, nil
}

// Directory maps user names to passwords in a single flat file with one
// `username:obfuscated-password` line per user.
type Directory struct {
	Files *store.Files
	Name  string
}

// NewDirectory returns the directory stored as cfg.UsersFile() in files.
func NewDirectory(files *store.Files, cfg store.Config) *Directory {
	return &Directory{Files: files, Name: cfg.UsersFile()}
}

// Find returns the plain password of username. The file is read on every call.
func (d *Directory) Find(username string) (string, bool, error) {
	lines, err := d.Files.ReadLines(d.Name)
	if err != nil {
		return "", false, err
	}
	for _, line := range lines {
		name, encoded, ok := strings.Cut(line, separator)
		if !ok || strings.Contains(encoded, separator) || name != username {
			continue
		}
		pw, err := cipher.Decode(encoded)
		if err != nil {
			return "", false, fmt.Errorf("users: password for %q: %w", username, err)
		}
		return pw, true, nil
	}
	return "", false, nil
}

// Create appends a record for username. The caller checks that the name is new.
func (d *Directory) Create(username, password string) error {
	if _, err := NormalizeName(username); err != nil || strings.TrimSpace(username) != username || username == "" {
		return fmt.Errorf("%w %q", ErrInvalidUsername, username)
	}
	return d.Files.AppendLine(d.Name, username+separator+cipher.Encode(password))
}

// Verify reports whether attempt matches the stored password of username.
// Unknown users never verify.
func (d *Directory) Verify(username, attempt string) (bool, error) {
	pw, ok, err := d.Find(username)
	if err != nil || !ok {
		return false, err
	}
	return pw == attempt, nil
}

// Names lists the users in file order.
func (d *Directory) Names() ([]string, error) {
	lines, err := d.Files.ReadLines(d.Name)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if name, _, ok := strings.Cut(line, separator); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
