package login

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/moodjournal/pkg/printers"
	"tableflip.dev/moodjournal/pkg/prompt"
	"tableflip.dev/moodjournal/pkg/store"
	"tableflip.dev/moodjournal/pkg/users"
)

func init() {
	color.NoColor = true
}

func newDirectory(t *testing.T) *users.Directory {
	t.Helper()
	cfg := &store.StaticConfig{Path: t.TempDir()}
	files, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return users.NewDirectory(files, cfg)
}

func run(t *testing.T, dir *users.Directory, input string) (string, string, error) {
	t.Helper()
	var out bytes.Buffer
	l := &Login{
		Users:  dir,
		Prompt: prompt.NewLine(strings.NewReader(input), &out),
		Print:  &printers.PrettyPrint{Out: &out},
	}
	name, err := l.Do(context.Background())
	return name, out.String(), err
}

func TestLoginCreatesNewUser(t *testing.T) {
	dir := newDirectory(t)
	name, out, err := run(t, dir, "alice\n\npw\n")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if name != "alice" {
		t.Fatalf("name = %q", name)
	}
	if !strings.Contains(out, "Password cannot be empty.") || !strings.Contains(out, "User created successfully.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if ok, err := dir.Verify("alice", "pw"); err != nil || !ok {
		t.Fatalf("created user does not verify: %v, %v", ok, err)
	}
}

func TestLoginBlankNameIsDefaultUser(t *testing.T) {
	dir := newDirectory(t)
	name, _, err := run(t, dir, "   \npw\n")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if name != users.DefaultName {
		t.Fatalf("name = %q, want %q", name, users.DefaultName)
	}
}

func TestLoginRejectsBadName(t *testing.T) {
	dir := newDirectory(t)
	name, out, err := run(t, dir, "a:b\nbob\npw\n")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if name != "bob" || !strings.Contains(out, "must not contain") {
		t.Fatalf("name = %q, output:\n%s", name, out)
	}
}

func TestLoginExistingUserRetries(t *testing.T) {
	dir := newDirectory(t)
	if err := dir.Create("alice", "right"); err != nil {
		t.Fatal(err)
	}
	name, out, err := run(t, dir, "alice\nwrong\nright\n")
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if name != "alice" {
		t.Fatalf("name = %q", name)
	}
	if !strings.Contains(out, "Attempts left: 2") || !strings.Contains(out, "Login successful.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLoginLocksOut(t *testing.T) {
	dir := newDirectory(t)
	if err := dir.Create("alice", "right"); err != nil {
		t.Fatal(err)
	}
	_, out, err := run(t, dir, "alice\na\nb\nc\nright\n")
	if !errors.Is(err, users.ErrLockedOut) {
		t.Fatalf("expected ErrLockedOut, got %v", err)
	}
	if !strings.Contains(out, "Attempts left: 0") || !strings.Contains(out, "Too many failed attempts.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLoginInputClosed(t *testing.T) {
	dir := newDirectory(t)
	if _, _, err := run(t, dir, ""); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
