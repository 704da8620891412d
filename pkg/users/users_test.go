package users

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/moodjournal/pkg/store"
)

func newDirectory(t *testing.T) *Directory {
	t.Helper()
	cfg := &store.StaticConfig{Path: t.TempDir()}
	files, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return NewDirectory(files, cfg)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", DefaultName, false},
		{"   ", DefaultName, false},
		{"  alice ", "alice", false},
		{"a:b", "", true},
		{"../etc", "", true},
		{`c:\x`, "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeName(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidUsername) {
			t.Errorf("NormalizeName(%q) error should wrap ErrInvalidUsername: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirectoryCreateFindVerify(t *testing.T) {
	d := newDirectory(t)

	if _, ok, err := d.Find("alice"); err != nil || ok {
		t.Fatalf("Find on empty directory = %v, %v", ok, err)
	}
	if err := d.Create("alice", "s3cret pass:word"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := d.Create("bob", "hunter2"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	pw, ok, err := d.Find("alice")
	if err != nil || !ok {
		t.Fatalf("Find(alice) = %v, %v", ok, err)
	}
	if pw != "s3cret pass:word" {
		t.Fatalf("Find(alice) password = %q", pw)
	}

	if ok, err := d.Verify("bob", "hunter2"); err != nil || !ok {
		t.Fatalf("Verify(bob, correct) = %v, %v", ok, err)
	}
	if ok, _ := d.Verify("bob", "Hunter2"); ok {
		t.Fatalf("Verify must be an exact match")
	}
	if ok, _ := d.Verify("carol", ""); ok {
		t.Fatalf("unknown user must not verify")
	}

	names, err := d.Names()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, ",") != "alice,bob" {
		t.Fatalf("Names = %q", names)
	}
}

func TestDirectoryFileFormat(t *testing.T) {
	d := newDirectory(t)
	if err := d.Create("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(d.Files.BasePath(), d.Name))
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(string(data))
	if !strings.HasPrefix(line, "alice:") {
		t.Fatalf("unexpected record %q", line)
	}
	if strings.Contains(line, "pw") {
		t.Fatalf("password stored in plain text: %q", line)
	}
}

func TestDirectoryReadsFreshEachTime(t *testing.T) {
	d := newDirectory(t)
	other := &Directory{Files: d.Files, Name: d.Name}
	if err := other.Create("late", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := d.Find("late"); err != nil || !ok {
		t.Fatalf("record written elsewhere should be visible: %v, %v", ok, err)
	}
}

func TestDirectoryCreateRejectsBadNames(t *testing.T) {
	d := newDirectory(t)
	for _, name := range []string{"", "a:b", " padded "} {
		if err := d.Create(name, "pw"); !errors.Is(err, ErrInvalidUsername) {
			t.Errorf("Create(%q) = %v, want ErrInvalidUsername", name, err)
		}
	}
}

func TestAttempt(t *testing.T) {
	a := NewAttempt()
	if a.Done() || a.Left != MaxAttempts {
		t.Fatalf("unexpected start state %+v", a)
	}

	a = a.Next(false)
	if a.Phase != Authenticating || a.Left != 2 {
		t.Fatalf("after one failure: %+v", a)
	}
	a = a.Next(true)
	if a.Phase != Authenticated || !a.Done() {
		t.Fatalf("after a match: %+v", a)
	}
	if a.Next(false) != a {
		t.Fatalf("terminal state changed")
	}

	locked := NewAttempt()
	for i := 0; i < MaxAttempts; i++ {
		locked = locked.Next(false)
	}
	if locked.Phase != LockedOut || locked.Left != 0 {
		t.Fatalf("after %d failures: %+v", MaxAttempts, locked)
	}
	if locked.Next(true).Phase != LockedOut {
		t.Fatalf("lock out is terminal")
	}
}
