package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// JournalSuffix is appended to the user name to form the journal file name.
const JournalSuffix = "_journal.txt"

// Files reads and writes whole line-oriented files in the data directory.
// Every call opens, reads or writes, and closes the file; nothing is cached.
type Files struct {
	d        *diskv.Diskv
	basePath string
}

// Open prepares the data directory described by cfg.
func Open(cfg Config) (*Files, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Files{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: 0,
			FilePerm:     0o600,
			PathPerm:     0o700,
		}),
		basePath: basePath,
	}, nil
}

// BasePath is the data directory.
func (f *Files) BasePath() string {
	return f.basePath
}

// JournalName returns the file name holding user's journal.
func JournalName(user string) string {
	return user + JournalSuffix
}

// ReadLines returns the non-blank lines of name. A missing file yields no
// lines and no error.
func (f *Files) ReadLines(name string) ([]string, error) {
	if !f.d.Has(name) {
		return nil, nil
	}
	data, err := f.d.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("store: scan %s: %w", name, err)
	}
	return lines, nil
}

// WriteLines replaces the contents of name with lines, one per line. Writing
// no lines removes the file.
func (f *Files) WriteLines(name string, lines []string) error {
	if len(lines) == 0 {
		if !f.d.Has(name) {
			return nil
		}
		if err := f.d.Erase(name); err != nil {
			return fmt.Errorf("store: erase %s: %w", name, err)
		}
		return nil
	}
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	if err := f.d.Write(name, buf.Bytes()); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}

// AppendLine adds one line to the end of name, creating it when missing.
func (f *Files) AppendLine(name, line string) error {
	lines, err := f.ReadLines(name)
	if err != nil {
		return err
	}
	return f.WriteLines(name, append(lines, line))
}

// Journals lists the user names that have a journal file.
func (f *Files) Journals() []string {
	var users []string
	done := make(chan struct{})
	defer close(done)
	for key := range f.d.Keys(done) {
		if strings.HasSuffix(key, JournalSuffix) {
			users = append(users, strings.TrimSuffix(key, JournalSuffix))
		}
	}
	sort.Strings(users)
	return users
}
