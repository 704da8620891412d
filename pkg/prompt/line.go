package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line reads answers one line at a time. It backs piped, non-terminal input,
// so Secret does not hide anything: passwords are echoed like any answer.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine reads from in and writes labels to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (l *Line) Ask(label string) (string, error) {
	_, _ = fmt.Fprint(l.out, label)
	text, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimRight(text, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(l.out)
			return "", ErrAborted
		}
		return "", fmt.Errorf("prompt: read: %w", err)
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (l *Line) Secret(label string) (string, error) {
	return l.Ask(label)
}
