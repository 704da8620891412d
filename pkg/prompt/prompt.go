// Package prompt reads answers from the person at the terminal.
package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when input ends or the user interrupts a prompt.
var ErrAborted = errors.New("prompt: input closed")

// Prompter asks one question at a time.
type Prompter interface {
	// Ask shows label and returns the line typed, without the line ending.
	Ask(label string) (string, error)
	// Secret is Ask without echoing the answer where the terminal allows it.
	// Line prompters, used when input is piped, echo it like Ask.
	Secret(label string) (string, error)
}

// New returns a Terminal prompter when in is a terminal and a Line prompter
// otherwise, so piped input keeps working.
func New(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &Terminal{In: in, Out: out}
	}
	return NewLine(in, out)
}
