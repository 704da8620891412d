package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// Terminal prompts through promptui, masking secrets.
type Terminal struct {
	In  io.ReadCloser
	Out io.Writer
}

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . }}: ",
	Invalid: "{{ . }}: ",
	Success: "{{ . | faint }}: ",
}

func (t *Terminal) Ask(label string) (string, error) {
	return t.run(label, 0)
}

func (t *Terminal) Secret(label string) (string, error) {
	return t.run(label, '*')
}

func (t *Terminal) run(label string, mask rune) (string, error) {
	p := promptui.Prompt{
		Label:     strings.TrimRight(strings.TrimSpace(label), ":?"),
		Mask:      mask,
		Templates: templates,
		Stdin:     t.In,
		Stdout:    nopCloser{t.Out},
	}
	result, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("prompt: %w", err)
	}
	return result, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
