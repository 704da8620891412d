// Package key provides CLI helpers to display the mood legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodjournal/pkg/mood"
	"tableflip.dev/moodjournal/pkg/printers"
)

// Key prints each mood with the words that detect it and its suggestion.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 50
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Detected by"), bold.Sprint("Suggestion"))
	for _, m := range mood.All() {
		words := strings.Join(m.Keywords(), ", ")
		if words == "" {
			words = "(anything else)"
		}
		tbl.AddRow(printers.Mood(m), words, m.Suggestion())
	}

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
