package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/moodjournal/pkg/store"
	"tableflip.dev/moodjournal/pkg/users"
)

// Info prints where journals are stored and who has one.
type Info struct {
	Config store.Config
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MOODJOURNAL_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MOODJOURNAL_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "MOODJOURNAL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if c, ok := n.Config.(*store.StaticConfig); ok && c.File != "" {
		_, _ = fmt.Fprintln(out, "Config file:", c.File)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.users:", n.Config.UsersFile())

	files, err := store.Open(n.Config)
	if err != nil {
		return err
	}

	names, err := users.NewDirectory(files, n.Config).Names()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Users:\n")
	list(out, names, "no users")

	_, _ = fmt.Fprintf(out, "Journals:\n")
	list(out, files.Journals(), "no journals")
	return nil
}

func list(out io.Writer, items []string, none string) {
	if len(items) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", none)
		return
	}
	for _, k := range items {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}
}
