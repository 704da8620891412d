package commands

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodjournal/pkg/commands/options"
	"tableflip.dev/moodjournal/pkg/printers"
	"tableflip.dev/moodjournal/pkg/prompt"
	"tableflip.dev/moodjournal/pkg/runner/session"
)

var (
	lo = &options.LogOptions{}
	co = &options.ConfigOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodjournal",
		Short: base.Wrap80("Record how you feel, add feedback later, and see your mood statistics."),
		Long: base.Wrap80("Starts an interactive session: log in (or create an account), answer any " +
			"pending feedback, then use the numbered menu. Nothing is written until you choose " +
			"'Save and exit'. Files are obfuscated, not encrypted."),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lo.Setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := co.Load()
			if err != nil {
				return err
			}
			s := session.Session{
				Config: cfg,
				Prompt: prompt.New(os.Stdin, color.Output),
				Print:  &printers.PrettyPrint{},
			}
			return s.Do(context.Background())
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddConfigArgs(cmd, co)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
