package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodjournal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about users and journals and where they are stored.",
		Example: `
moodjournal info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := co.Load()
			if err != nil {
				return err
			}
			s := info.Info{
				Config: cfg,
				Out:    cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
