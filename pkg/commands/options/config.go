// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"tableflip.dev/moodjournal/pkg/store"
)

// ConfigOptions overrides the data directory from the command line.
type ConfigOptions struct {
	Path string
}

func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Data directory holding journals and the user file (default from config, then "+store.DefaultPath+").")
}

// Load returns the configuration with any flag overrides applied.
func (o *ConfigOptions) Load() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.Path == "" {
		return cfg, nil
	}
	path, err := homedir.Expand(o.Path)
	if err != nil {
		return nil, fmt.Errorf("options: expand --path: %w", err)
	}
	static := &store.StaticConfig{Path: path, Users: cfg.UsersFile()}
	if sc, ok := cfg.(*store.StaticConfig); ok {
		static.File = sc.File
	}
	return static, nil
}
