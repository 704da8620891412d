package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the data directory used when none is configured.
	DefaultPath = "~/.moodjournal"
	// DefaultUsersFile is the user directory file name inside the data directory.
	DefaultUsersFile = "users.txt"
)

// Config locates the journal files.
type Config interface {
	BasePath() string
	UsersFile() string
}

// LoadConfig reads `.moodjournal.yaml` from $MOODJOURNAL_CONFIG_PATH or the
// working directory, with MOODJOURNAL_* environment overrides. A missing
// config file is fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("users", DefaultUsersFile)
	v.SetConfigName(".moodjournal") // .yaml is implicit
	v.SetEnvPrefix("MOODJOURNAL")
	v.AutomaticEnv()

	if override := os.Getenv("MOODJOURNAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	users := v.GetString("users")
	if users == "" || filepath.Base(users) != users {
		return nil, fmt.Errorf("store: users file %q must be a plain file name", users)
	}
	return &StaticConfig{Path: path, Users: users, File: v.ConfigFileUsed()}, nil
}

// StaticConfig is a fixed Config, also used directly by tests.
type StaticConfig struct {
	Path  string
	Users string
	File  string // config file that was read, if any
}

func (c *StaticConfig) BasePath() string {
	return c.Path
}

func (c *StaticConfig) UsersFile() string {
	if c.Users == "" {
		return DefaultUsersFile
	}
	return c.Users
}
