// Package config loads obedit's runtime configuration through viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppName is the directory name under the user config dir and the env prefix root.
const AppName = "obedit"

// StorageConfig selects the user-config store the catalog is mirrored into.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Key     string `mapstructure:"key"`
}

// Config holds all runtime configuration for an editor session.
// Values are populated from .obedit.yaml, OBEDIT_* env vars, and CLI flags.
type Config struct {
	DocumentPath string        `mapstructure:"document_path"`
	Storage      StorageConfig `mapstructure:"storage"`
	LogFile      string        `mapstructure:"log_file"`
	Verbose      bool          `mapstructure:"verbose"`
}

// DefaultStoragePath is storage.toml under the user config directory, or in
// the working directory when the platform reports none.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "storage.toml"
	}
	return filepath.Join(dir, AppName, "storage.toml")
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("document_path", "data.json")
	viper.SetDefault("storage.backend", "toml")
	viper.SetDefault("storage.path", DefaultStoragePath())
	viper.SetDefault("storage.key", "data")
	viper.SetDefault("log_file", "obedit.log")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
