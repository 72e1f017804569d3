// Package config resolves settings from flags, GITHELPER_* environment
// variables, .githelper.yaml and built-in defaults, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Force modes for rewritten-history pushes
const (
	ForceWithLease = "force-with-lease"
	Force          = "force"
)

// History backends
const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

// Config holds resolved settings
type Config struct {
	Remote         string `mapstructure:"remote"`
	LogFile        string `mapstructure:"log-file"`
	LogLevel       string `mapstructure:"log-level"`
	CommitCount    int    `mapstructure:"commit-count"`
	PRLimit        int    `mapstructure:"pr-limit"`
	HistoryBackend string `mapstructure:"history-backend"`
	ForceMode      string `mapstructure:"force-mode"`
	NoColor        bool   `mapstructure:"no-color"`
	GitHubToken    string `mapstructure:"github-token"`
	Verbose        bool   `mapstructure:"verbose"`
	DryRun         bool   `mapstructure:"dry-run"`
}

// DefaultLogFile is ~/.githelper/githelper.log, or a file in the temp dir
// when the home directory is unknown
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "githelper.log")
	}
	return filepath.Join(home, ".githelper", "githelper.log")
}

// Init configures v's search paths, environment binding and defaults.
// configFile overrides the search when non-empty.
func Init(v *viper.Viper, configFile string) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".githelper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("GITHELPER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("remote", "origin")
	v.SetDefault("log-file", DefaultLogFile())
	v.SetDefault("log-level", "info")
	v.SetDefault("commit-count", 10)
	v.SetDefault("pr-limit", 10)
	v.SetDefault("history-backend", BackendCLI)
	v.SetDefault("force-mode", ForceWithLease)
	v.SetDefault("no-color", false)
	v.SetDefault("github-token", "")
	v.SetDefault("verbose", false)
	v.SetDefault("dry-run", false)
}

// Load reads the config file if present and returns validated settings
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case BackendCLI, BackendNative:
	default:
		return fmt.Errorf("invalid history-backend %q (want %s or %s)", c.HistoryBackend, BackendCLI, BackendNative)
	}
	switch c.ForceMode {
	case ForceWithLease, Force:
	default:
		return fmt.Errorf("invalid force-mode %q (want %s or %s)", c.ForceMode, ForceWithLease, Force)
	}
	if c.CommitCount < 1 {
		return fmt.Errorf("commit-count must be positive, got %d", c.CommitCount)
	}
	if c.PRLimit < 1 {
		return fmt.Errorf("pr-limit must be positive, got %d", c.PRLimit)
	}
	if strings.TrimSpace(c.Remote) == "" {
		return fmt.Errorf("remote must not be empty")
	}
	return nil
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	v := viper.New()
	Init(v, "")
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}
