// Package config loads the optional tidy configuration file. The file covers
// ambient settings only — the category table itself is compiled in and not
// configurable at runtime.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the decoded configuration with defaults applied.
type Config struct {
	// DefaultDir is the directory organized when the caller names none.
	DefaultDir string `hcl:"default_dir,optional"`
	// LogLevel is a logrus level name (trace..error). Defaults to info.
	LogLevel string `hcl:"log_level,optional"`
}

// DefaultPath returns the conventional config location,
// ~/.agentic-research/tidy/tidy.hcl.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".agentic-research", "tidy", "tidy.hcl"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error — defaults are returned. A present
// but malformed file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return withDefaults(cfg)
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return withDefaults(cfg)
}

// withDefaults fills empty fields: the user's desktop directory and info
// level logging.
func withDefaults(cfg *Config) (*Config, error) {
	if cfg.DefaultDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DefaultDir = filepath.Join(home, "Desktop")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
