// Package config loads the tool's own configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/confvar/confvar/rules"
)

// Config is the YAML tool configuration. All fields are optional; a missing
// config file yields the defaults.
type Config struct {
	// Store is the path of the JSONL store file.
	Store string `yaml:"store"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
	// Rules drive profile auto-selection for `apply --auto`.
	Rules []rules.Rule `yaml:"rules"`
}

// Load reads the config from $CONFVAR_CONFIG, else
// $XDG_CONFIG_HOME/confvar/config.yaml, else ~/.config/confvar/config.yaml.
// A missing file is not an error. Rule expressions are compiled here so a
// broken config is rejected before any command runs.
func Load() (*Config, error) {
	path, fromEnv := configPath()
	cfg := &Config{Color: "auto"}
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !fromEnv {
			return withDefaults(cfg)
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config %q: %w", path, err)
		}
		return nil, err
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if _, err := rules.Compile(cfg.Rules); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return withDefaults(cfg)
}

func withDefaults(cfg *Config) (*Config, error) {
	if cfg.Store != "" {
		return cfg, nil
	}
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	cfg.Store = filepath.Join(dir, "store.jsonl")
	return cfg, nil
}

func configPath() (string, bool) {
	if p := os.Getenv("CONFVAR_CONFIG"); p != "" {
		return p, true
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "confvar", "config.yaml"), false
}

// dataDir returns the confvar-specific XDG data directory.
func dataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "confvar"), nil
}
