package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Values come from an optional TOML file
// overridden by FARMPLAN_* environment variables.
type Config struct {
	DBPath      string `toml:"db_path" env:"FARMPLAN_DB"`
	Year        int    `toml:"year" env:"FARMPLAN_YEAR"`
	Granularity string `toml:"granularity" env:"FARMPLAN_GRANULARITY"`
	Sort        string `toml:"sort" env:"FARMPLAN_SORT"`
	NoColor     bool   `toml:"no_color" env:"FARMPLAN_NO_COLOR"`
}

// DefaultPath returns the default config file location, ~/.farmplan/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".farmplan", "config.toml"), nil
}

// Load reads the TOML file at path if it exists, then applies environment
// overrides. A missing file is not an error; defaults fill the gaps.
func Load(path string) (*Config, error) {
	cfg := &Config{Granularity: "month", Sort: "name"}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".farmplan", "farmplan.db")
	}
	return cfg, nil
}
