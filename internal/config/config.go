package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the CLI configuration.
type Config struct {
	// Application is the automation target name, MONEYMONEY_APP.
	Application string
	// SnapshotDB is the snapshot database path, MONEYMONEY_SNAPSHOT_DB.
	SnapshotDB string
}

// Load reads configuration from environment variables, filling defaults
// for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Application: os.Getenv("MONEYMONEY_APP"),
		SnapshotDB:  os.Getenv("MONEYMONEY_SNAPSHOT_DB"),
	}

	if cfg.Application == "" {
		cfg.Application = "MoneyMoney"
	}
	if cfg.SnapshotDB == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.SnapshotDB = filepath.Join(home, ".moneymoney", "snapshots.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is valid. The application name is
// embedded in the generated automation script, so characters that would
// terminate the string literal are rejected.
func (c *Config) Validate() error {
	if c.Application == "" {
		return errors.New("application name must not be empty")
	}
	if strings.ContainsAny(c.Application, `"\`) {
		return errors.New("MONEYMONEY_APP must not contain quotes or backslashes")
	}
	if c.SnapshotDB == "" {
		return errors.New("MONEYMONEY_SNAPSHOT_DB must not be empty")
	}
	return nil
}
