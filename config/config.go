// Package config handles loading and saving sumpus server configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the server and the CLI.
type Config struct {
	Addr         string        `yaml:"addr" mapstructure:"addr"`                   // listen address, e.g. ":8000"
	DSN          string        `yaml:"dsn" mapstructure:"dsn"`                     // sqlite path or postgres:// URL
	Hostname     string        `yaml:"hostname" mapstructure:"hostname"`           // public host for share links
	Lexicon      string        `yaml:"lexicon" mapstructure:"lexicon"`             // extra lexicon TSV merged over the built-in one
	CheckTimeout time.Duration `yaml:"check_timeout" mapstructure:"check_timeout"` // per-check deadline
	Workers      int           `yaml:"workers" mapstructure:"workers"`             // concurrent pronunciation lookups
	Debounce     time.Duration `yaml:"debounce" mapstructure:"debounce"`           // live-check delay after the last edit
	MaxTextBytes int64         `yaml:"max_text_bytes" mapstructure:"max_text_bytes"`
	LogLevel     string        `yaml:"log_level" mapstructure:"log_level"` // debug, info, warn, error

	// ResultRetention is how long saved results are kept; zero keeps them forever.
	ResultRetention time.Duration `yaml:"result_retention" mapstructure:"result_retention"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:         ":8000",
		DSN:          "db.sqlite3",
		Hostname:     "localhost",
		CheckTimeout: 10 * time.Second,
		Workers:      8,
		Debounce:     1500 * time.Millisecond,
		MaxTextBytes: 64 << 10,
		LogLevel:     "info",

		ResultRetention: 0,
		CleanupInterval: time.Hour,
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("config: addr is empty")
	case c.DSN == "":
		return fmt.Errorf("config: dsn is empty")
	case c.CheckTimeout <= 0:
		return fmt.Errorf("config: check_timeout must be positive, got %s", c.CheckTimeout)
	case c.Workers <= 0:
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	case c.Debounce < 0:
		return fmt.Errorf("config: debounce must not be negative, got %s", c.Debounce)
	case c.MaxTextBytes <= 0:
		return fmt.Errorf("config: max_text_bytes must be positive, got %d", c.MaxTextBytes)
	case c.ResultRetention < 0:
		return fmt.Errorf("config: result_retention must not be negative, got %s", c.ResultRetention)
	case c.ResultRetention > 0 && c.CleanupInterval <= 0:
		return fmt.Errorf("config: cleanup_interval must be positive when result_retention is set, got %s", c.CleanupInterval)
	}
	return nil
}
