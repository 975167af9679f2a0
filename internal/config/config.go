// Package config provides YAML-based configuration loading for rockfall.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Config contains all settings for a rockfall run.
type Config struct {
	Targets  []int64       `yaml:"targets"`  // rock counts to report heights for
	Strategy string        `yaml:"strategy"` // registered height strategy ID
	Verify   VerifyConfig  `yaml:"verify"`
	Log      LogConfig     `yaml:"log"`
	Storage  StorageConfig `yaml:"storage"`
	Render   RenderConfig  `yaml:"render"`
}

// VerifyConfig controls cross-checking fast results against brute force.
type VerifyConfig struct {
	Enabled   bool  `yaml:"enabled"`
	MaxPieces int64 `yaml:"max_pieces"` // targets above this are not brute-forced
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// RenderConfig defines defaults for the render command.
type RenderConfig struct {
	Rows int `yaml:"rows"` // 0 = fit the terminal
}

// ErrNoTargets is returned when a config lists no rock counts.
var ErrNoTargets = errors.New("config: no targets")

// Validate checks the config for values the solver cannot use.
func (c Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	for _, n := range c.Targets {
		if n < 0 {
			return fmt.Errorf("config: negative target %d", n)
		}
	}
	if c.Strategy == "" {
		return errors.New("config: empty strategy")
	}
	if c.Verify.Enabled && c.Verify.MaxPieces <= 0 {
		return fmt.Errorf("config: verify.max_pieces must be positive, got %d", c.Verify.MaxPieces)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Render.Rows < 0 {
		return fmt.Errorf("config: render.rows must not be negative, got %d", c.Render.Rows)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
