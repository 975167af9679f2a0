package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/rockfall/internal/config"
	"github.com/vovakirdan/rockfall/internal/shaft"
	"github.com/vovakirdan/rockfall/internal/storage"
)

var errNoInput = errors.New("no jet pattern: pass a file or pipe it on stdin")

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger creates the stderr logger used by every command.
func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "rockfall",
		Level:           cfg.LogLevel(),
	})
}

// readPatternText returns the raw jet pattern from args[0], or from stdin
// when no file is given and stdin is not a terminal.
func readPatternText(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errNoInput
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// readPattern reads and parses the jet pattern.
func readPattern(args []string) (shaft.Pattern, error) {
	text, err := readPatternText(args)
	if err != nil {
		return nil, err
	}
	return shaft.ParsePattern(text)
}

// openStore opens the run history, or returns nil when it is disabled or
// unavailable. Commands keep working without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if !cfg.Storage.Enabled {
		return nil
	}
	path, err := config.ExpandHome(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not resolve run history path", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open run history", "path", path, "error", err)
		return nil
	}
	logger.Debug("run history opened", "path", path)
	return store
}

// fail prints err and exits with status 1.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
