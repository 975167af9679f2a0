package config

import (
	_ "embed"
)

//go:embed defaults/rockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the two classic targets,
// cycle detection verified by brute force where that is cheap.
func Default() Config {
	return Config{
		Targets:  []int64{2022, 1_000_000_000_000},
		Strategy: "cycle",
		Verify: VerifyConfig{
			Enabled:   true,
			MaxPieces: 10_000,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.rockfall/runs.db",
		},
		Render: RenderConfig{
			Rows: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
