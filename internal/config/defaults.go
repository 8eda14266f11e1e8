package config

import (
	_ "embed"
)

//go:embed defaults/tinypix.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:        20,
		Scene:      "walker",
		World:      SizeConfig{Width: 200, Height: 100},
		Background: " ",
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.tinypix/sessions.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
