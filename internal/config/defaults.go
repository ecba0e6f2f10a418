package config

import (
	_ "embed"
)

//go:embed defaults/penguinski.yaml
var defaultYAML []byte

// Default returns the hard-coded settings, matching defaults/penguinski.yaml.
func Default() Settings {
	return Settings{
		TickRate: 60,
		Level:    "medium",
		DBPath:   "~/.penguinski/runs.db",
		Log: LogSettings{
			Level: "info",
		},
		SSH: SSHSettings{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Input: InputSettings{
			HoldMS: 120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
