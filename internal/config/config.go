// Package config loads Penguin Ski settings from YAML. Gameplay physics are
// fixed in the simulation; only the host-side knobs live here.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/penguin-ski/internal/ski"
)

// Settings is the top-level configuration file.
type Settings struct {
	TickRate int           `yaml:"tick_rate"`
	Level    string        `yaml:"level"`
	DBPath   string        `yaml:"db_path"`
	Log      LogSettings   `yaml:"log"`
	SSH      SSHSettings   `yaml:"ssh"`
	Input    InputSettings `yaml:"input"`
}

// LogSettings configures the structured logger.
type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Interactive play only; empty discards
}

// SSHSettings configures the remote play server.
type SSHSettings struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// InputSettings configures key-hold emulation.
type InputSettings struct {
	HoldMS int `yaml:"hold_ms"`
}

// DefaultLevel returns the configured starting level, falling back to medium.
func (s Settings) DefaultLevel() ski.Level {
	l, _ := ski.ParseLevel(s.Level)
	return l
}

// IdleTimeout returns the SSH idle timeout.
func (s Settings) IdleTimeout() time.Duration {
	return time.Duration(s.SSH.IdleTimeoutMinutes) * time.Minute
}

// HoldDuration returns how long a key press keeps a held action active.
func (s Settings) HoldDuration() time.Duration {
	return time.Duration(s.Input.HoldMS) * time.Millisecond
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	if s.TickRate < 1 || s.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d out of range [1, 240]", s.TickRate)
	}
	if _, ok := ski.ParseLevel(s.Level); !ok {
		return fmt.Errorf("config: unknown level %q", s.Level)
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", s.Log.Level)
	}
	if s.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: idle_timeout_minutes must not be negative")
	}
	if s.Input.HoldMS < 0 {
		return fmt.Errorf("config: hold_ms must not be negative")
	}
	return nil
}

// fillDefaults replaces zero values with the built-in defaults.
func (s *Settings) fillDefaults() {
	d := Default()
	if s.TickRate == 0 {
		s.TickRate = d.TickRate
	}
	if s.Level == "" {
		s.Level = d.Level
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
	if s.SSH.Address == "" {
		s.SSH.Address = d.SSH.Address
	}
	if s.SSH.IdleTimeoutMinutes == 0 {
		s.SSH.IdleTimeoutMinutes = d.SSH.IdleTimeoutMinutes
	}
	if s.Input.HoldMS == 0 {
		s.Input.HoldMS = d.Input.HoldMS
	}
}
