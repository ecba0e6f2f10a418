// penguinski is a downhill ski arcade game for the terminal.
//
// Usage:
//
//	penguinski play [level]    - Ski a level (picker if omitted)
//	penguinski menu            - Level picker, loops back after each run
//	penguinski levels          - Show levels and the trick catalog
//	penguinski scores [level]  - Show best runs
//	penguinski serve           - Start SSH server for remote play
//	penguinski sim [level]     - Let the autopilot ski a run headlessly
//	penguinski config          - Print the default settings file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.penguinski/runs.db)
//	--config <path>       - Use a specific settings file
//	--log-level <level>   - debug, info, warn, or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/penguin-ski/internal/config"
	"github.com/vovakirdan/penguin-ski/internal/core"
	"github.com/vovakirdan/penguin-ski/internal/games/penguin"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// settings is loaded before any command runs, with flags applied on top.
	settings config.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "penguinski",
	Short: "Penguin Ski - a downhill arcade run in your terminal",
	Long: `Penguin Ski sends a penguin down an endless slope. Dodge rocks and trees,
grab fish, hit ramps and land tricks. Three crashes and the run is over.

Available commands:
  play     - Ski a level directly
  menu     - Interactive level picker
  levels   - Show levels and tricks
  scores   - View best runs
  serve    - Start SSH server for remote play
  sim      - Headless autopilot run

Examples:
  penguinski play
  penguinski play hard
  penguinski menu --fps 30
  penguinski serve --ssh :2222
  penguinski sim medium --seed 42`,
	PersistentPreRunE: loadSettings,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.penguinski/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the settings file and lets explicit flags override it.
func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.TickRate = flagFPS
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		s.Log.Level = flagLogLevel
	}
	if err := s.Validate(); err != nil {
		return err
	}

	settings = s
	return nil
}

// newLogger builds the structured logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(settings.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// playLogger returns the logger for interactive play. The alternate screen
// owns the terminal, so logs go to log.file or nowhere.
func playLogger() (*log.Logger, func()) {
	path := settings.Log.File
	if path == "" {
		return newLogger(io.Discard, "penguinski"), func() {}
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return newLogger(io.Discard, "penguinski"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "penguinski"), func() {}
	}

	logger := newLogger(f, "penguinski")
	penguin.SetLogger(logger)
	return logger, func() { _ = f.Close() }
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.TickRate,
		Seed:     flagSeed,
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
