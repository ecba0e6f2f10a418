package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/platform/tui"
	"github.com/vovakirdan/penguin-ski/internal/registry"
	"github.com/vovakirdan/penguin-ski/internal/ski"
	"github.com/vovakirdan/penguin-ski/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Ski a level",
	Long: `Start a run on the given level, or pick one from a menu.

Levels: easy, medium, hard

Controls:
  A/D, Left/Right  - Steer (spin while airborne)
  W/Up             - Tuck (faster)
  S/Down           - Spread wings (brake)
  Space/X/C/Z/V    - Tricks while airborne (or 1-5)
  P                - Pause
  R/Enter          - Restart after a crash-out
  Esc/B            - Back to menu (paused or after game over)
  Q/Ctrl+C         - Quit

Examples:
  penguinski play
  penguinski play easy
  penguinski play hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	store := openStore()
	defer closeStore(store)

	logger, closeLog := playLogger()
	defer closeLog()

	cfg := runtimeConfig()

	var levelID string
	if len(args) == 1 {
		level, ok := ski.ParseLevel(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'penguinski levels' to see available levels.")
			os.Exit(1)
		}
		levelID = level.String()
	} else {
		result, err := tui.RunMenu(store, cfg, settings.DefaultLevel().String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit || result.WantsScoreboard || result.GameID == "" {
			return
		}
		cfg = result.Config
		levelID = result.GameID
	}

	game, err := registry.Create(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(game, store, cfg,
		tui.WithHold(settings.HoldDuration()),
		tui.WithLogger(logger),
	)
	if runErr != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openStore opens the runs database. The game still works without it, so
// failures only print a warning.
func openStore() *storage.Store {
	if settings.DBPath == "" {
		return nil
	}
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
