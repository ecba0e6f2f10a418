package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/platform/tui"
	"github.com/vovakirdan/penguin-ski/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a level.
After a run, Esc returns you to the menu to go again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Pick level
  Tab          - Best runs
  Q            - Quit

Examples:
  penguinski menu
  penguinski menu --fps 30
  penguinski menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	logger, closeLog := playLogger()
	defer closeLog()

	cfg := runtimeConfig()
	level := settings.DefaultLevel().String()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, level)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if menuResult.Quit || menuResult.GameID == "" {
			return
		}
		level = menuResult.GameID

		game, err := registry.Create(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, cfg,
			tui.WithHold(settings.HoldDuration()),
			tui.WithLogger(logger),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			return
		}
	}
}
