package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/registry"
	"github.com/vovakirdan/penguin-ski/internal/ski"
	"github.com/vovakirdan/penguin-ski/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Display the top 10 runs for a level, or a summary of every level.

A single run can be looked up by the ID logged when it was saved.

Examples:
  penguinski scores
  penguinski scores hard
  penguinski scores --run 6f1c2b9e-...
  penguinski scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagScoresRun   string
	flagScoresClear bool
)

func init() {
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the level")
}

func runScores(_ *cobra.Command, args []string) {
	if settings.DBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no runs database configured")
		os.Exit(1)
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresRun != "" {
		if err := printRun(os.Stdout, store, flagScoresRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if flagScoresClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
		store.Close()
		os.Exit(1)
	}

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	level, ok := ski.ParseLevel(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'penguinski levels' to see available levels.")
		store.Close()
		os.Exit(1)
	}
	if flagScoresClear {
		if err := clearLevel(os.Stdout, store, level); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}
	if err := printLevel(store, level); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printLevel(store *storage.Store, level ski.Level) error {
	id := level.String()
	runs, err := store.TopRuns(id, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", level.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'penguinski play %s' to set the first best!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "Rank", "Score", "Distance", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %s\n", "----", "-----", "--------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8.0f  %-6s  %s\n",
			i+1, r.Score, r.Distance, formatDuration(r.Elapsed.Seconds()), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(id)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Avg: %.0f  Longest: %.0f  Total skied: %.0f\n",
			stats.RunsCount, stats.AvgScore, stats.LongestRun, stats.TotalDistance)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllLevelStats()
	if err != nil {
		return err
	}

	fmt.Println("Best Runs")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-8s  %-8s  %s\n", "Level", "Runs", "Best", "Longest", "Last played")
	fmt.Printf("  %-8s  %-5s  %-8s  %-8s  %s\n", "-----", "----", "----", "-------", "-----------")

	for _, l := range registry.List() {
		st, ok := all[l.ID]
		if !ok || st.RunsCount == 0 {
			fmt.Printf("  %-8s  %-5d  %-8s  %-8s  %s\n", l.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-8d  %-8.0f  %s\n",
			l.ID, st.RunsCount, st.BestScore, st.LongestRun, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

var errRunNotFound = errors.New("run not found")

// printRun shows one stored run and where it ranks on its level.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("%w: %s", errRunNotFound, runID)
	}

	title := r.Level
	if level, ok := ski.ParseLevel(r.Level); ok {
		title = level.Title()
	}

	fmt.Fprintf(w, "Run %s\n", r.RunID)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Level:     %s\n", title)
	fmt.Fprintf(w, "  Score:     %d\n", r.Score)
	fmt.Fprintf(w, "  Distance:  %.0f\n", r.Distance)
	fmt.Fprintf(w, "  Time:      %s\n", formatDuration(r.Elapsed.Seconds()))
	fmt.Fprintf(w, "  Date:      %s\n", r.CreatedAt.Format("2006-01-02 15:04"))

	if best, err := store.BestRun(r.Level); err == nil && best != nil && best.RunID == r.RunID {
		fmt.Fprintln(w, "  Best run on this level!")
	}
	return nil
}

// clearLevel deletes every run recorded for the level.
func clearLevel(w io.Writer, store *storage.Store, level ski.Level) error {
	id := level.String()
	stats, err := store.GetLevelStats(id)
	if err != nil {
		return err
	}
	if err := store.ClearRuns(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs from %s.\n", stats.RunsCount, level.Title())
	return nil
}
