package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-ski/internal/ski"
	"github.com/vovakirdan/penguin-ski/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Let the autopilot ski a run without a terminal UI",
	Long: `Run the simulation headlessly with the built-in autopilot at the configured
tick rate, then print a summary. Useful for checking balance and reproducing a
slope with --seed. Events are logged at debug level.

Examples:
  penguinski sim
  penguinski sim hard --seed 7
  penguinski sim easy --seconds 120 --log-level debug
  penguinski sim medium --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 600, "Stop after this much simulated time")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the runs database")
}

// simSummary is what a headless run produced.
type simSummary struct {
	Level  ski.Level
	Seed   int64
	Final  ski.RunState
	Ticks  int
	Events map[ski.EventKind]int
}

// simulate drives one run with the autopilot until game over or until
// maxSeconds of simulated time have passed.
func simulate(level ski.Level, seed int64, tickRate int, maxSeconds float64, logger *log.Logger) simSummary {
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1 / float64(tickRate)

	sum := simSummary{
		Level:  level,
		Seed:   seed,
		Events: make(map[ski.EventKind]int),
	}
	onEvent := ski.ListenerFunc(func(e ski.Event) {
		sum.Events[e.Kind]++
		logger.Debug(e.Kind.String(), "points", e.Points, "combo", e.Combo, "lives", e.Lives)
	})

	run := ski.NewRun(level, ski.WithSeed(seed), ski.WithListener(onEvent))
	pilot := ski.NewAutopilot()

	for run.State().Elapsed < maxSeconds && !run.State().GameOver {
		run.Step(pilot.Decide(run.Snapshot()), dt)
		sum.Ticks++
	}
	sum.Final = run.State()
	return sum
}

func runSim(_ *cobra.Command, args []string) {
	level := settings.DefaultLevel()
	if len(args) == 1 {
		l, ok := ski.ParseLevel(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			os.Exit(1)
		}
		level = l
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := newLogger(os.Stderr, "penguinski-sim")
	logger.Info("simulating", "level", level.String(), "seed", seed, "tick_rate", settings.TickRate)

	sum := simulate(level, seed, settings.TickRate, flagSimSeconds, logger)
	printSimSummary(sum)

	if !flagSimSave {
		return
	}
	store := openStore()
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: no runs database available")
		os.Exit(1)
	}
	defer store.Close()

	runID, newBest, err := store.SaveRun(storage.RunResult{
		Level:    level.String(),
		Score:    sum.Final.Score,
		Distance: sum.Final.Distance,
		Elapsed:  time.Duration(sum.Final.Elapsed * float64(time.Second)),
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		store.Close()
		os.Exit(1)
	}
	logger.Info("run saved", "run", runID, "new_best", newBest)
	fmt.Printf("\nSaved. Look it up with 'penguinski scores --run %s'.\n", runID)
}

func printSimSummary(sum simSummary) {
	s := sum.Final
	outcome := "crashed out"
	if !s.GameOver {
		outcome = "time limit"
	}

	fmt.Printf("Autopilot run - %s (seed %d)\n", sum.Level.Title(), sum.Seed)
	fmt.Println()
	fmt.Printf("  Outcome:   %s\n", outcome)
	fmt.Printf("  Score:     %d\n", s.Score)
	fmt.Printf("  Distance:  %.0f\n", s.Distance)
	fmt.Printf("  Time:      %s (%d ticks)\n", formatDuration(s.Elapsed), sum.Ticks)
	fmt.Printf("  Lives:     %d\n", s.Lives)
	fmt.Printf("  Tier:      %d\n", ski.Difficulty(s.Distance))

	if len(sum.Events) == 0 {
		return
	}

	kinds := make([]ski.EventKind, 0, len(sum.Events))
	for k := range sum.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Println()
	fmt.Println("  Events:")
	for _, k := range kinds {
		fmt.Printf("    %-15s %d\n", k.String(), sum.Events[k])
	}
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs float64) string {
	total := int(secs + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
