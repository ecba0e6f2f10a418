// Package penguin adapts the ski simulation to the arcade platform: it maps
// key actions to simulation input, keeps transient status text for events,
// and draws each frame onto a character screen. One game is registered per
// difficulty level.
package penguin

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-ski/internal/core"
	"github.com/vovakirdan/penguin-ski/internal/registry"
	"github.com/vovakirdan/penguin-ski/internal/ski"
)

// logger receives debug-level event logs; discarded until SetLogger.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game for one difficulty level.
type Game struct {
	level   ski.Level
	run     *ski.Run
	runtime core.RuntimeConfig
	seed    int64 // Seed of the current run
	paused  bool
	status  status

	best     int
	bestDist float64
	hasBest  bool
}

// New creates a game for the given level. Call Reset before stepping.
func New(level ski.Level) *Game {
	return &Game{level: level}
}

// ID returns the level name, which is also the score store key.
func (g *Game) ID() string {
	return g.level.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Penguin Ski - " + g.level.Title()
}

// Seed returns the seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Level returns the difficulty the game was created for.
func (g *Game) Level() ski.Level {
	return g.level
}

// Reset starts a new run. With a zero runtime seed every reset, including
// a restart after game over, draws a fresh slope from the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		if seed == g.seed {
			seed++
		}
	}
	g.seed = seed
	logger.Debug("run started", "level", g.level.String(), "seed", seed)

	listeners := ski.Listeners{
		ski.ListenerFunc(g.onEvent),
		eventLogger{level: g.level, log: logger},
	}
	g.run = ski.NewRun(g.level, ski.WithSeed(seed), ski.WithListener(listeners))
	g.paused = false
	g.status = status{}
}

// Step advances the run by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepDelta(in, g.runtime.Dt())
}

// StepDelta advances the run by dt seconds. The simulation clamps long frames.
func (g *Game) StepDelta(in core.InputFrame, dt float64) core.StepResult {
	if g.run == nil {
		g.Reset(g.runtime)
	}
	s := g.run.State()

	if s.GameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.run.Step(ToInput(in, s.Airborne), dt)
	g.status.tick(dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{}
	}
	s := g.run.State()
	return core.GameState{
		Score:    s.Score,
		Distance: s.Distance,
		Elapsed:  s.Elapsed,
		GameOver: s.GameOver,
		Paused:   g.paused,
	}
}

// SetBestRun sets the stored best shown in the HUD.
func (g *Game) SetBestRun(score int, distance float64) {
	g.best = score
	g.bestDist = distance
	g.hasBest = true
}

// Snapshot exposes the simulation frame, mainly for tests and tooling.
func (g *Game) Snapshot() ski.Snapshot {
	return g.run.Snapshot()
}

// trickActions maps key actions to trick IDs in priority order.
var trickActions = []struct {
	action core.Action
	trick  string
}{
	{core.ActionTrickFlip, ski.TrickFlip},
	{core.ActionTrickFrontFlip, ski.TrickFrontFlip},
	{core.ActionTrickTuck, ski.TrickTuck},
	{core.ActionTrickSpinLeft, ski.TrickSpinLeft},
	{core.ActionTrickSpinRight, ski.TrickSpinRight},
}

// ToInput converts an input frame into simulation input. The steering keys
// spin the penguin while airborne.
func ToInput(in core.InputFrame, airborne bool) ski.Input {
	axis := in.Axis(core.ActionSteerLeft, core.ActionSteerRight)
	out := ski.Input{
		Tuck:   in.Has(core.ActionTuck),
		Spread: in.Has(core.ActionSpread),
	}
	if airborne {
		out.Spin = axis
	} else {
		out.Steer = axis
	}
	for _, ta := range trickActions {
		if in.Has(ta.action) {
			out.Trick = ta.trick
			break
		}
	}
	return out
}

// Register one game per level, easiest first.
func init() {
	for _, l := range ski.Levels {
		l := l
		registry.Register(l.String(), func() registry.Game {
			return New(l)
		})
	}
}
