// Package registry holds the playable courses. Course packages register
// factories from init(), and the platform discovers them without importing
// any course directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/penguin-ski/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation with a character
// renderer. Implementations carry no terminal dependencies.
type Game interface {
	// ID is the stable key used on the command line and in the score store.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of the configured rate.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. The screen is cleared beforehand.
	Render(dst *core.Screen)

	// State reports score, distance, and lifecycle flags.
	State() core.GameState
}

// DeltaStepper is implemented by games that can integrate a measured frame
// time instead of the fixed tick. dt is in seconds.
type DeltaStepper interface {
	StepDelta(in core.InputFrame, dt float64) core.StepResult
}

// BestRunSetter is implemented by games that show the stored best run.
type BestRunSetter interface {
	SetBestRun(score int, distance float64)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	order     []string
	mu        sync.RWMutex
)

// Register adds a factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
	order = append(order, id)
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
