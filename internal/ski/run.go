// Package ski implements the gameplay simulation of a downhill penguin run:
// speed and steering physics, the obstacle field, airborne tricks, and
// collision responses. It has no rendering, audio, input-device, or storage
// dependencies; hosts drive it with Step and observe Snapshot and events.
package ski

import (
	"time"

	"github.com/vovakirdan/penguin-ski/internal/core"
)

// Posture is the wing position, which controls aerodynamic drag.
type Posture int

const (
	PostureNeutral Posture = iota
	PostureTuck            // Wings in: less drag, faster
	PostureSpread          // Wings out: more drag, braking
)

// Input is the player's intent for a single tick.
type Input struct {
	Steer  int    // -1 left, 0 none, 1 right
	Spin   int    // -1 counter-clockwise, 0 none, 1 clockwise (airborne only)
	Tuck   bool   // Wings tucked
	Spread bool   // Wings spread
	Trick  string // Trick ID pressed this tick, empty if none
}

// Posture resolves the wing inputs. Holding both cancels out.
func (in Input) Posture() Posture {
	switch {
	case in.Tuck && !in.Spread:
		return PostureTuck
	case in.Spread && !in.Tuck:
		return PostureSpread
	default:
		return PostureNeutral
	}
}

// RunState is the complete mutable state of one run.
type RunState struct {
	Level Level

	Distance      float64 // Downhill progress, never decreases
	Speed         float64 // Scroll speed, within [0, profile cap]
	Heading       float64 // Steering angle in radians, within ±MaxAngle
	HeadingVel    float64
	X             float64 // Lateral position on the slope
	Score         int
	ScoreFraction float64
	Combo         int
	Lives         int
	Posture       Posture

	SlipperyTimer  float64
	SnowdriftTimer float64

	Airborne      bool
	AirTime       float64
	AirDuration   float64
	IcyLaunch     bool
	TrickQueue    []Trick
	TrickRotation float64
	TrickTarget   float64
	SpinRotation  float64

	CrashTimer  float64 // Steering locked while > 0
	BounceTimer float64 // Landing impact animation

	Flinging   bool
	FlingTimer float64
	FlingDir   float64 // -1 or 1
	FlingFromX float64

	Invincible      bool
	InvincibleTimer float64

	GameOver bool
	Elapsed  float64
}

// Slippery reports whether the ice effect is active.
func (s *RunState) Slippery() bool { return s.SlipperyTimer > 0 }

// Snowdrifted reports whether the snowdrift effect is active.
func (s *RunState) Snowdrifted() bool { return s.SnowdriftTimer > 0 }

// Crashed reports whether the crash lock is active.
func (s *RunState) Crashed() bool { return s.CrashTimer > 0 }

// AirProgress returns airTime/airDuration clamped to [0, 1], or 0 on the ground.
func (s *RunState) AirProgress() float64 {
	if !s.Airborne || s.AirDuration <= 0 {
		return 0
	}
	p := s.AirTime / s.AirDuration
	if p > 1 {
		return 1
	}
	return p
}

// Option configures a Run.
type Option func(*Run)

// WithRandom sets the random source used for spawning.
func WithRandom(rnd Random) Option {
	return func(r *Run) { r.rnd = rnd }
}

// WithSeed seeds a math/rand source.
func WithSeed(seed int64) Option {
	return func(r *Run) { r.rnd = NewRandom(seed) }
}

// WithListener registers a listener that receives every event.
func WithListener(l Listener) Option {
	return func(r *Run) { r.listener = l }
}

// Run is one gameplay session: state, obstacle field, and collaborators.
type Run struct {
	state    RunState
	field    *Field
	rnd      Random
	listener Listener
	events   []Event
}

// NewRun creates a run at the given level, ready to Step.
func NewRun(level Level, opts ...Option) *Run {
	r := &Run{}
	for _, opt := range opts {
		opt(r)
	}
	if r.rnd == nil {
		r.rnd = NewRandom(time.Now().UnixNano())
	}
	r.field = NewField(r.rnd)
	r.Start(level)
	return r
}

// Start resets the run to the beginning of the given level.
func (r *Run) Start(level Level) {
	level = level.clamp()
	r.state = RunState{
		Level:      level,
		Speed:      Profile(level).Start,
		X:          ViewWidth / 2,
		Lives:      StartingLives,
		TrickQueue: make([]Trick, 0, 4),
	}
	r.field.Reset()
	r.events = r.events[:0]
}

// Reset restarts the run at its current level.
func (r *Run) Reset() {
	r.Start(r.state.Level)
}

// State returns a copy of the current state.
func (r *Run) State() RunState {
	s := r.state
	s.TrickQueue = append([]Trick(nil), r.state.TrickQueue...)
	return s
}

// Field exposes the obstacle field.
func (r *Run) Field() *Field {
	return r.field
}

// PlayerY is the player's fixed row in world space.
func PlayerY() float64 {
	return ViewHeight * PlayerRow
}

// PlayerBox returns the player's ground-level collision box.
func (r *Run) PlayerBox() core.Box {
	return newPlayerBox(r.state.X)
}

// Step advances the simulation by dt seconds and returns the events that fired.
// The returned slice is only valid until the next call.
func (r *Run) Step(in Input, dt float64) []Event {
	r.events = r.events[:0]
	s := &r.state
	if s.GameOver || !(dt > 0) {
		return r.events
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	s.Elapsed += dt
	s.Posture = in.Posture()

	r.tickTimers(dt)

	switch {
	case s.Flinging:
		r.updateFling(dt)
	case s.Airborne:
		r.updateAirborne(in, dt)
	default:
		r.integrateSpeed(dt)
		r.integrateSteering(in, dt)
		r.moveLateral(dt, 1)
	}

	r.advance(dt)
	r.field.Update(dt, s.Speed, s.Distance)

	if !s.Flinging {
		r.detectCollisions(dt)
	}
	r.field.Compact()

	if s.Airborne && s.AirTime >= s.AirDuration {
		r.land()
	}

	return r.events
}

// tickTimers counts down every status timer.
func (r *Run) tickTimers(dt float64) {
	s := &r.state
	s.SlipperyTimer = countdown(s.SlipperyTimer, dt)
	s.SnowdriftTimer = countdown(s.SnowdriftTimer, dt)
	s.CrashTimer = countdown(s.CrashTimer, dt)
	s.BounceTimer = countdown(s.BounceTimer, dt)
	if s.Invincible && s.InvincibleTimer > 0 {
		s.InvincibleTimer = countdown(s.InvincibleTimer, dt)
		if s.InvincibleTimer == 0 {
			s.Invincible = false
		}
	}
}

func countdown(t, dt float64) float64 {
	if t <= dt {
		return 0
	}
	return t - dt
}

// emit records an event and forwards it to the listener.
func (r *Run) emit(e Event) {
	e.Combo = r.state.Combo
	e.Lives = r.state.Lives
	r.events = append(r.events, e)
	if r.listener != nil {
		r.listener.OnEvent(e)
	}
}
