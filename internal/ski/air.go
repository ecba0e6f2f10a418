package ski

import "math"

// Landing is the quality of a touchdown.
type Landing int

const (
	LandingClean Landing = iota
	LandingSloppy
	LandingCrash
)

// String returns the landing name.
func (l Landing) String() string {
	switch l {
	case LandingClean:
		return "clean"
	case LandingSloppy:
		return "sloppy"
	default:
		return "crash"
	}
}

// ClassifyLanding maps a rotation error in radians to a landing quality.
func ClassifyLanding(rotationError float64) Landing {
	rotationError = math.Abs(rotationError)
	switch {
	case math.IsNaN(rotationError):
		return LandingCrash
	case rotationError < LandingCleanThreshold:
		return LandingClean
	case rotationError < LandingSloppyThreshold:
		return LandingSloppy
	default:
		return LandingCrash
	}
}

// LandingResult is the outcome of resolving a landing.
type LandingResult struct {
	Quality Landing
	Points  int
	Combo   int // Combo after the landing
}

// ResolveLanding scores a landing. trickScore already includes spin bonuses.
// Clean landings multiply by max(1, combo), doubled for icy launches, and bump
// the combo; sloppy ones keep it; crashes reset it. A clean landing with
// nothing performed leaves the combo alone.
func ResolveLanding(rotationError float64, trickScore, combo int, icy bool) LandingResult {
	q := ClassifyLanding(rotationError)
	switch q {
	case LandingClean:
		if trickScore <= 0 {
			return LandingResult{Quality: q, Combo: combo}
		}
		points := trickScore * max(1, combo)
		if icy {
			points *= 2
		}
		return LandingResult{Quality: q, Points: points, Combo: combo + 1}
	case LandingSloppy:
		return LandingResult{Quality: q, Combo: combo}
	default:
		return LandingResult{Quality: q, Combo: 0}
	}
}

// ArcHeight returns the jump height at a progress in [0, 1].
func ArcHeight(progress float64) float64 {
	p := math.Max(0, math.Min(1, progress))
	return AirArcHeight * (1 - (2*p-1)*(2*p-1))
}

// rampAirDuration scales air time with takeoff speed.
func rampAirDuration(speed float64) float64 {
	return AirBaseDuration + math.Max(0, speed-AirSpeedPivot)*AirSpeedFactor
}

// launch puts the player in the air for duration seconds.
func (r *Run) launch(duration float64) {
	s := &r.state
	s.IcyLaunch = s.Slippery()
	if s.IcyLaunch {
		duration *= AirIcyMultiplier
	}
	s.Airborne = true
	s.AirTime = 0
	s.AirDuration = duration
	s.TrickQueue = s.TrickQueue[:0]
	s.TrickRotation = 0
	s.TrickTarget = 0
	s.SpinRotation = 0
	s.BounceTimer = 0
}

// updateAirborne advances the jump: passive drift, trick input, rotations.
func (r *Run) updateAirborne(in Input, dt float64) {
	s := &r.state
	s.AirTime += dt

	r.moveLateral(dt, AirDriftFactor)

	if in.Trick != "" {
		r.queueTrick(in.Trick)
	}

	// Trick rotation approaches its target at a constant rate
	diff := s.TrickTarget - s.TrickRotation
	step := TrickRotationRate * dt
	if math.Abs(diff) <= step {
		s.TrickRotation = s.TrickTarget
	} else {
		s.TrickRotation += math.Copysign(step, diff)
	}

	if spin := sign(in.Spin); spin != 0 {
		s.SpinRotation += float64(spin) * SpinRotationRate * dt
	}
}

// queueTrick adds a trick if the catalog knows it and the rules allow it.
func (r *Run) queueTrick(id string) {
	s := &r.state
	trick, ok := LookupTrick(id)
	if !ok {
		return
	}
	if !CanQueueTrick(s.TrickQueue, trick, s.AirDuration-s.AirTime) {
		return
	}
	s.TrickQueue = append(s.TrickQueue, trick)
	s.TrickTarget += trick.Rotation
	r.emit(Event{Kind: EventTrickQueued, Trick: trick.Name, Points: trick.Points})
}

// spinHalves counts completed half rotations of free spin.
func spinHalves(spin float64) int {
	return int(math.Abs(spin)/math.Pi + 1e-9)
}

// spinError is how far the free spin is from a whole half rotation.
func spinError(spin float64) float64 {
	a := math.Abs(spin)
	return math.Abs(a - math.Round(a/math.Pi)*math.Pi)
}

// RotationError is the landing misalignment in radians.
func (s *RunState) RotationError() float64 {
	return math.Abs(s.TrickRotation-s.TrickTarget) + spinError(s.SpinRotation)
}

// PendingTrickScore is what a clean landing would be worth before multipliers.
func (s *RunState) PendingTrickScore() int {
	return CalcTrickScore(s.TrickQueue) + spinHalves(s.SpinRotation)*SpinHalfPoints
}

// land resolves the jump and returns the player to the ground.
func (r *Run) land() {
	s := &r.state
	res := ResolveLanding(s.RotationError(), s.PendingTrickScore(), s.Combo, s.IcyLaunch)

	s.Airborne = false
	s.AirTime = 0
	s.AirDuration = 0
	s.IcyLaunch = false
	s.TrickQueue = s.TrickQueue[:0]
	s.TrickRotation = 0
	s.TrickTarget = 0
	s.SpinRotation = 0

	s.Score += res.Points
	s.Combo = res.Combo

	switch res.Quality {
	case LandingClean:
		r.emit(Event{Kind: EventLandingClean, Points: res.Points})
	case LandingSloppy:
		r.emit(Event{Kind: EventLandingSloppy})
	case LandingCrash:
		s.CrashTimer = CrashLockDuration
		s.BounceTimer = BounceDuration
		s.HeadingVel = 0
		r.emit(Event{Kind: EventLandingCrash})
	}
}
