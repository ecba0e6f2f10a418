package ski

import "math"

// Autopilot is a simple controller: it steers around hazards ahead, drifts
// toward fish and ramps, tucks on open snow, and queues tricks in the air.
type Autopilot struct {
	Lookahead float64 // How far below the player to scan
	Clearance float64 // Lateral gap it tries to keep from hazards
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 220, Clearance: 48}
}

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(snap Snapshot) Input {
	s := snap.State
	var in Input
	if s.GameOver || s.Flinging {
		return in
	}

	if s.Airborne {
		in.Trick = a.pickTrick(s)
		return in
	}

	py := snap.Player.Y
	threat, target := a.scan(snap.Objects, s.X, py)

	switch {
	case threat != nil:
		if s.X > threat.X || (s.X == threat.X && s.X < ViewWidth/2) {
			in.Steer = 1
		} else {
			in.Steer = -1
		}
		// Near the edge, cut back across instead
		if s.X < SlopeMargin+a.Clearance && in.Steer < 0 {
			in.Steer = 1
		} else if s.X > ViewWidth-SlopeMargin-a.Clearance && in.Steer > 0 {
			in.Steer = -1
		}
		in.Spread = threat.Y-py < a.Lookahead/3
	case target != nil:
		in.Steer = a.steerToward(s, target.X)
		in.Tuck = true
	default:
		in.Steer = a.steerToward(s, ViewWidth/2)
		in.Tuck = true
	}
	return in
}

// pickTrick returns the best trick whose rotation can still finish before
// touchdown, or "" if none fits.
func (a *Autopilot) pickTrick(s RunState) string {
	timeLeft := s.AirDuration - s.AirTime
	pending := math.Abs(s.TrickTarget - s.TrickRotation)
	for _, t := range Tricks() {
		if !CanQueueTrick(s.TrickQueue, t, timeLeft) {
			continue
		}
		// One rotating trick per jump
		if t.Rotation != 0 && s.TrickTarget != 0 {
			continue
		}
		need := (pending + math.Abs(t.Rotation)) / TrickRotationRate
		if need < timeLeft {
			return t.ID
		}
	}
	return ""
}

// scan returns the nearest hazard in the player's lane and the nearest
// reward ahead, either of which may be nil.
func (a *Autopilot) scan(objects []SlopeObject, x, py float64) (threat, target *SlopeObject) {
	for i := range objects {
		o := &objects[i]
		ahead := o.Y - py
		if ahead < 0 || ahead > a.Lookahead {
			continue
		}
		lane := math.Abs(o.X-x) < (o.Width+PlayerWidth)/2+a.Clearance/2
		switch o.Type {
		case Rock, Crevasse, Tree:
			if lane && (threat == nil || o.Y < threat.Y) {
				threat = o
			}
		case Fish, Ramp:
			if target == nil || o.Y < target.Y {
				target = o
			}
		}
	}
	return threat, target
}

// steerToward returns a steering command that settles on column x.
func (a *Autopilot) steerToward(s RunState, x float64) int {
	dx := x - s.X
	switch {
	case dx > 8 && s.Heading < 0.5:
		return 1
	case dx < -8 && s.Heading > -0.5:
		return -1
	default:
		return 0
	}
}
