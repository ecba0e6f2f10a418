package ski

import (
	"math"

	"github.com/vovakirdan/penguin-ski/internal/core"
)

func newPlayerBox(x float64) core.Box {
	return core.NewBox(x, PlayerY(), PlayerWidth, PlayerHeight).Scale(HitboxShrink)
}

// Centeredness measures how squarely two boxes meet on the lateral axis:
// 1 when their centers line up, 0 at the edge of contact.
func Centeredness(player, obj core.Box) float64 {
	reach := (player.W + obj.W) / 2
	if reach <= 0 {
		return 1
	}
	c := 1 - math.Abs(player.X-obj.X)/reach
	return math.Max(0, math.Min(1, c))
}

// detectCollisions applies contact responses against every overlapping object.
// On the ground, a response that launches, flings, or ends the run stops the scan.
func (r *Run) detectCollisions(dt float64) {
	s := &r.state
	player := r.PlayerBox()

	r.field.Each(func(o *SlopeObject) bool {
		box := o.Box()
		if !player.Overlaps(box) {
			return true
		}
		if s.Airborne {
			r.flyOver(o)
			return true
		}
		return r.collide(o, player, box, dt)
	})
}

// flyOver awards the jump-over bonus once per object.
func (r *Run) flyOver(o *SlopeObject) {
	if !o.Type.flyoverable() || o.flown {
		return
	}
	o.flown = true
	r.state.Score += FlyoverPoints
	r.emit(Event{Kind: EventFlyover, Points: FlyoverPoints, Object: o.Type})
}

// collide handles ground contact with o and reports whether scanning continues.
func (r *Run) collide(o *SlopeObject, player, box core.Box, dt float64) bool {
	s := &r.state
	if o.Type.IsHazard() {
		if s.Invincible {
			return true
		}
		r.hitHazard(o)
		return false
	}

	switch o.Type {
	case Tree:
		if o.Hit {
			s.Speed -= TreeContactDrag * dt
			r.clampSpeed()
			return true
		}
		c := Centeredness(player, box)
		o.Hit = true
		s.Speed -= TreeGrazeDecel + TreeCenterDecel*c
		r.clampSpeed()
		s.Combo = 0
		r.emit(Event{Kind: EventTreeHit, Centeredness: c, Object: Tree})

	case Snowdrift:
		s.SnowdriftTimer = SnowdriftDuration
		r.field.Remove(o.Handle)
		r.emit(Event{Kind: EventSnowdriftHit, Object: Snowdrift})

	case Ice:
		s.SlipperyTimer = SlipperyDuration
		if o.Hit {
			return true
		}
		o.Hit = true
		points := IcePoints * max(1, s.Combo)
		s.Score += points
		s.Combo++
		s.Speed *= 1 + IceSpeedBoost
		r.clampSpeed()
		r.emit(Event{Kind: EventIceEntered, Points: points, Object: Ice})

	case Mogul:
		r.field.Remove(o.Handle)
		r.launch(MogulAirDuration)
		r.emit(Event{Kind: EventMogulLaunch, Object: Mogul})
		return false

	case Ramp:
		r.field.Remove(o.Handle)
		r.launch(rampAirDuration(s.Speed))
		r.emit(Event{Kind: EventRampLaunch, Object: Ramp})
		return false

	case Fish:
		r.field.Remove(o.Handle)
		s.Score += FishPoints
		r.emit(Event{Kind: EventFishCollected, Points: FishPoints, Object: Fish})
	}
	return true
}

// hitHazard costs a life and either ends the run or starts a fling.
func (r *Run) hitHazard(o *SlopeObject) {
	s := &r.state
	r.field.Remove(o.Handle)
	s.Lives--
	s.Combo = 0
	r.emit(Event{Kind: EventRockHit, Object: o.Type})

	if s.Lives <= 0 {
		s.Lives = 0
		s.GameOver = true
		s.Speed = 0
		r.emit(Event{Kind: EventGameOver})
		return
	}

	dir := 1.0
	if s.X < o.X || (s.X == o.X && s.X > ViewWidth/2) {
		dir = -1
	}
	s.Flinging = true
	s.FlingTimer = FlingDuration
	s.FlingDir = dir
	s.FlingFromX = s.X
	s.Heading = 0
	s.HeadingVel = 0
	s.Speed = math.Max(0, s.Speed-RockDecel)
	r.emit(Event{Kind: EventFling})
}

// updateFling moves the player along the fling path and respawns at its end.
func (r *Run) updateFling(dt float64) {
	s := &r.state
	s.FlingTimer = countdown(s.FlingTimer, dt)

	p := 1 - s.FlingTimer/FlingDuration
	ease := 1 - (1-p)*(1-p)
	s.X = s.FlingFromX + s.FlingDir*FlingDistance*ease
	s.X = math.Max(SlopeMargin, math.Min(ViewWidth-SlopeMargin, s.X))

	if s.FlingTimer > 0 {
		return
	}
	r.respawn()
}

func (r *Run) respawn() {
	s := &r.state
	s.Flinging = false
	s.FlingTimer = 0
	s.FlingDir = 0
	s.X = ViewWidth / 2
	s.Speed = math.Min(s.Speed, Profile(s.Level).Start)
	s.Heading = 0
	s.HeadingVel = 0
	s.CrashTimer = 0
	s.Invincible = true
	s.InvincibleTimer = InvincibleDuration
	r.emit(Event{Kind: EventRespawn})
}
