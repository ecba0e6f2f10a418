package ski

import "math"

// PlayerView is the presentation-facing view of the penguin.
type PlayerView struct {
	X, Y        float64
	Heading     float64
	AirHeight   float64 // Height above the slope along the jump arc
	Bounce      float64 // Impact bounce offset after a crash landing
	Scale       float64 // Sprite scale, grows with height
	Rotation    float64 // Trick plus spin rotation in radians
	Posture     Posture
	Airborne    bool
	Slippery    bool
	Snowdrifted bool
	Invincible  bool
	Visible     bool // False on the off phase of the invincibility flash
	Crashed     bool
	Flinging    bool
}

// Snapshot is everything a presentation layer needs to draw one frame.
type Snapshot struct {
	State   RunState
	Player  PlayerView
	Objects []SlopeObject
	Tier    Tier
	Target  float64 // Tucked cruising speed at the current distance
	Cap     float64
}

// Snapshot captures the current frame.
func (r *Run) Snapshot() Snapshot {
	s := r.State()
	return Snapshot{
		State:   s,
		Player:  playerView(&s),
		Objects: r.field.Objects(),
		Tier:    Difficulty(s.Distance),
		Target:  BaseSpeed(s.Distance, s.Level),
		Cap:     r.speedCeiling(),
	}
}

func playerView(s *RunState) PlayerView {
	v := PlayerView{
		X:           s.X,
		Y:           PlayerY(),
		Heading:     s.Heading,
		Scale:       1,
		Posture:     s.Posture,
		Airborne:    s.Airborne,
		Slippery:    s.Slippery(),
		Snowdrifted: s.Snowdrifted(),
		Invincible:  s.Invincible,
		Visible:     true,
		Crashed:     s.Crashed(),
		Flinging:    s.Flinging,
	}
	if s.Airborne {
		v.AirHeight = ArcHeight(s.AirProgress())
		v.Scale = 1 + AirScaleGrowth*v.AirHeight/AirArcHeight
		v.Rotation = s.TrickRotation + s.SpinRotation
	}
	if s.BounceTimer > 0 {
		v.Bounce = BounceHeight * math.Sin(math.Pi*s.BounceTimer/BounceDuration)
	}
	if s.Invincible {
		v.Visible = int(s.InvincibleTimer*InvincibleFlashRate)%2 == 0
	}
	return v
}
