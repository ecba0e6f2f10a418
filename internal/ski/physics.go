package ski

import "math"

// frictionCoefficient returns the ground friction for the active effects.
// Snowdrift resistance stacks on whichever base friction applies.
func frictionCoefficient(slippery, snowdrift bool) float64 {
	k := FrictionNormal
	if slippery {
		k = FrictionIce
	}
	if snowdrift {
		k += FrictionSnowdriftExtra
	}
	return k
}

// wingDrag returns the speed-proportional air drag for a posture.
func wingDrag(p Posture) float64 {
	switch p {
	case PostureTuck:
		return WingDragTuck
	case PostureSpread:
		return WingDragSpread
	default:
		return WingDragNeutral
	}
}

// slopeGravity is the downhill pull at the current distance. It grows with
// BaseSpeed, so a tucked penguin on plain snow settles at BaseSpeed.
func (r *Run) slopeGravity() float64 {
	return (FrictionNormal + WingDragTuck) * BaseSpeed(r.state.Distance, r.state.Level)
}

// speedCeiling is the level's hard speed cap.
func (r *Run) speedCeiling() float64 {
	return Profile(r.state.Level).Cap
}

// clampSpeed keeps speed within [0, cap].
func (r *Run) clampSpeed() {
	r.state.Speed = math.Max(0, math.Min(r.speedCeiling(), r.state.Speed))
}

// integrateSpeed applies gravity, friction, and wing drag for one ground tick.
// Friction and drag both scale with speed, so each posture has its own
// cruising speed: tuck at BaseSpeed, neutral and spread below it.
func (r *Run) integrateSpeed(dt float64) {
	s := &r.state
	resist := (frictionCoefficient(s.Slippery(), s.Snowdrifted()) + wingDrag(s.Posture)) * s.Speed
	s.Speed += (r.slopeGravity() - resist) * dt
	r.clampSpeed()
}

// CruiseSpeed is the speed a posture settles at on plain snow once
// BaseSpeed stops changing.
func CruiseSpeed(base float64, p Posture) float64 {
	return base * (FrictionNormal + WingDragTuck) / (FrictionNormal + wingDrag(p))
}

// integrateSteering updates heading as a damped second-order system.
func (r *Run) integrateSteering(in Input, dt float64) {
	s := &r.state

	steer := sign(in.Steer)
	if s.Crashed() {
		steer = 0
	}

	accelMul, speedMul, dragMul, centerMul := 1.0, 1.0, 1.0, 1.0
	if s.Slippery() {
		accelMul, speedMul, dragMul, centerMul = IceTurnAccel, IceTurnSpeed, IceDrag, IceCenter
	}

	if steer != 0 {
		accel := TurnAccel * accelMul
		// Reversing against the current lean turns harder
		if s.Heading*float64(steer) < 0 {
			accel *= CounterSteerBoost
		}
		s.HeadingVel += float64(steer) * accel * dt
		maxVel := MaxTurnSpeed * speedMul
		s.HeadingVel = math.Max(-maxVel, math.Min(maxVel, s.HeadingVel))
	} else {
		s.HeadingVel -= s.HeadingVel * math.Min(1, TurnDrag*dragMul*dt)
		s.Heading -= s.Heading * math.Min(1, CenterRate*centerMul*dt)
	}

	s.Heading += s.HeadingVel * dt
	if s.Heading > MaxAngle {
		s.Heading = MaxAngle
		if s.HeadingVel > 0 {
			s.HeadingVel = 0
		}
	} else if s.Heading < -MaxAngle {
		s.Heading = -MaxAngle
		if s.HeadingVel < 0 {
			s.HeadingVel = 0
		}
	}
}

// moveLateral slides the player sideways along the current heading.
// factor scales the motion (1 on the ground, AirDriftFactor in the air).
func (r *Run) moveLateral(dt, factor float64) {
	s := &r.state
	s.X += math.Sin(s.Heading) * s.Speed * LateralFactor * factor * dt
	s.X = math.Max(SlopeMargin, math.Min(ViewWidth-SlopeMargin, s.X))
}

// forwardSpeed is the downhill component of the current speed.
func (r *Run) forwardSpeed() float64 {
	return math.Cos(r.state.Heading) * r.state.Speed
}

// advance accrues distance and distance-based score.
func (r *Run) advance(dt float64) {
	s := &r.state
	forward := math.Max(0, r.forwardSpeed()) * dt
	s.Distance += forward

	s.ScoreFraction += forward * ScoreRate
	if s.ScoreFraction >= 1 {
		whole := math.Floor(s.ScoreFraction)
		s.Score += int(whole)
		s.ScoreFraction -= whole
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
