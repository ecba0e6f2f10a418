package ski

import (
	"math"
	"math/rand"
	"testing"
)

func TestFrictionCoefficient(t *testing.T) {
	tests := []struct {
		slippery, snowdrift bool
		expected            float64
	}{
		{false, false, FrictionNormal},
		{true, false, FrictionIce},
		{false, true, FrictionNormal + FrictionSnowdriftExtra},
		{true, true, FrictionIce + FrictionSnowdriftExtra},
	}

	for _, tc := range tests {
		if got := frictionCoefficient(tc.slippery, tc.snowdrift); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("frictionCoefficient(%v, %v) = %v, expected %v", tc.slippery, tc.snowdrift, got, tc.expected)
		}
	}
}

func TestPostureAffectsSpeed(t *testing.T) {
	speedAfter := func(in Input) float64 {
		r := newTestRun()
		stepClear(r, in)
		return r.state.Speed
	}

	tuck := speedAfter(Input{Tuck: true})
	neutral := speedAfter(Input{})
	spread := speedAfter(Input{Spread: true})
	both := speedAfter(Input{Tuck: true, Spread: true})

	if !(tuck > neutral && neutral > spread) {
		t.Errorf("expected tuck > neutral > spread, got %v, %v, %v", tuck, neutral, spread)
	}
	if both != neutral {
		t.Errorf("tuck+spread = %v, expected neutral %v", both, neutral)
	}
}

func TestPostureHeldForAMinute(t *testing.T) {
	postures := []struct {
		name string
		in   Input
		p    Posture
	}{
		{"tuck", Input{Tuck: true}, PostureTuck},
		{"neutral", Input{}, PostureNeutral},
		{"spread", Input{Spread: true}, PostureSpread},
	}

	for _, level := range Levels {
		t.Run(level.String(), func(t *testing.T) {
			cp := Profile(level).Cap
			speeds := make([]float64, len(postures))
			distances := make([]float64, len(postures))

			for i, tc := range postures {
				r := NewRun(level, WithRandom(newSeq(0.5)))
				r.field.Reset()
				for tick := 0; tick < 3600; tick++ {
					stepClear(r, tc.in)
					if r.state.Speed < 0 || r.state.Speed > cp {
						t.Fatalf("%s tick %d: speed %v outside [0, %v]", tc.name, tick, r.state.Speed, cp)
					}
				}
				speeds[i] = r.state.Speed
				distances[i] = r.state.Distance

				cruise := CruiseSpeed(cp, tc.p)
				if math.Abs(speeds[i]-cruise) > 2 {
					t.Errorf("%s: speed %v after a minute, expected to settle near %v", tc.name, speeds[i], cruise)
				}
			}

			for i := 1; i < len(postures); i++ {
				if speeds[i-1] <= speeds[i] {
					t.Errorf("%s speed %v should exceed %s speed %v",
						postures[i-1].name, speeds[i-1], postures[i].name, speeds[i])
				}
				if distances[i-1] <= distances[i] {
					t.Errorf("%s distance %v should exceed %s distance %v",
						postures[i-1].name, distances[i-1], postures[i].name, distances[i])
				}
			}
		})
	}
}

func TestCruiseSpeed(t *testing.T) {
	if got := CruiseSpeed(500, PostureTuck); math.Abs(got-500) > 1e-9 {
		t.Errorf("tuck cruise = %v, expected 500", got)
	}
	neutral := CruiseSpeed(500, PostureNeutral)
	spread := CruiseSpeed(500, PostureSpread)
	if !(neutral < 500 && spread < neutral && spread > 0) {
		t.Errorf("cruise speeds neutral %v spread %v out of order", neutral, spread)
	}
}

func TestSteeringMomentum(t *testing.T) {
	r := newTestRun()

	stepClear(r, Input{Steer: 1})
	if r.state.HeadingVel <= 0 || r.state.Heading <= 0 {
		t.Fatalf("steering right should turn right: vel=%v heading=%v", r.state.HeadingVel, r.state.Heading)
	}

	for i := 0; i < 120; i++ {
		stepClear(r, Input{Steer: 1})
	}
	if r.state.Heading != MaxAngle {
		t.Errorf("heading = %v, expected clamp at %v", r.state.Heading, MaxAngle)
	}
	if r.state.HeadingVel > 0 {
		t.Errorf("outward velocity should be zeroed at the clamp, got %v", r.state.HeadingVel)
	}

	// Released, the penguin drifts back toward straight downhill
	for i := 0; i < 300; i++ {
		stepClear(r, Input{})
	}
	if math.Abs(r.state.Heading) > 0.05 {
		t.Errorf("heading = %v, expected near 0 after release", r.state.Heading)
	}
}

func TestCounterSteerIsFaster(t *testing.T) {
	velAfter := func(heading float64) float64 {
		r := newTestRun()
		r.state.Heading = heading
		stepClear(r, Input{Steer: 1})
		return r.state.HeadingVel
	}
	if counter, with := velAfter(-0.5), velAfter(0.5); counter <= with {
		t.Errorf("counter-steer vel %v should exceed same-direction vel %v", counter, with)
	}
}

func TestIceSteering(t *testing.T) {
	r := newTestRun()
	r.state.SlipperyTimer = 10
	stepClear(r, Input{Steer: 1})
	icy := r.state.HeadingVel

	r2 := newTestRun()
	stepClear(r2, Input{Steer: 1})
	if icy >= r2.state.HeadingVel {
		t.Errorf("ice steering vel %v should be below normal %v", icy, r2.state.HeadingVel)
	}
}

func TestCrashLockIgnoresSteering(t *testing.T) {
	r := newTestRun()
	r.state.CrashTimer = CrashLockDuration

	stepClear(r, Input{Steer: -1})
	if r.state.HeadingVel != 0 || r.state.Heading != 0 {
		t.Errorf("steering during crash lock: vel=%v heading=%v", r.state.HeadingVel, r.state.Heading)
	}

	for i := 0; i < 40; i++ {
		stepClear(r, Input{})
	}
	stepClear(r, Input{Steer: -1})
	if r.state.HeadingVel >= 0 {
		t.Error("steering should work once the lock expires")
	}
}

func TestLateralBounds(t *testing.T) {
	r := newTestRun()
	for i := 0; i < 600; i++ {
		stepClear(r, Input{Steer: 1, Tuck: true})
	}
	if r.state.X != ViewWidth-SlopeMargin {
		t.Errorf("x = %v, expected right margin %v", r.state.X, ViewWidth-SlopeMargin)
	}
}

func TestStepDt(t *testing.T) {
	r := newTestRun()

	for _, dt := range []float64{0, -1, math.NaN()} {
		if events := r.Step(Input{}, dt); len(events) != 0 || r.state.Elapsed != 0 {
			t.Errorf("Step(dt=%v) should be a no-op", dt)
		}
	}

	r.Step(Input{}, 5)
	if r.state.Elapsed != MaxStep {
		t.Errorf("elapsed = %v, expected dt clamped to %v", r.state.Elapsed, MaxStep)
	}
}

func TestSpeedBoundsUnderRandomInput(t *testing.T) {
	for _, level := range Levels {
		t.Run(level.String(), func(t *testing.T) {
			input := rand.New(rand.NewSource(int64(level) + 11))
			r := NewRun(level, WithSeed(99))
			limit := Profile(level).Cap

			prevDistance := 0.0
			for i := 0; i < 10000; i++ {
				in := Input{
					Steer:  input.Intn(3) - 1,
					Spin:   input.Intn(3) - 1,
					Tuck:   input.Intn(2) == 0,
					Spread: input.Intn(4) == 0,
				}
				if input.Intn(20) == 0 {
					in.Trick = Tricks()[input.Intn(5)].ID
				}
				dt := input.Float64() * 0.15

				r.Step(in, dt)
				s := r.state
				if s.Speed < 0 || s.Speed > limit {
					t.Fatalf("tick %d: speed %v outside [0, %v]", i, s.Speed, limit)
				}
				if math.Abs(s.Heading) > MaxAngle {
					t.Fatalf("tick %d: heading %v outside ±%v", i, s.Heading, MaxAngle)
				}
				if s.Distance < prevDistance {
					t.Fatalf("tick %d: distance decreased", i)
				}
				if s.Combo < 0 || s.Lives < 0 {
					t.Fatalf("tick %d: combo %d lives %d", i, s.Combo, s.Lives)
				}
				if s.X < SlopeMargin || s.X > ViewWidth-SlopeMargin {
					t.Fatalf("tick %d: x %v off the slope", i, s.X)
				}
				prevDistance = s.Distance

				if s.GameOver {
					r.Reset()
					prevDistance = 0
				}
			}
		})
	}
}

func TestMediumRunReachesTopTier(t *testing.T) {
	r := newTestRun()

	prev := r.state.Speed
	for i := 0; i < 100000 && (r.state.Distance < 4000 || r.state.Speed < 499); i++ {
		stepClear(r, Input{Tuck: true})
		if r.field.Len() != 0 {
			t.Fatalf("tick %d: obstacle reached the player", i)
		}
		if r.state.Speed < prev || r.state.Speed > 500 {
			t.Fatalf("tick %d: speed %v after %v, expected a steady climb to 500", i, r.state.Speed, prev)
		}
		prev = r.state.Speed
	}
	if r.state.Distance < 4000 {
		t.Fatalf("distance %v never reached 4000", r.state.Distance)
	}
	if got := Difficulty(r.state.Distance); got != MaxTier {
		t.Errorf("tier = %d, expected %d", got, MaxTier)
	}
	if r.state.Speed < 499 {
		t.Errorf("speed = %v, expected to approach 500", r.state.Speed)
	}
}

func TestScoreAccruesWithDistance(t *testing.T) {
	r := newTestRun()
	for i := 0; i < 600; i++ {
		stepClear(r, Input{})
	}
	expected := int(r.state.Distance * ScoreRate)
	if r.state.Score < expected-1 || r.state.Score > expected+1 {
		t.Errorf("score = %d after %v distance, expected about %d", r.state.Score, r.state.Distance, expected)
	}
}
