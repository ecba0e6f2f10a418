package ski

import (
	"math"
	"testing"
)

func TestNewRunStart(t *testing.T) {
	tests := []struct {
		level Level
		speed float64
	}{
		{LevelEasy, 160},
		{LevelMedium, 200},
		{LevelHard, 260},
		{Level(9), 260},
	}

	for _, tc := range tests {
		r := NewRun(tc.level, WithSeed(1))
		s := r.State()
		if s.Speed != tc.speed {
			t.Errorf("%s: start speed = %v, expected %v", tc.level, s.Speed, tc.speed)
		}
		if s.X != ViewWidth/2 || s.Lives != StartingLives || s.Distance != 0 || s.Score != 0 {
			t.Errorf("%s: unexpected start state %+v", tc.level, s)
		}
		if r.Field().Len() != 0 {
			t.Errorf("%s: field should start empty", tc.level)
		}
	}
}

func TestResetClearsRun(t *testing.T) {
	r := NewRun(LevelHard, WithSeed(3))
	for i := 0; i < 300; i++ {
		r.Step(Input{Tuck: true}, testDt)
	}
	if r.State().Distance == 0 {
		t.Fatal("run did not move")
	}

	r.Reset()
	s := r.State()
	if s.Level != LevelHard || s.Distance != 0 || s.Score != 0 || s.Speed != 260 {
		t.Errorf("state after Reset = %+v", s)
	}
	if r.Field().Len() != 0 {
		t.Error("Reset should clear the field")
	}
}

func TestStateIsCopy(t *testing.T) {
	r := newTestRun()
	r.launch(2)
	stepClear(r, Input{Trick: TrickTuck})

	s := r.State()
	s.TrickQueue[0] = Trick{ID: "changed"}
	if r.state.TrickQueue[0].ID != TrickTuck {
		t.Error("State() should not share the trick queue")
	}
}

func TestListenerSeesEveryEvent(t *testing.T) {
	var heard []Event
	var second int
	r := NewRun(LevelMedium,
		WithRandom(newSeq(0.5)),
		WithListener(Listeners{
			ListenerFunc(func(e Event) { heard = append(heard, e) }),
			ListenerFunc(func(Event) { second++ }),
		}),
	)
	r.field.Reset()
	place(r, Fish, 0)
	place(r, Snowdrift, 0)

	events := stepClear(r, Input{})
	if len(events) != 2 || len(heard) != 2 || second != 2 {
		t.Fatalf("returned %d events, listener heard %d and %d", len(events), len(heard), second)
	}
	for i := range events {
		if events[i] != heard[i] {
			t.Errorf("event %d: returned %+v, heard %+v", i, events[i], heard[i])
		}
	}
	if heard[0].Lives != StartingLives {
		t.Errorf("event lives = %d, expected %d", heard[0].Lives, StartingLives)
	}
}

func TestSnapshot(t *testing.T) {
	r := newTestRun()
	place(r, Tree, 100)
	r.launch(1)
	r.state.AirTime = 0.5
	r.state.TrickRotation = 1
	r.state.SpinRotation = 0.5

	snap := r.Snapshot()
	p := snap.Player
	if !p.Airborne || p.AirHeight != AirArcHeight {
		t.Errorf("mid-jump height = %v, expected %v", p.AirHeight, AirArcHeight)
	}
	if math.Abs(p.Scale-(1+AirScaleGrowth)) > 1e-9 {
		t.Errorf("peak scale = %v", p.Scale)
	}
	if p.Rotation != 1.5 {
		t.Errorf("rotation = %v, expected 1.5", p.Rotation)
	}
	if p.Y != PlayerY() || p.X != ViewWidth/2 {
		t.Errorf("player at (%v, %v)", p.X, p.Y)
	}
	if len(snap.Objects) != 1 || snap.Objects[0].Type != Tree {
		t.Errorf("objects = %+v", snap.Objects)
	}
	if snap.Tier != 0 || snap.Target != 200 || snap.Cap != 500 {
		t.Errorf("tier = %d target = %v cap = %v", snap.Tier, snap.Target, snap.Cap)
	}

	// Mutating the snapshot does not touch the run
	snap.Objects[0].X = -1
	if r.field.Objects()[0].X == -1 {
		t.Error("snapshot objects should be copies")
	}
}

func TestSnapshotInvincibleFlash(t *testing.T) {
	r := newTestRun()
	r.state.Invincible = true

	visible := map[bool]int{}
	for timer := 2.0; timer > 0; timer -= 0.01 {
		r.state.InvincibleTimer = timer
		visible[r.Snapshot().Player.Visible]++
	}
	if visible[true] == 0 || visible[false] == 0 {
		t.Errorf("player should flash while invincible: %v", visible)
	}

	r.state.Invincible = false
	if !r.Snapshot().Player.Visible {
		t.Error("player should be visible when not invincible")
	}
}

func TestSnapshotBounce(t *testing.T) {
	r := newTestRun()
	r.state.BounceTimer = BounceDuration / 2
	if got := r.Snapshot().Player.Bounce; math.Abs(got-BounceHeight) > 1e-9 {
		t.Errorf("bounce at half time = %v, expected %v", got, BounceHeight)
	}
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	a := NewRun(LevelHard, WithSeed(42))
	b := NewRun(LevelHard, WithSeed(42))
	pilot := NewAutopilot()

	for i := 0; i < 2000; i++ {
		ia := pilot.Decide(a.Snapshot())
		ib := pilot.Decide(b.Snapshot())
		a.Step(ia, testDt)
		b.Step(ib, testDt)
	}

	sa, sb := a.State(), b.State()
	if sa.Score != sb.Score || sa.Distance != sb.Distance || sa.Lives != sb.Lives {
		t.Errorf("runs diverged: %+v vs %+v", sa, sb)
	}
}
