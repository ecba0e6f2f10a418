package ski

import "testing"

func TestAutopilotAvoidsRockAhead(t *testing.T) {
	pilot := NewAutopilot()

	tests := []struct {
		name    string
		playerX float64
		rockX   float64
		steer   int
	}{
		{"rock slightly right", 240, 250, -1},
		{"rock slightly left", 240, 230, 1},
		{"cornered on the left", SlopeMargin + 10, SlopeMargin + 20, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := Snapshot{
				State:   RunState{X: tc.playerX, Speed: 200},
				Player:  PlayerView{X: tc.playerX, Y: PlayerY()},
				Objects: []SlopeObject{{Type: Rock, X: tc.rockX, Y: PlayerY() + 100, Width: 50, Height: 40}},
			}
			if got := pilot.Decide(snap).Steer; got != tc.steer {
				t.Errorf("Steer = %d, expected %d", got, tc.steer)
			}
		})
	}
}

func TestAutopilotChasesFish(t *testing.T) {
	pilot := NewAutopilot()
	snap := Snapshot{
		State:   RunState{X: 240, Speed: 200},
		Player:  PlayerView{X: 240, Y: PlayerY()},
		Objects: []SlopeObject{{Type: Fish, X: 330, Y: PlayerY() + 150, Width: 18, Height: 12}},
	}
	in := pilot.Decide(snap)
	if in.Steer != 1 || !in.Tuck {
		t.Errorf("Decide() = %+v, expected tuck and steer right", in)
	}
}

func TestAutopilotTricks(t *testing.T) {
	pilot := NewAutopilot()

	s := RunState{Airborne: true, AirDuration: 1.2, AirTime: 0.1}
	if got := pilot.Decide(Snapshot{State: s}).Trick; got != TrickFlip {
		t.Errorf("early in a long jump: trick %q, expected flip", got)
	}

	flip, _ := LookupTrick(TrickFlip)
	s.TrickQueue = []Trick{flip}
	s.TrickTarget = flip.Rotation
	if got := pilot.Decide(Snapshot{State: s}).Trick; got != TrickTuck {
		t.Errorf("after a flip: trick %q, expected tuck", got)
	}

	s = RunState{Airborne: true, AirDuration: 0.5, AirTime: 0.05}
	if got := pilot.Decide(Snapshot{State: s}).Trick; got != TrickTuck {
		t.Errorf("mogul hop: trick %q, expected tuck", got)
	}
}

func TestAutopilotRun(t *testing.T) {
	r := NewRun(LevelEasy, WithSeed(5))
	pilot := NewAutopilot()

	for i := 0; i < 60*60 && !r.State().GameOver; i++ {
		r.Step(pilot.Decide(r.Snapshot()), testDt)
	}
	if r.State().Distance < 600 {
		t.Errorf("autopilot only covered %v", r.State().Distance)
	}
}
