package penguin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-ski/internal/core"
	"github.com/vovakirdan/penguin-ski/internal/registry"
	"github.com/vovakirdan/penguin-ski/internal/ski"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestLevelsRegistered(t *testing.T) {
	var ids []string
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	if strings.Join(ids, ",") != "easy,medium,hard" {
		t.Errorf("registered ids = %v", ids)
	}

	g, err := registry.Create("hard")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Title() != "Penguin Ski - Hard" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.DeltaStepper); !ok {
		t.Error("game should step with measured dt")
	}
	if _, ok := g.(registry.BestRunSetter); !ok {
		t.Error("game should accept the best run")
	}
}

func TestToInput(t *testing.T) {
	tests := []struct {
		name     string
		in       core.InputFrame
		airborne bool
		want     ski.Input
	}{
		{"idle", frame(), false, ski.Input{}},
		{"steer left", frame(core.ActionSteerLeft), false, ski.Input{Steer: -1}},
		{"steer both cancels", frame(core.ActionSteerLeft, core.ActionSteerRight), false, ski.Input{}},
		{"spin in the air", frame(core.ActionSteerRight), true, ski.Input{Spin: 1}},
		{"wings", frame(core.ActionTuck, core.ActionSpread), false, ski.Input{Tuck: true, Spread: true}},
		{"trick", frame(core.ActionTrickSpinLeft), true, ski.Input{Trick: ski.TrickSpinLeft}},
		{"flip wins", frame(core.ActionTrickTuck, core.ActionTrickFlip), true, ski.Input{Trick: ski.TrickFlip}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToInput(tc.in, tc.airborne); got != tc.want {
				t.Errorf("ToInput() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 40) % 3 {
		case 0:
			inputs[i].Set(core.ActionSteerLeft)
		case 1:
			inputs[i].Set(core.ActionSteerRight)
			inputs[i].Set(core.ActionTuck)
		}
		if i%25 == 0 {
			inputs[i].Set(core.ActionTrickFlip)
		}
	}

	play := func() core.GameState {
		g := New(ski.LevelMedium)
		g.Reset(testConfig())
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st
	}

	s1, s2 := play(), play()
	if s1 != s2 {
		t.Errorf("same seed and inputs diverged: %+v vs %+v", s1, s2)
	}
	if s1.Distance <= 0 {
		t.Error("run did not move")
	}
}

func TestPauseToggle(t *testing.T) {
	g := New(ski.LevelEasy)
	g.Reset(testConfig())
	g.Step(frame())

	st := g.Step(frame(core.ActionPause)).State
	if !st.Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if d := g.State().Distance; d != st.Distance {
		t.Errorf("distance moved while paused: %v -> %v", st.Distance, d)
	}

	if g.Step(frame(core.ActionPause)).State.Paused {
		t.Fatal("expected resumed")
	}
	if g.State().Distance <= st.Distance {
		t.Error("run should advance after resuming")
	}
}

// crash drives the run into rocks until the last life is gone.
func crash(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		s := g.run.State()
		if !s.Invincible && !s.Flinging && !s.Airborne {
			g.run.Field().Add(ski.Rock, s.X, ski.PlayerY()+3, 50, 40)
		}
		g.Step(frame())
	}
	if !g.State().GameOver {
		t.Fatal("run never ended")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New(ski.LevelMedium)
	g.Reset(testConfig())
	crash(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}

	// Other input is ignored once the run is over
	before := g.State()
	g.Step(frame(core.ActionSteerLeft, core.ActionPause))
	if g.State() != before {
		t.Error("state changed after game over")
	}

	st := g.Step(frame(core.ActionRestart)).State
	if st.GameOver || st.Score != 0 || st.Distance != 0 {
		t.Errorf("restart state = %+v", st)
	}
	if lives := g.run.State().Lives; lives != ski.StartingLives {
		t.Errorf("lives after restart = %d", lives)
	}
}

func TestRestartSeeding(t *testing.T) {
	tests := []struct {
		name     string
		seed     int64
		sameRoll bool
	}{
		{"fixed seed replays the slope", 42, true},
		{"no seed draws a fresh slope", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Seed = tc.seed

			g := New(ski.LevelMedium)
			g.Reset(cfg)
			first := g.Seed()
			crash(t, g)

			g.Step(frame(core.ActionRestart))
			if g.State().GameOver {
				t.Fatal("restart did not start a new run")
			}
			if (g.Seed() == first) != tc.sameRoll {
				t.Errorf("seed %d before restart, %d after", first, g.Seed())
			}
			if tc.seed != 0 && g.Seed() != tc.seed {
				t.Errorf("seed = %d, expected %d", g.Seed(), tc.seed)
			}
		})
	}
}

func TestStepDeltaClamps(t *testing.T) {
	g := New(ski.LevelEasy)
	g.Reset(testConfig())

	st := g.StepDelta(frame(), 1.5).State
	if st.Elapsed != ski.MaxStep {
		t.Errorf("Elapsed = %v, expected one clamped step of %v", st.Elapsed, ski.MaxStep)
	}

	st = g.StepDelta(frame(), 0).State
	if st.Elapsed != ski.MaxStep {
		t.Errorf("zero dt advanced the run: %v", st.Elapsed)
	}
}

func TestStatusFromEvents(t *testing.T) {
	tests := []struct {
		event ski.Event
		text  string
		color core.Color
	}{
		{ski.Event{Kind: ski.EventFishCollected, Points: 20}, "+20", core.ColorYellow},
		{ski.Event{Kind: ski.EventTrickQueued, Trick: "Backflip"}, "Backflip!", core.ColorMagenta},
		{ski.Event{Kind: ski.EventLandingClean, Points: 600, Combo: 2}, "+600 CLEAN! x2", core.ColorGreen},
		{ski.Event{Kind: ski.EventLandingClean}, "CLEAN", core.ColorGreen},
		{ski.Event{Kind: ski.EventLandingSloppy}, "SLOPPY", core.ColorYellow},
		{ski.Event{Kind: ski.EventLandingCrash}, "CRASH!", core.ColorRed},
		{ski.Event{Kind: ski.EventRockHit}, "CRASH!", core.ColorRed},
		{ski.Event{Kind: ski.EventRampLaunch}, "AIR!", core.ColorBrightCyan},
		{ski.Event{Kind: ski.EventMogulLaunch}, "AIR!", core.ColorBrightCyan},
		{ski.Event{Kind: ski.EventIceEntered, Points: 50}, "ICY! +50", core.ColorBrightCyan},
		{ski.Event{Kind: ski.EventIceEntered}, "ICY!", core.ColorBrightCyan},
		{ski.Event{Kind: ski.EventFlyover, Points: 50}, "+50 FLYOVER", core.ColorGreen},
	}

	for _, tc := range tests {
		t.Run(tc.event.Kind.String(), func(t *testing.T) {
			g := New(ski.LevelMedium)
			g.onEvent(tc.event)
			if g.status.text != tc.text || g.status.color != tc.color {
				t.Errorf("status = %q/%v, expected %q/%v", g.status.text, g.status.color, tc.text, tc.color)
			}
		})
	}

	// Respawn leaves the current message alone
	g := New(ski.LevelMedium)
	g.onEvent(ski.Event{Kind: ski.EventRespawn})
	if g.status.active() {
		t.Errorf("unexpected status %q", g.status.text)
	}
}

func TestStatusExpires(t *testing.T) {
	var s status
	s.set("AIR!", core.ColorBrightCyan)
	s.tick(statusDuration / 2)
	if !s.active() {
		t.Fatal("status expired early")
	}
	s.tick(statusDuration)
	if s.active() || s.text != "" {
		t.Errorf("status still active: %+v", s)
	}
}

func TestRenderStartFrame(t *testing.T) {
	g := New(ski.LevelMedium)
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Medium", "Dist 0", "Score 0", "♥♥♥"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// 80x24 leaves 22 slope rows: player row 1+floor(200*22/800), column 240*80/480
	if got := screen.Get(40, 6); got != 'o' {
		t.Errorf("penguin body = %q, expected 'o'\n%s", got, screen.String())
	}
	if screen.Get(39, 6) != '(' || screen.Get(41, 6) != ')' {
		t.Errorf("penguin wings = %q%q", screen.Get(39, 6), screen.Get(41, 6))
	}
	if c := screen.GetCell(40, 6).Color; c != core.ColorBrightWhite {
		t.Errorf("penguin color = %v", c)
	}
}

func TestRenderObjects(t *testing.T) {
	g := New(ski.LevelMedium)
	g.Reset(testConfig())
	g.run.Field().Add(ski.Rock, 60, 600, 50, 40)
	g.run.Field().Add(ski.Fish, 420, 400, 18, 12)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Rock spans x 35..85 -> cols 5..14, y 580..620 -> rows 16..18
	if screen.Get(8, 17) != RockChar {
		t.Errorf("rock not drawn\n%s", screen.String())
	}
	if screen.GetCell(8, 17).Color != core.ColorGray {
		t.Error("rock color")
	}
	// Fish is smaller than a cell and still gets one
	if screen.Get(68, 11) != FishChar {
		t.Errorf("fish not drawn\n%s", screen.String())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New(ski.LevelEasy)
	g.Reset(testConfig())
	g.SetBestRun(1234, 5678)
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(23), "Best 1234 / 5678") {
		t.Errorf("status bar = %q", screen.Row(23))
	}
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box not drawn")
	}
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	l := eventLogger{
		level: ski.LevelHard,
		log:   log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}),
	}
	l.OnEvent(ski.Event{Kind: ski.EventTrickQueued, Trick: "Backflip", Points: 300, Lives: 3})

	out := buf.String()
	for _, want := range []string{"trick", "Backflip", "points=300", "level=hard"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}

	buf.Reset()
	quiet := eventLogger{level: ski.LevelHard, log: log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})}
	quiet.OnEvent(ski.Event{Kind: ski.EventFishCollected})
	if buf.Len() != 0 {
		t.Errorf("debug event logged at info level: %q", buf.String())
	}
}
