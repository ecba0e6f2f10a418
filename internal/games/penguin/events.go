package penguin

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-ski/internal/core"
	"github.com/vovakirdan/penguin-ski/internal/ski"
)

// statusDuration is how long a status message stays on screen, in seconds.
const statusDuration = 1.2

// status is a short-lived HUD message.
type status struct {
	text  string
	color core.Color
	ttl   float64
}

func (s *status) set(text string, c core.Color) {
	s.text = text
	s.color = c
	s.ttl = statusDuration
}

func (s *status) tick(dt float64) {
	if s.ttl <= dt {
		*s = status{}
		return
	}
	s.ttl -= dt
}

func (s status) active() bool {
	return s.ttl > 0 && s.text != ""
}

// onEvent turns simulation events into status text.
func (g *Game) onEvent(e ski.Event) {
	switch e.Kind {
	case ski.EventFishCollected:
		g.status.set(fmt.Sprintf("+%d", e.Points), core.ColorYellow)
	case ski.EventTrickQueued:
		g.status.set(e.Trick+"!", core.ColorMagenta)
	case ski.EventLandingClean:
		if e.Points > 0 {
			g.status.set(fmt.Sprintf("+%d CLEAN! x%d", e.Points, e.Combo), core.ColorGreen)
		} else {
			g.status.set("CLEAN", core.ColorGreen)
		}
	case ski.EventLandingSloppy:
		g.status.set("SLOPPY", core.ColorYellow)
	case ski.EventLandingCrash, ski.EventRockHit:
		g.status.set("CRASH!", core.ColorRed)
	case ski.EventTreeHit:
		g.status.set("TREE!", core.ColorOrange)
	case ski.EventRampLaunch, ski.EventMogulLaunch:
		g.status.set("AIR!", core.ColorBrightCyan)
	case ski.EventIceEntered:
		if e.Points > 0 {
			g.status.set(fmt.Sprintf("ICY! +%d", e.Points), core.ColorBrightCyan)
		} else {
			g.status.set("ICY!", core.ColorBrightCyan)
		}
	case ski.EventSnowdriftHit:
		g.status.set("SNOWDRIFT", core.ColorWhite)
	case ski.EventFlyover:
		g.status.set(fmt.Sprintf("+%d FLYOVER", e.Points), core.ColorGreen)
	}
}

// eventLogger writes every event at debug level.
type eventLogger struct {
	level ski.Level
	log   *log.Logger
}

func (l eventLogger) OnEvent(e ski.Event) {
	if l.log == nil {
		return
	}
	kv := []any{"level", l.level, "lives", e.Lives, "combo", e.Combo}
	if e.Points != 0 {
		kv = append(kv, "points", e.Points)
	}
	switch e.Kind {
	case ski.EventTrickQueued:
		kv = append(kv, "trick", e.Trick)
	case ski.EventTreeHit:
		kv = append(kv, "centeredness", fmt.Sprintf("%.2f", e.Centeredness))
	case ski.EventRockHit, ski.EventFlyover:
		kv = append(kv, "object", e.Object)
	}
	l.log.Debug(e.Kind.String(), kv...)
}
