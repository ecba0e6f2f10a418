package ski

// EventKind identifies a discrete gameplay event.
type EventKind int

const (
	EventFishCollected EventKind = iota
	EventTrickQueued
	EventLandingClean
	EventLandingSloppy
	EventLandingCrash
	EventRockHit
	EventTreeHit
	EventRampLaunch
	EventMogulLaunch
	EventIceEntered
	EventSnowdriftHit
	EventFlyover
	EventFling
	EventRespawn
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFishCollected:
		return "fish"
	case EventTrickQueued:
		return "trick"
	case EventLandingClean:
		return "landing-clean"
	case EventLandingSloppy:
		return "landing-sloppy"
	case EventLandingCrash:
		return "landing-crash"
	case EventRockHit:
		return "rock-hit"
	case EventTreeHit:
		return "tree-hit"
	case EventRampLaunch:
		return "ramp-launch"
	case EventMogulLaunch:
		return "mogul-launch"
	case EventIceEntered:
		return "ice"
	case EventSnowdriftHit:
		return "snowdrift"
	case EventFlyover:
		return "flyover"
	case EventFling:
		return "fling"
	case EventRespawn:
		return "respawn"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is fired by Step for presentation collaborators (sound, haptics, HUD).
type Event struct {
	Kind         EventKind
	Points       int     // Points credited by this event
	Combo        int     // Combo after the event
	Centeredness float64 // Tree hits: 0 for a graze, 1 for dead center
	Trick        string  // Trick name for EventTrickQueued
	Object       ObjectType
	Lives        int // Lives after the event
}

// Listener receives events as they occur within a tick.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Listeners fans an event out to several listeners in order.
type Listeners []Listener

// OnEvent forwards e to every listener.
func (ls Listeners) OnEvent(e Event) {
	for _, l := range ls {
		l.OnEvent(e)
	}
}
