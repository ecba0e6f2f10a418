package ski

import "github.com/vovakirdan/penguin-ski/internal/core"

// ObjectType identifies what a slope object is.
type ObjectType int

const (
	Rock ObjectType = iota
	Tree
	Ramp
	Fish
	Ice
	Crevasse
	Mogul
	Snowdrift
)

// ObjectTypes lists every type in declaration order.
var ObjectTypes = []ObjectType{Rock, Tree, Ramp, Fish, Ice, Crevasse, Mogul, Snowdrift}

// String returns the lowercase name of the type.
func (t ObjectType) String() string {
	switch t {
	case Rock:
		return "rock"
	case Tree:
		return "tree"
	case Ramp:
		return "ramp"
	case Fish:
		return "fish"
	case Ice:
		return "ice"
	case Crevasse:
		return "crevasse"
	case Mogul:
		return "mogul"
	case Snowdrift:
		return "snowdrift"
	default:
		return "unknown"
	}
}

// IsHazard reports whether contact with the type can cost a life.
func (t ObjectType) IsHazard() bool {
	return t == Rock || t == Crevasse
}

// flyoverable types award a bonus when jumped over.
func (t ObjectType) flyoverable() bool {
	return t == Rock || t == Tree || t == Crevasse
}

// Handle is a stable identifier for a slope object.
// Handles are never reused within a field's lifetime.
type Handle uint64

// SlopeObject is an obstacle, collectible, or ramp on the slope.
type SlopeObject struct {
	Handle Handle
	Type   ObjectType
	X, Y   float64 // Center position in world space
	Width  float64
	Height float64
	Hit    bool // One-time reward or penalty already applied

	flown bool // Fly-over bonus already awarded
}

// Box returns the object's collision box (display extent shrunk by HitboxShrink).
func (o SlopeObject) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height).Scale(HitboxShrink)
}

// extentFor returns the display size of a newly spawned object.
func extentFor(t ObjectType, rnd Random) (w, h float64) {
	switch t {
	case Rock:
		return 50, 40
	case Tree:
		return 40, 50
	case Ramp:
		return 65, 20
	case Fish:
		return 18, 12
	case Ice:
		return between(rnd, 70, 130), between(rnd, 25, 45)
	case Crevasse:
		return 14, 50
	case Mogul:
		return 28, 16
	case Snowdrift:
		return 44, 18
	default:
		return 20, 20
	}
}
