package ski

import (
	"math"
	"strings"
)

// Level is the player-selected difficulty level.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

// Levels lists every selectable level in menu order.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// String returns the lowercase level name used for IDs and storage keys.
func (l Level) String() string {
	switch l.clamp() {
	case LevelEasy:
		return "easy"
	case LevelHard:
		return "hard"
	default:
		return "medium"
	}
}

// Title returns the display name of the level.
func (l Level) Title() string {
	switch l.clamp() {
	case LevelEasy:
		return "Easy"
	case LevelHard:
		return "Hard"
	default:
		return "Medium"
	}
}

func (l Level) clamp() Level {
	if l < LevelEasy {
		return LevelEasy
	}
	if l > LevelHard {
		return LevelHard
	}
	return l
}

// ParseLevel converts a level name to a Level.
// Accepts the names returned by String plus "normal" as an alias for medium.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return LevelEasy, true
	case "medium", "normal", "med":
		return LevelMedium, true
	case "hard":
		return LevelHard, true
	}
	return LevelMedium, false
}

// DifficultyProfile holds the per-level speed curve.
type DifficultyProfile struct {
	Start float64 // Speed at distance 0
	Accel float64 // BaseSpeed increase per unit of distance
	Cap   float64 // Absolute speed limit
}

var profiles = [...]DifficultyProfile{
	LevelEasy:   {Start: 160, Accel: 0.05, Cap: 400},
	LevelMedium: {Start: 200, Accel: 0.08, Cap: 500},
	LevelHard:   {Start: 260, Accel: 0.10, Cap: 620},
}

// Profile returns the speed profile for a level.
// Out-of-range levels clamp to the nearest defined level.
func Profile(l Level) DifficultyProfile {
	return profiles[l.clamp()]
}

// Tier is the distance-driven difficulty zone, 0 (calm) through 3 (expert).
type Tier int

// MaxTier is the hardest tier.
const MaxTier Tier = 3

var tierThresholds = [...]float64{500, 1500, 3000}

// Difficulty returns the tier for a distance traveled.
func Difficulty(distance float64) Tier {
	if math.IsNaN(distance) {
		return 0
	}
	for i, limit := range tierThresholds {
		if distance < limit {
			return Tier(i)
		}
	}
	return MaxTier
}

func (t Tier) clamp() Tier {
	if t < 0 {
		return 0
	}
	if t > MaxTier {
		return MaxTier
	}
	return t
}

// BaseSpeed returns the tucked cruising speed for a distance on the given level.
// Non-decreasing in distance and never above the level's cap.
func BaseSpeed(distance float64, l Level) float64 {
	p := Profile(l)
	if math.IsNaN(distance) || distance < 0 {
		distance = 0
	}
	return math.Min(p.Cap, p.Start+distance*p.Accel)
}

var (
	spawnIntervals = [...]float64{0.5, 0.38, 0.28, 0.2}
	rampIntervals  = [...]float64{2.5, 2.0, 1.8, 1.5}
)

// SpawnInterval returns the base obstacle spawn interval in seconds.
func SpawnInterval(t Tier) float64 {
	return spawnIntervals[t.clamp()]
}

// RampInterval returns the base ramp spawn interval in seconds.
func RampInterval(t Tier) float64 {
	return rampIntervals[t.clamp()]
}

// spawnEntry is one row of a cumulative spawn table.
type spawnEntry struct {
	threshold float64
	kind      ObjectType
}

// Evaluated in order; the first threshold the roll falls under wins.
var spawnTables = [...][]spawnEntry{
	// Calm: fish heavy, some trees, rare rocks
	{
		{0.15, Rock},
		{0.35, Tree},
		{0.45, Snowdrift},
		{1.0, Fish},
	},
	// Ice patches and crevasses appear
	{
		{0.20, Rock},
		{0.38, Tree},
		{0.48, Ice},
		{0.55, Snowdrift},
		{0.62, Crevasse},
		{1.0, Fish},
	},
	// Moguls, denser hazards
	{
		{0.22, Rock},
		{0.37, Tree},
		{0.47, Ice},
		{0.55, Crevasse},
		{0.65, Mogul},
		{0.72, Snowdrift},
		{1.0, Fish},
	},
	// Expert: everything
	{
		{0.25, Rock},
		{0.37, Tree},
		{0.47, Crevasse},
		{0.57, Ice},
		{0.67, Mogul},
		{0.73, Snowdrift},
		{1.0, Fish},
	},
}

// PickObstacleType rolls against the tier's spawn table.
func PickObstacleType(t Tier, rnd Random) ObjectType {
	roll := rnd.Float64()
	for _, e := range spawnTables[t.clamp()] {
		if roll < e.threshold {
			return e.kind
		}
	}
	return Fish
}

// SpawnWeights returns the probability of each type at a tier,
// derived from the cumulative table.
func SpawnWeights(t Tier) map[ObjectType]float64 {
	weights := make(map[ObjectType]float64)
	prev := 0.0
	for _, e := range spawnTables[t.clamp()] {
		weights[e.kind] += e.threshold - prev
		prev = e.threshold
	}
	return weights
}
