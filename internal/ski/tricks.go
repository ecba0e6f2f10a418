package ski

import (
	"math"
	"sort"
)

// Trick is an aerial maneuver that can be queued while airborne.
type Trick struct {
	ID       string
	Name     string
	Points   int
	Rotation float64 // Radians the penguin rotates to complete it
}

// Trick IDs accepted in Input.Trick.
const (
	TrickFlip      = "flip"
	TrickTuck      = "tuck"
	TrickFrontFlip = "frontflip"
	TrickSpinLeft  = "spin-left"
	TrickSpinRight = "spin-right"
)

// MinQueueTime is the air time that must remain for a trick to be accepted.
const MinQueueTime = 0.4

var tricks = map[string]Trick{
	TrickFlip:      {ID: TrickFlip, Name: "Backflip", Points: 300, Rotation: 2 * math.Pi},
	TrickTuck:      {ID: TrickTuck, Name: "Tuck", Points: 200, Rotation: 0},
	TrickFrontFlip: {ID: TrickFrontFlip, Name: "Front Flip", Points: 250, Rotation: -2 * math.Pi},
	TrickSpinLeft:  {ID: TrickSpinLeft, Name: "Left Spin", Points: 150, Rotation: -math.Pi},
	TrickSpinRight: {ID: TrickSpinRight, Name: "Right Spin", Points: 150, Rotation: math.Pi},
}

// LookupTrick returns the catalog entry for an ID.
func LookupTrick(id string) (Trick, bool) {
	t, ok := tricks[id]
	return t, ok
}

// Tricks returns the catalog sorted by points, highest first.
func Tricks() []Trick {
	out := make([]Trick, 0, len(tricks))
	for _, t := range tricks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CanQueueTrick reports whether trick may join the queue with timeLeft
// seconds of air remaining. A trick can appear at most once per jump.
func CanQueueTrick(queue []Trick, trick Trick, timeLeft float64) bool {
	if timeLeft <= MinQueueTime {
		return false
	}
	for _, q := range queue {
		if q.ID == trick.ID {
			return false
		}
	}
	return true
}

// CalcTrickScore sums base points plus VarietyBonus for every trick after the first.
func CalcTrickScore(queue []Trick) int {
	total := 0
	for i, t := range queue {
		total += t.Points
		if i > 0 {
			total += VarietyBonus
		}
	}
	return total
}
