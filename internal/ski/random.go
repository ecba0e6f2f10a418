package ski

import "math/rand"

// Random is the uniform source the simulation draws from.
// Float64 must return a value in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi).
func between(rnd Random, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(rnd Random, lo, hi int) int {
	n := lo + int(rnd.Float64()*float64(hi-lo+1))
	if n > hi {
		return hi
	}
	return n
}
