package random

import "math/rand"

// Random provides random number generation that can be seeded for
// reproducible simulations and mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// PseudoRandom implements Random with a seeded math/rand source
type PseudoRandom struct {
	rng *rand.Rand
}

// New creates a PseudoRandom from the given seed
func New(seed int64) *PseudoRandom {
	return &PseudoRandom{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *PseudoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
