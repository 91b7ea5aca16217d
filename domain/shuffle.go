package domain

import (
	"math/rand/v2"
	"slices"
)

// Source is the randomness the shuffle draws from.
// *rand.Rand satisfies it, so tests can pass a seeded generator.
type Source interface {
	// IntN returns a uniformly distributed value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG backed source. A nil seed picks a random one.
func NewSource(seed *uint64) Source {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// Shuffle returns a uniformly random permutation of items using Fisher-Yates.
// The input slice is left untouched.
func Shuffle[T any](src Source, items []T) []T {
	shuffled := slices.Clone(items)
	for i := len(shuffled) - 1; i >= 1; i-- {
		j := src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
