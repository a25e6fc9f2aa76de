package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

func NewSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

func createRand() *rand.Rand {
	return NewSource(new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64())
}
