package seed

import "math/rand/v2"

// Source is the random capability used by the harmony generator, the
// quantizer and the image picker. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed source. Equal seeds yield equal sequences.
func NewSource(seed int64) *rand.Rand {
	s := uint64(seed) // #nosec G115 -- reinterpreting seed bits
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// OrRandom returns src, or a freshly seeded source when src is nil.
func OrRandom(src Source) Source {
	if src != nil {
		return src
	}
	return NewSource(RandomSeed())
}

// Between returns a uniform int in [lo, hi], both ends inclusive.
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
