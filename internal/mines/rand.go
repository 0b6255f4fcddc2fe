package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// RandomSource produces uniformly distributed integers in [0, bound).
type RandomSource interface {
	NextBounded(bound uint32) uint32
}

// Source is a [RandomSource] backed by math/rand/v2.
type Source struct {
	rnd *rand.Rand
}

func NewSource(rnd *rand.Rand) *Source {
	return &Source{rnd: rnd}
}

// NewSeededSource returns a PCG-backed source. A zero seed picks a random one.
func NewSeededSource(seed uint64) *Source {
	if seed == 0 {
		return NewSource(rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		)))
	}
	return NewSource(rand.New(rand.NewPCG(seed, seed)))
}

// [*Source] implements [RandomSource]
func (s *Source) NextBounded(bound uint32) uint32 {
	return s.rnd.Uint32N(bound)
}
