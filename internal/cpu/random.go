package cpu

import "math/rand/v2"

// RandomSource provides random bytes for the rnd instruction.
type RandomSource interface {
	Uint8() uint8
}

type pcgSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a pseudo random source. A seed of 0 selects a
// random seed.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &pcgSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

func (s *pcgSource) Uint8() uint8 {
	return uint8(s.rng.Uint32())
}
