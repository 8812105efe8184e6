package chip8

import (
	"math/rand/v2"
)

// RandomSource provides the bytes used by the random instruction.
type RandomSource interface {
	RandomByte() byte
}

// randSource is the default random source based on math/rand.
type randSource struct {
	rng *rand.Rand // nil uses the automatically seeded global source
}

// NewRandomSource returns a random source. A seed of 0 selects a randomly
// seeded source, other values produce a reproducible sequence.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return randSource{}
	}
	return randSource{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// RandomByte returns the next random byte.
func (r randSource) RandomByte() byte {
	if r.rng == nil {
		return byte(rand.UintN(256))
	}
	return byte(r.rng.UintN(256))
}
