// Package platform adapts the PCG generator of Go's math/rand/v2 to the rng
// engine. Its native draw is a non-negative int64, so the engine has to
// assemble wider values from 63-bit chunks.
//
// An unseeded platform generator starts from system entropy and is not
// reproducible. It has no default seed and no published test vectors.
package platform

import (
	"math"
	"math/rand/v2"

	"wasi.team/prng/rng"
)

// Source wraps a math/rand/v2 PCG.
type Source struct {
	pcg *rand.PCG
}

// Platform is a generator driven by the math/rand/v2 PCG.
type Platform = rng.Generator[*Source, uint64]

var _ rng.Random = (*Platform)(nil)

// New returns a generator seeded from system entropy.
func New() *Platform {
	s := &Source{}
	s.Seed(nil)
	return rng.New[*Source, uint64](s)
}

// NewSeeded returns a reproducible generator for rand.NewPCG(seed1, seed2).
func NewSeeded(seed1, seed2 uint64) *Platform {
	return rng.New[*Source, uint64](&Source{pcg: rand.NewPCG(seed1, seed2)})
}

// Next returns the top 63 bits of the next PCG output.
func (s *Source) Next() uint64 {
	return s.pcg.Uint64() >> 1
}

// NativeMax is 2^63-1.
func (s *Source) NativeMax() uint64 { return math.MaxInt64 }

func (s *Source) SeedLength() int { return 2 }

// Seed uses up to two words as the PCG seeds; missing words are zero. No
// words at all seeds from system entropy.
func (s *Source) Seed(words []uint64) {
	if len(words) == 0 {
		words = rng.TrueRandomWords[uint64](2)
	}
	var seed [2]uint64
	copy(seed[:], words)
	if s.pcg == nil {
		s.pcg = rand.NewPCG(seed[0], seed[1])
		return
	}
	s.pcg.Seed(seed[0], seed[1])
}

func (s *Source) Clone() *Source {
	c := *s.pcg
	return &Source{pcg: &c}
}

func (s *Source) Equal(other *Source) bool {
	return other != nil && *s.pcg == *other.pcg
}
