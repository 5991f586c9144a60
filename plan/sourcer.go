package plan

import (
	"wasi.team/prng/catalog"
	"wasi.team/prng/rng"
)

// A source of seeded generators of one algorithm.
type Sourcer struct {
	commonSeed uint64
	seeded     func(seed []uint64) rng.Random
}

// NewSourcer checks the algorithm name and returns a Sourcer that uses
// global as the first seed word of every generator it creates.
func NewSourcer(algorithm string, global uint64) (*Sourcer, error) {
	entry, err := catalog.Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	return &Sourcer{commonSeed: global, seeded: entry.Seeded}, nil
}

// Return a deterministic generator seeded with the common seed as first
// and seed as second word.
func (s *Sourcer) New(seed uint64) rng.Random {
	return s.seeded([]uint64{s.commonSeed, seed})
}

// Use the seed to get a single deterministic random number and reuse that
// number with the offset to return another deterministic generator.
func (s *Sourcer) NewAtOffset(seed, offset uint64) rng.Random {
	r := s.New(seed).Next64()
	return s.New(r + offset)
}
