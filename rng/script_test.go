package rng

import "slices"

// script replays a fixed list of native draws, cycling when exhausted.
type script struct {
	max    uint64
	values []uint64
	pos    int
}

func newScripted(max uint64, values ...uint64) *Generator[*script, uint64] {
	return New[*script, uint64](&script{max: max, values: values})
}

func (s *script) Next() uint64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func (s *script) NativeMax() uint64 { return s.max }

func (s *script) SeedLength() int { return 1 }

func (s *script) Seed(words []uint64) { s.pos = 0 }

func (s *script) Clone() *script {
	c := *s
	c.values = slices.Clone(s.values)
	return &c
}

func (s *script) Equal(other *script) bool {
	return other != nil && s.max == other.max && s.pos == other.pos && slices.Equal(s.values, other.values)
}
