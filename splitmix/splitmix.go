// Package splitmix implements SplitMix64, a scrambled additive generator
// with a single 64-bit word of state, as an algorithm for the rng engine.
//
//	http://xoshiro.di.unimi.it/splitmix64.c
//
// The state is a Weyl sequence; every draw adds a fixed odd increment and
// returns a mixed copy of the sum. Skipping ahead is therefore a single
// multiply-add.
package splitmix

import (
	"math"

	"wasi.team/prng/rng"
)

const (
	increment = 0x9E3779B97F4A7C15
	mix1      = 0xBF58476D1CE4E5B9
	mix2      = 0x94D049BB133111EB

	// DefaultState is the state of an unseeded generator. Its first draws
	// are 0x157A3807A48FAA9D, 0xD573529B34A1D093 and 0x2F90B72E996DCCBE.
	DefaultState = 0x0123456789ABCDEF

	// JumpExponent is the base-2 exponent of the Jump distance.
	JumpExponent = 48

	jumpStep = (increment << JumpExponent) & math.MaxUint64
)

// State is the SplitMix64 state.
type State struct {
	s uint64
}

// SplitMix64 is a generator driven by SplitMix64.
type SplitMix64 = rng.Generator[*State, uint64]

var _ rng.Random = (*SplitMix64)(nil)

// New returns a generator in DefaultState.
func New() *SplitMix64 {
	return rng.New[*State, uint64](&State{s: DefaultState})
}

// NewSeeded returns a generator whose state is seed.
func NewSeeded(seed uint64) *SplitMix64 {
	return rng.New[*State, uint64](&State{s: seed})
}

// NewRandomized returns a generator seeded from system entropy.
func NewRandomized() *SplitMix64 {
	return NewSeeded(rng.TrueRandom())
}

// Mix is the SplitMix64 output function. It is a bijection on uint64.
func Mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 31)
}

func (s *State) Next() uint64 {
	s.s += increment
	return Mix(s.s)
}

func (s *State) NativeMax() uint64 { return math.MaxUint64 }

func (s *State) SeedLength() int { return 1 }

// Seed uses the first word as the state; further words are ignored. No
// words restores DefaultState.
func (s *State) Seed(words []uint64) {
	if len(words) == 0 {
		s.s = DefaultState
		return
	}
	s.s = words[0]
}

func (s *State) SeedScalar(seed uint64) {
	s.s = seed
}

// Discard adds n increments at once.
func (s *State) Discard(n uint64) {
	s.s += n * increment
}

// Jump skips 2^48 draws.
func (s *State) Jump() {
	s.s += jumpStep
}

func (s *State) JumpDistance() (significand uint64, exponent int) {
	return 1, JumpExponent
}

func (s *State) Clone() *State {
	return &State{s: s.s}
}

func (s *State) Equal(other *State) bool {
	return other != nil && s.s == other.s
}
