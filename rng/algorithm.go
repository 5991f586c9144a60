package rng

import "golang.org/x/exp/constraints"

// Word is the type of a single seed word. MT19937 is seeded with uint32
// words, the 64-bit algorithms with uint64 words.
type Word interface {
	constraints.Unsigned
}

// Algorithm is the one capability a concrete generator has to provide: a
// native draw in [0, NativeMax()] plus the state handling needed for the
// reproducibility contract. A is the implementing pointer type itself.
type Algorithm[A any, W Word] interface {
	// Next advances the state and returns the next native draw.
	Next() uint64
	// NativeMax is the inclusive upper bound of Next. It must be > 0 and
	// must not change over the life of the instance.
	NativeMax() uint64
	// SeedLength is the number of words used when seeding from entropy.
	SeedLength() int
	// Seed resets the state from words; an empty slice applies the
	// documented default seed.
	Seed(words []W)
	// Clone returns an independent deep copy of the state.
	Clone() A
	// Equal reports whether both states are identical.
	Equal(other A) bool
}

// ScalarSeeder is implemented by algorithms that can also be seeded from a
// single packed scalar.
type ScalarSeeder interface {
	SeedScalar(seed uint64)
}

// Discarder is implemented by algorithms that can skip n native draws
// faster than drawing them.
type Discarder interface {
	Discard(n uint64)
}

// Jumper is implemented by algorithms with an accelerated jump-ahead. The
// distance is significand * 2^exponent native draws.
type Jumper interface {
	Jump()
	JumpDistance() (significand uint64, exponent int)
}
