// Package catalog maps algorithm names to their constructors. The table is
// a plain map literal; nothing is discovered at runtime.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"wasi.team/prng/mersenne"
	"wasi.team/prng/platform"
	"wasi.team/prng/rng"
	"wasi.team/prng/splitmix"
)

// ErrUnknownAlgorithm is returned for names that are not in the catalog.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names.
const (
	MT19937    = "mt19937"
	MT19937x64 = "mt19937-64"
	SplitMix64 = "splitmix64"
	Platform   = "platform"
)

// Entry holds the constructors of one algorithm.
type Entry struct {
	Name        string
	Description string

	// Default builds the generator in its documented default state. It is
	// nil for algorithms without a reproducible default.
	Default func() rng.Random

	// Seeded builds a generator from 64-bit seed words.
	Seeded func(seed []uint64) rng.Random

	// Randomized builds a generator seeded from system entropy.
	Randomized func() rng.Random
}

var entries = map[string]Entry{
	MT19937: {
		Name:        MT19937,
		Description: "32-bit Mersenne Twister (624 words)",
		Default:     func() rng.Random { return mersenne.New32() },
		Seeded:      func(seed []uint64) rng.Random { return mersenne.New32(splitWords(seed)...) },
		Randomized:  func() rng.Random { return mersenne.NewRandomized32() },
	},
	MT19937x64: {
		Name:        MT19937x64,
		Description: "64-bit Mersenne Twister (312 words)",
		Default:     func() rng.Random { return mersenne.New64() },
		Seeded:      func(seed []uint64) rng.Random { return mersenne.New64(seed...) },
		Randomized:  func() rng.Random { return mersenne.NewRandomized64() },
	},
	SplitMix64: {
		Name:        SplitMix64,
		Description: "SplitMix64 scrambled Weyl sequence (1 word)",
		Default:     func() rng.Random { return splitmix.New() },
		Seeded:      seedSplitMix,
		Randomized:  func() rng.Random { return splitmix.NewRandomized() },
	},
	Platform: {
		Name:        Platform,
		Description: "math/rand/v2 PCG, 63-bit draws, entropy-seeded by default",
		Seeded: func(seed []uint64) rng.Random {
			var s [2]uint64
			copy(s[:], seed)
			return platform.NewSeeded(s[0], s[1])
		},
		Randomized: func() rng.Random { return platform.New() },
	},
}

// Names returns all algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// Default returns the generator for name in its default state, or
// rng.ErrUnsupported if the algorithm has no reproducible default.
func Default(name string) (rng.Random, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if e.Default == nil {
		return nil, fmt.Errorf("%w: %s has no default construction", rng.ErrUnsupported, name)
	}
	return e.Default(), nil
}

// Seeded returns the generator for name seeded with seed. No seed words
// select the default state where there is one.
func Seeded(name string, seed ...uint64) (rng.Random, error) {
	if len(seed) == 0 {
		return Default(name)
	}
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Seeded(seed), nil
}

// Randomized returns the generator for name seeded from system entropy.
func Randomized(name string) (rng.Random, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Randomized(), nil
}

// splitWords turns each 64-bit word into its low and high 32-bit halves.
func splitWords(seed []uint64) []uint32 {
	words := make([]uint32, 0, 2*len(seed))
	for _, w := range seed {
		words = append(words, uint32(w), uint32(w>>32))
	}
	return words
}

// seedSplitMix folds all words into the single state word, so that seeds
// differing in any word give different streams.
func seedSplitMix(seed []uint64) rng.Random {
	state := seed[0]
	for _, w := range seed[1:] {
		state = splitmix.Mix(state ^ w)
	}
	return splitmix.NewSeeded(state)
}
