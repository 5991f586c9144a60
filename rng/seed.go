package rng

import "fmt"

// SetSeed reseeds the algorithm with words, or with its default seed when
// no words are given, and clears every cached value.
func (g *Generator[A, W]) SetSeed(words ...W) {
	g.alg.Seed(words)
	g.resetCache()
}

// SetSeedScalar reseeds from a single packed scalar if the algorithm
// supports it.
func (g *Generator[A, W]) SetSeedScalar(seed uint64) error {
	s, ok := any(g.alg).(ScalarSeeder)
	if !ok {
		return fmt.Errorf("%w: %T has no scalar seed", ErrUnsupported, g.alg)
	}
	s.SeedScalar(seed)
	g.resetCache()
	return nil
}

// Randomize reseeds from SeedLength words of system entropy. The seed is
// not kept anywhere and cannot be recovered.
func (g *Generator[A, W]) Randomize() {
	g.SetSeed(TrueRandomWords[W](g.alg.SeedLength())...)
}

func (g *Generator[A, W]) resetCache() {
	g.cache = cacheState{}
}

// Clone returns an independent generator with identical algorithm state and
// caches. Driving both with the same calls yields the same outputs.
func (g *Generator[A, W]) Clone() *Generator[A, W] {
	return &Generator[A, W]{
		alg:   g.alg.Clone(),
		rc:    g.rc,
		cache: g.cache,
	}
}

// Copy is Clone behind the Random interface.
func (g *Generator[A, W]) Copy() Random {
	return g.Clone()
}

// IsConcordant reports whether other is the same kind of generator with
// equal algorithm state and caches, i.e. whether both will produce the same
// outputs under the same calls.
func (g *Generator[A, W]) IsConcordant(other Random) bool {
	o, ok := other.(*Generator[A, W])
	if !ok || o == nil || g == nil {
		return false
	}
	return g.cache == o.cache && g.alg.Equal(o.alg)
}

// Discard advances the algorithm as n native draws would. Cached values are
// left alone.
func (g *Generator[A, W]) Discard(n uint64) {
	if d, ok := any(g.alg).(Discarder); ok {
		d.Discard(n)
		return
	}
	for ; n > 0; n-- {
		g.alg.Next()
	}
}

// Jump advances the algorithm by JumpDistance native draws.
func (g *Generator[A, W]) Jump() error {
	j, ok := any(g.alg).(Jumper)
	if !ok {
		return fmt.Errorf("%w: %T cannot jump", ErrUnsupported, g.alg)
	}
	j.Jump()
	return nil
}

// JumpDistance returns the number of native draws skipped by Jump as
// significand * 2^exponent.
func (g *Generator[A, W]) JumpDistance() (significand uint64, exponent int, err error) {
	j, ok := any(g.alg).(Jumper)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %T cannot jump", ErrUnsupported, g.alg)
	}
	significand, exponent = j.JumpDistance()
	return significand, exponent, nil
}

// Split returns a clone positioned at the current state and moves g one
// jump ahead, so both continue on non-overlapping streams. The caches of g
// are cleared so no cached value is handed out twice.
func (g *Generator[A, W]) Split() (*Generator[A, W], error) {
	clone := g.Clone()
	if err := g.Jump(); err != nil {
		return nil, err
	}
	g.resetCache()
	return clone, nil
}

// Fork is Split behind the Random interface.
func (g *Generator[A, W]) Fork() (Random, error) {
	clone, err := g.Split()
	if err != nil {
		return nil, err
	}
	return clone, nil
}
