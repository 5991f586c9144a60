// Package rng turns the native output of a concrete algorithm into ranged
// integers, doubles, normal deviates, shuffles, bytes and booleans.
//
// A Generator is not safe for concurrent use. Give each goroutine its own
// instance with Clone or Split instead of sharing one.
package rng

// Random is the public operation surface of every generator, independent of
// the concrete algorithm behind it.
type Random interface {
	// native draws and fixed-width uniforms
	Next() uint64
	NativeMax() uint64
	Next32() uint32
	Next64() uint64

	// ranged integers
	GetUInt32(max uint32, inclusive bool) (uint32, error)
	GetUInt32Range(min, max uint32, inclusive bool) (uint32, error)
	GetInt32(max int32, inclusive bool) (int32, error)
	GetInt32Range(min, max int32, inclusive bool) (int32, error)
	GetUInt64(max uint64, inclusive bool) (uint64, error)
	GetUInt64Range(min, max uint64, inclusive bool) (uint64, error)
	GetInt64(max int64, inclusive bool) (int64, error)
	GetInt64Range(min, max int64, inclusive bool) (int64, error)

	// doubles
	GetDouble() float64
	GetDoubleMax(max float64) (float64, error)
	GetDoubleRange(min, max float64) (float64, error)
	GetOpenDouble() float64
	GetOpenDoubleMax(max float64) (float64, error)
	GetOpenDoubleRange(min, max float64) (float64, error)
	GetNormal() float64

	// bytes, booleans and permutations
	Fill(dst []byte, offset, length int) error
	Read(p []byte) (int, error)
	GetBool() bool
	Shuffle(n int, swap func(i, j int))

	// state
	SetSeedScalar(seed uint64) error
	Copy() Random
	IsConcordant(other Random) bool
	Discard(n uint64)
	Jump() error
	JumpDistance() (significand uint64, exponent int, err error)
	Fork() (Random, error)

	// math/rand/v2.Source and the Float64 used by gonum's distuv
	Uint64() uint64
	Float64() float64
}

// Generator combines an Algorithm with the derived-value engine. The
// algorithm state and the caches are owned by the generator and never
// shared with another instance.
type Generator[A Algorithm[A, W], W Word] struct {
	alg   A
	rc    rangeContext
	cache cacheState
}

// New wraps an already seeded algorithm. It panics if the algorithm reports
// a native maximum of zero.
func New[A Algorithm[A, W], W Word](alg A) *Generator[A, W] {
	return &Generator[A, W]{
		alg: alg,
		rc:  newRangeContext(alg.NativeMax()),
	}
}

// NativeMax is the inclusive upper bound of Next.
func (g *Generator[A, W]) NativeMax() uint64 {
	return g.rc.nativeMax
}

// SeedLength is the number of words used by Randomize.
func (g *Generator[A, W]) SeedLength() int {
	return g.alg.SeedLength()
}

// Next returns the native draw of the algorithm in [0, NativeMax()].
func (g *Generator[A, W]) Next() uint64 {
	return g.alg.Next()
}

// Next64 returns a uniform 64-bit value regardless of the native width.
func (g *Generator[A, W]) Next64() uint64 {
	switch {
	case g.rc.native64:
		return g.alg.Next()
	case g.rc.native32:
		hi := g.alg.Next()
		lo := g.alg.Next()
		return hi<<32 | lo
	}
	// concatenate unbiased shiftBits-wide chunks until 64 bits are filled
	var v uint64
	for n := 0; n < 64; n += g.rc.shiftBits {
		v = v<<uint(g.rc.shiftBits) | g.chunk()
	}
	return v
}

// chunk draws until the native value fits in shiftMax.
func (g *Generator[A, W]) chunk() uint64 {
	for {
		if v := g.alg.Next(); v <= g.rc.shiftMax {
			return v
		}
	}
}

// Next32 returns a uniform 32-bit value. Every other call is served from
// the low half of the previous 64-bit assembly.
func (g *Generator[A, W]) Next32() uint32 {
	if g.cache.hasHalf {
		g.cache.hasHalf = false
		return g.cache.half
	}
	v := g.Next64()
	g.cache.half = uint32(v)
	g.cache.hasHalf = true
	return uint32(v >> 32)
}

// Uint64 is Next64; it makes every generator a math/rand/v2.Source.
func (g *Generator[A, W]) Uint64() uint64 {
	return g.Next64()
}

// Float64 is GetDouble.
func (g *Generator[A, W]) Float64() float64 {
	return g.GetDouble()
}
