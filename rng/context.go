package rng

import (
	"fmt"
	"math"

	"wasi.team/prng/internal/bitutil"
)

// rangeContext is derived once from the native maximum of an algorithm.
type rangeContext struct {
	nativeMax uint64
	native32  bool
	native64  bool
	shiftBits int    // width of shiftMax
	shiftMax  uint64 // largest 2^k-1 <= nativeMax
}

func newRangeContext(nativeMax uint64) rangeContext {
	if nativeMax == 0 {
		panic(fmt.Sprintf("rng: native maximum must be positive, got %d", nativeMax))
	}
	shift := bitutil.BitsNeeded(nativeMax)
	if nativeMax != bitutil.Mask(shift) {
		shift--
	}
	return rangeContext{
		nativeMax: nativeMax,
		native32:  nativeMax == math.MaxUint32,
		native64:  nativeMax == math.MaxUint64,
		shiftBits: shift,
		shiftMax:  bitutil.Mask(shift),
	}
}

// cacheState holds every value a generator keeps between calls. It must be
// zeroed whenever the algorithm is reseeded.
type cacheState struct {
	// boolean flips
	flip     uint64
	flipBits int

	// unused low half of the last Next64 assembly
	half    uint32
	hasHalf bool

	// second value of the last polar pair
	gauss    float64
	hasGauss bool
}
