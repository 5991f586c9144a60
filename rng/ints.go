package rng

import (
	"fmt"
	"math"
)

// The ranged integer operations map a fixed-width uniform onto [0, width)
// with the multiply-shift method: the uniform is read as a fraction of
// 2^32 (or 2^64), multiplied by the width and truncated. Bounds are
// validated before anything is drawn, so a rejected call leaves the state
// untouched.

// GetUInt32 returns a value in [0, max), or [0, max] if inclusive.
func (g *Generator[A, W]) GetUInt32(max uint32, inclusive bool) (uint32, error) {
	if max == 0 && !inclusive {
		return 0, fmt.Errorf("%w: exclusive upper bound 0", ErrInvalidRange)
	}
	return g.uint32n(max, inclusive), nil
}

// GetUInt32Range returns a value in [min, max), or [min, max] if inclusive.
func (g *Generator[A, W]) GetUInt32Range(min, max uint32, inclusive bool) (uint32, error) {
	if err := checkRange(max < min, max == min, inclusive, min, max); err != nil {
		return 0, err
	}
	return min + g.uint32n(max-min, inclusive), nil
}

// GetInt32 returns a value in [0, max), or [0, max] if inclusive.
func (g *Generator[A, W]) GetInt32(max int32, inclusive bool) (int32, error) {
	if err := checkRange(max < 0, max == 0, inclusive, 0, max); err != nil {
		return 0, err
	}
	return int32(g.uint32n(uint32(max), inclusive)), nil
}

// GetInt32Range returns a value in [min, max), or [min, max] if inclusive.
func (g *Generator[A, W]) GetInt32Range(min, max int32, inclusive bool) (int32, error) {
	if err := checkRange(max < min, max == min, inclusive, min, max); err != nil {
		return 0, err
	}
	// the width of any valid signed range fits the unsigned type
	width := uint32(max) - uint32(min)
	return int32(uint32(min) + g.uint32n(width, inclusive)), nil
}

// GetUInt64 returns a value in [0, max), or [0, max] if inclusive.
func (g *Generator[A, W]) GetUInt64(max uint64, inclusive bool) (uint64, error) {
	if max == 0 && !inclusive {
		return 0, fmt.Errorf("%w: exclusive upper bound 0", ErrInvalidRange)
	}
	return g.uint64n(max, inclusive), nil
}

// GetUInt64Range returns a value in [min, max), or [min, max] if inclusive.
func (g *Generator[A, W]) GetUInt64Range(min, max uint64, inclusive bool) (uint64, error) {
	if err := checkRange(max < min, max == min, inclusive, min, max); err != nil {
		return 0, err
	}
	return min + g.uint64n(max-min, inclusive), nil
}

// GetInt64 returns a value in [0, max), or [0, max] if inclusive.
func (g *Generator[A, W]) GetInt64(max int64, inclusive bool) (int64, error) {
	if err := checkRange(max < 0, max == 0, inclusive, 0, max); err != nil {
		return 0, err
	}
	return int64(g.uint64n(uint64(max), inclusive)), nil
}

// GetInt64Range returns a value in [min, max), or [min, max] if inclusive.
func (g *Generator[A, W]) GetInt64Range(min, max int64, inclusive bool) (int64, error) {
	if err := checkRange(max < min, max == min, inclusive, min, max); err != nil {
		return 0, err
	}
	width := uint64(max) - uint64(min)
	return int64(uint64(min) + g.uint64n(width, inclusive)), nil
}

func checkRange[T any](inverted, empty, inclusive bool, min, max T) error {
	if inverted {
		return fmt.Errorf("%w: max %v < min %v", ErrInvalidRange, max, min)
	}
	if empty && !inclusive {
		return fmt.Errorf("%w: empty exclusive range [%v, %v)", ErrInvalidRange, min, max)
	}
	return nil
}

// uint32n maps Next32 onto [0, width) where width is max or max+1.
func (g *Generator[A, W]) uint32n(max uint32, inclusive bool) uint32 {
	width := uint64(max)
	if inclusive {
		if max == math.MaxUint32 {
			return g.Next32()
		}
		width++
	}
	return uint32((uint64(g.Next32()) * width) >> 32)
}

// uint64n maps Next64 onto [0, width) where width is max or max+1. Widths
// that fit in 32 bits take the 32-bit path.
func (g *Generator[A, W]) uint64n(max uint64, inclusive bool) uint64 {
	if max <= math.MaxUint32 {
		return uint64(g.uint32n(uint32(max), inclusive))
	}
	width := max
	if inclusive {
		if max == math.MaxUint64 {
			return g.Next64()
		}
		width++
	}
	return mulShift64(g.Next64(), width)
}

// mulShift64 approximates (r * width) >> 64 from 32-bit halves. The low
// product and the carries are dropped, which keeps the result below width.
func mulShift64(r, width uint64) uint64 {
	const lo32 = math.MaxUint32
	rHi, rLo := r>>32, r&lo32
	wHi, wLo := width>>32, width&lo32
	return rHi*wHi + (rLo*wHi)>>32 + (rHi*wLo)>>32
}
