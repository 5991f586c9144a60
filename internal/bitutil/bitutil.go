// Package bitutil has the small bit helpers needed when a generator
// computes its range context.
package bitutil

import "math/bits"

// BitsNeeded returns the number of bits required to represent v.
// BitsNeeded(0) is 0.
func BitsNeeded(v uint64) int {
	return bits.Len64(v)
}

// Mask returns the all-ones value of the given bit width, 2^n - 1.
// Widths of 64 and above return the full 64-bit mask.
func Mask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}
