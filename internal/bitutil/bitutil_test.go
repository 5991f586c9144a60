package bitutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsNeeded(t *testing.T) {
	tests := []struct {
		value uint64
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{6, 3},
		{7, 3},
		{8, 4},
		{math.MaxUint32, 32},
		{math.MaxUint32 + 1, 33},
		{math.MaxInt64, 63},
		{math.MaxUint64, 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BitsNeeded(tt.value), "BitsNeeded(%#x)", tt.value)
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, uint64(0), Mask(0))
	assert.Equal(t, uint64(3), Mask(2))
	assert.Equal(t, uint64(math.MaxUint32), Mask(32))
	assert.Equal(t, uint64(math.MaxInt64), Mask(63))
	assert.Equal(t, uint64(math.MaxUint64), Mask(64))
}
