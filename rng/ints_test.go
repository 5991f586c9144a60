package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplyShift32(t *testing.T) {
	tests := []struct {
		name      string
		draw      uint64
		max       uint32
		inclusive bool
		want      uint32
	}{
		{"half of ten", 1 << 63, 10, false, 5},
		{"half of ten inclusive", 1 << 63, 10, true, 5},
		{"zero draw", 0, 1000, false, 0},
		{"top draw", math.MaxUint64, 1000, false, 999},
		{"top draw inclusive", math.MaxUint64, 1000, true, 1000},
		{"full width", 0xDEADBEEF00000000, math.MaxUint32, true, 0xDEADBEEF},
		{"single value", math.MaxUint64, 0, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newScripted(math.MaxUint64, tt.draw)
			v, err := g.GetUInt32(tt.max, tt.inclusive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestMultiplyShift64(t *testing.T) {
	tests := []struct {
		name      string
		draw      uint64
		max       uint64
		inclusive bool
		want      uint64
	}{
		{"half", 1 << 63, 1 << 40, false, 1 << 39},
		{"top", math.MaxUint64, 1 << 40, false, 1<<40 - 1},
		{"top inclusive", math.MaxUint64, 1<<40 - 1, true, 1<<40 - 1},
		{"zero", 0, math.MaxUint64, false, 0},
		{"full width", 0x0123456789ABCDEF, math.MaxUint64, true, 0x0123456789ABCDEF},
		// narrow widths take the 32-bit path on the high half
		{"narrow", 1 << 63, 10, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newScripted(math.MaxUint64, tt.draw)
			v, err := g.GetUInt64(tt.max, tt.inclusive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSignedRanges(t *testing.T) {
	low := newScripted(math.MaxUint64, 0)
	high := newScripted(math.MaxUint64, math.MaxUint64)

	v32, err := low.GetInt32Range(-5, 5, true)
	require.NoError(t, err)
	assert.Equal(t, int32(-5), v32)
	v32, err = high.GetInt32Range(-5, 5, true)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v32)

	v64, err := low.GetInt64Range(-5, 5, false)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), v64)
	v64, err = high.GetInt64Range(-5, 5, false)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v64)

	// the full signed range bypasses the multiplication
	full := newScripted(math.MaxUint64, 0)
	v32, err = full.GetInt32Range(math.MinInt32, math.MaxInt32, true)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), v32)
	v64, err = full.GetInt64Range(math.MinInt64, math.MaxInt64, true)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v64)

	v64, err = high.GetInt64(math.MaxInt64, true)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v64)
}

func TestRangeErrors(t *testing.T) {
	g := newScripted(math.MaxUint64, 42, 43, 44)
	ref := g.Clone()

	calls := map[string]func() error{
		"uint32 zero":         func() error { _, err := g.GetUInt32(0, false); return err },
		"uint32 inverted":     func() error { _, err := g.GetUInt32Range(5, 3, true); return err },
		"uint32 empty":        func() error { _, err := g.GetUInt32Range(3, 3, false); return err },
		"int32 negative":      func() error { _, err := g.GetInt32(-1, true); return err },
		"int32 zero":          func() error { _, err := g.GetInt32(0, false); return err },
		"int32 inverted":      func() error { _, err := g.GetInt32Range(1, -1, true); return err },
		"uint64 zero":         func() error { _, err := g.GetUInt64(0, false); return err },
		"uint64 inverted":     func() error { _, err := g.GetUInt64Range(9, 8, false); return err },
		"int64 negative":      func() error { _, err := g.GetInt64(-7, false); return err },
		"int64 empty":         func() error { _, err := g.GetInt64Range(-3, -3, false); return err },
		"double max zero":     func() error { _, err := g.GetDoubleMax(0); return err },
		"double max negative": func() error { _, err := g.GetDoubleMax(-1); return err },
		"double empty":        func() error { _, err := g.GetDoubleRange(1, 1); return err },
		"double nan":          func() error { _, err := g.GetDoubleRange(math.NaN(), 1); return err },
		"double overflow":     func() error { _, err := g.GetDoubleRange(-math.MaxFloat64, math.MaxFloat64); return err },
		"open double max":     func() error { _, err := g.GetOpenDoubleMax(0); return err },
		"open double range":   func() error { _, err := g.GetOpenDoubleRange(2, 1); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), ErrInvalidRange)
			assert.True(t, g.IsConcordant(ref), "state changed by rejected call")
		})
	}
}

func TestDegenerateInclusiveRanges(t *testing.T) {
	g := newScripted(math.MaxUint64, 0xFFFFFFFF00000000)
	ref := g.Clone()

	v, err := g.GetUInt32(0, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)

	// a draw is consumed even though the result is fixed
	ref.Next32()
	assert.True(t, g.IsConcordant(ref))

	r, err := g.GetUInt32Range(3, 3, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), r)
}
