package splitmix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVector(t *testing.T) {
	g := New()
	want := []uint64{
		0x157A3807A48FAA9D, 0xD573529B34A1D093, 0x2F90B72E996DCCBE,
		0xA2D419334C4667EC, 0x01404CE914938008,
	}
	for i, w := range want {
		assert.Equal(t, w, g.Next(), "draw %d", i)
	}
}

func TestSeeding(t *testing.T) {
	a := NewSeeded(DefaultState)
	assert.True(t, a.IsConcordant(New()))

	a.Discard(10)
	a.SetSeed()
	assert.True(t, a.IsConcordant(New()))

	a.SetSeed(7, 8, 9)
	assert.True(t, a.IsConcordant(NewSeeded(7)))

	require.NoError(t, a.SetSeedScalar(DefaultState))
	assert.Equal(t, uint64(0x157A3807A48FAA9D), a.Next())
}

func TestDiscard(t *testing.T) {
	for _, n := range []uint64{0, 1, 2, 1000, math.MaxUint64} {
		a, b := New(), New()
		a.Discard(n)
		b.Discard(n / 2)
		b.Discard(n - n/2)
		assert.True(t, a.IsConcordant(b), "discard %d", n)
	}

	a, b := New(), New()
	a.Discard(3)
	for range 3 {
		b.Next()
	}
	assert.True(t, a.IsConcordant(b))
}

func TestJump(t *testing.T) {
	a, b := New(), New()
	require.NoError(t, a.Jump())
	b.Discard(1 << JumpExponent)
	assert.True(t, a.IsConcordant(b))
	assert.Equal(t, a.Next64(), b.Next64())

	significand, exponent, err := a.JumpDistance()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), significand)
	assert.Equal(t, JumpExponent, exponent)
}

func TestMix(t *testing.T) {
	assert.Equal(t, uint64(0), Mix(0))
	assert.NotEqual(t, Mix(1), Mix(2))
	assert.Equal(t, uint64(0x157A3807A48FAA9D), Mix(DefaultState+increment))
}

func TestRandomized(t *testing.T) {
	assert.False(t, NewRandomized().IsConcordant(NewRandomized()))
}
