package dist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"wasi.team/prng/splitmix"
)

func TestParse(t *testing.T) {
	valid := map[string]any{
		"bernoulli(0.5)":       &distuv.Bernoulli{},
		"exponential(2)":       &distuv.Exponential{},
		"poisson( 3.5 )":       &distuv.Poisson{},
		"laplace(0, 1)":        &distuv.Laplace{},
		"Normal(-1.5, .25)":    &distuv.Normal{},
		"lognormal(0,1)":       &distuv.LogNormal{},
		"gaussian(10, 1e-1)":   &Gaussian{},
		"uniform(-1, 1)":       &distuv.Uniform{},
		"":                     &Never{},
		"   ":                  &Never{},
		"exponential(+1.0E+0)": &distuv.Exponential{},
	}
	for s, want := range valid {
		d, err := Parse(s, splitmix.New())
		require.NoError(t, err, s)
		assert.IsType(t, want, d, s)
	}

	invalid := []string{
		"normal",
		"normal()",
		"normal(1)",
		"normal(0, -1)",
		"bernoulli(1.5)",
		"exponential(0)",
		"poisson(-1)",
		"laplace(0, 0)",
		"uniform(1, 1)",
		"weibull(1, 2)",
		"normal(0, 1, 2)",
		"normal(a, b)",
	}
	for _, s := range invalid {
		_, err := Parse(s, splitmix.New())
		assert.Error(t, err, s)
	}
}

func TestParseNeedsSource(t *testing.T) {
	_, err := Parse("normal(0, 1)", nil)
	assert.Error(t, err)

	// the polar method needs the engine, a bare source is not enough
	_, err = Parse("gaussian(0, 1)", rand.NewPCG(1, 2))
	assert.Error(t, err)

	d, err := Parse("normal(0, 1)", rand.NewPCG(1, 2))
	require.NoError(t, err)
	assert.IsType(t, &distuv.Normal{}, d)
}

func TestDeterministic(t *testing.T) {
	for _, s := range []string{"normal(5, 2)", "gaussian(5, 2)", "poisson(4)", "uniform(0, 10)"} {
		a, err := Parse(s, splitmix.NewSeeded(99))
		require.NoError(t, err)
		b, err := Parse(s, splitmix.NewSeeded(99))
		require.NoError(t, err)
		for range 100 {
			require.Equal(t, a.Rand(), b.Rand(), s)
		}
	}
}

func TestGaussianMoments(t *testing.T) {
	d, err := Parse("gaussian(10, 2)", splitmix.New())
	require.NoError(t, err)
	values := make([]float64, 50_000)
	for i := range values {
		values[i] = d.Rand()
	}
	mean, std := stat.MeanStdDev(values, nil)
	assert.InDelta(t, 10, mean, 0.05)
	assert.InDelta(t, 2, std, 0.05)
}

func TestNever(t *testing.T) {
	d, err := Parse("", splitmix.New())
	require.NoError(t, err)
	for range 10 {
		assert.Equal(t, 0.0, d.Rand())
	}
}

func TestCoinFlip(t *testing.T) {
	never, err := NewCoinFlip(0, splitmix.New())
	require.NoError(t, err)
	always, err := NewCoinFlip(1, splitmix.New())
	require.NoError(t, err)
	for range 100 {
		assert.False(t, never.Next())
		assert.True(t, always.Next())
	}

	_, err = NewCoinFlip(2, splitmix.New())
	assert.Error(t, err)
	_, err = NewCoinFlip(0.5, nil)
	assert.Error(t, err)
}
