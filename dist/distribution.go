// Package dist parses distribution descriptions like "normal(0, 1)" into
// gonum distributions that draw from an rng generator.
package dist

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
	"wasi.team/prng/rng"
)

// could use more of (https://pkg.go.dev/gonum.org/v1/gonum/stat/distuv)
// * Bernoulli(p)
// * Exponential(rate)
// * Laplace(mu, scale)
// * Normal(mu, sigma)
// * LogNormal(mu, sigma)
// * Poisson(lambda)
// * Uniform(min, max)
// - Gamma(alpha, beta)
// - Weibull(k, lambda)

// a single float argument, e.g. "-1.5", "2", ".25" or "1e-3"
const number = `([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`

var (
	reOne = regexp.MustCompile(`^([a-z]+)\(\s*` + number + `\s*\)$`)
	reTwo = regexp.MustCompile(`^([a-z]+)\(\s*` + number + `\s*,\s*` + number + `\s*\)$`)
)

// Parse matches the name of a distribution and parses its arguments. The
// distribution draws from src; a nil src is an error. The "gaussian" form
// needs an rng.Random and samples with its own polar method instead of
// gonum's.
func Parse(s string, src rand.Source) (distuv.Rander, error) {
	if src == nil {
		return nil, fmt.Errorf("must provide a randomness source")
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return &Never{}, nil
	}
	name, args, err := split(s)
	if err != nil {
		return nil, err
	}

	switch name {

	case "bernoulli":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		if !(0 <= args[0] && args[0] <= 1) {
			return nil, fmt.Errorf("invalid probability: must be in [0, 1]")
		}
		return &distuv.Bernoulli{Src: src, P: args[0]}, nil

	case "exponential":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		if !(args[0] > 0) {
			return nil, fmt.Errorf("invalid rate: must be larger than 0")
		}
		return &distuv.Exponential{Src: src, Rate: args[0]}, nil

	case "poisson":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		if !(args[0] > 0) {
			return nil, fmt.Errorf("invalid lambda: must be larger than 0")
		}
		return &distuv.Poisson{Src: src, Lambda: args[0]}, nil

	case "laplace":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		if !(args[1] > 0) {
			return nil, fmt.Errorf("invalid scale: must be larger than 0")
		}
		return &distuv.Laplace{Src: src, Mu: args[0], Scale: args[1]}, nil

	case "normal", "lognormal", "gaussian":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		if args[1] < 0 {
			return nil, fmt.Errorf("invalid sigma: must be positive")
		}
		switch name {
		case "lognormal":
			return &distuv.LogNormal{Src: src, Mu: args[0], Sigma: args[1]}, nil
		case "gaussian":
			r, ok := src.(rng.Random)
			if !ok {
				return nil, fmt.Errorf("gaussian needs an rng generator, got %T", src)
			}
			return &Gaussian{Src: r, Mu: args[0], Sigma: args[1]}, nil
		}
		return &distuv.Normal{Src: src, Mu: args[0], Sigma: args[1]}, nil

	case "uniform":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		if !(args[0] < args[1]) {
			return nil, fmt.Errorf("invalid parameters: min should be smaller than max")
		}
		return &distuv.Uniform{Src: src, Min: args[0], Max: args[1]}, nil

	default:
		return nil, fmt.Errorf("unknown distribution: %s", s)
	}
}

// split a lowercase "name(a[, b])" into its name and numeric arguments
func split(s string) (name string, args []float64, err error) {
	var matches []string
	if m := reOne.FindStringSubmatch(s); m != nil {
		matches = m
	} else if m := reTwo.FindStringSubmatch(s); m != nil {
		matches = m
	} else {
		return "", nil, fmt.Errorf("invalid format: expected name(:arg[, :arg]), got %q", s)
	}
	name = matches[1]
	for _, m := range matches[2:] {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid argument %q: %w", m, err)
		}
		args = append(args, v)
	}
	return name, args, nil
}

func arity(name string, args []float64, n int) error {
	if len(args) != n {
		return fmt.Errorf("invalid format: %s takes %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// Gaussian is a normal distribution sampled with the generator's own
// polar Box-Muller method.
type Gaussian struct {
	Src   rng.Random
	Mu    float64
	Sigma float64
}

func (g *Gaussian) Rand() float64 {
	return g.Mu + g.Sigma*g.Src.GetNormal()
}

// Simplest distribution which always returns 0.
type Never struct{}

func (*Never) Rand() float64 {
	return 0
}

// Boolean coin flip based on a bernoulli distribution.
func NewCoinFlip(p float64, src rand.Source) (*CoinFlip, error) {
	if src == nil {
		return nil, fmt.Errorf("must provide a randomness source")
	}
	if p == 0 {
		return &CoinFlip{&Never{}}, nil
	}
	if !(0 <= p && p <= 1) {
		return nil, fmt.Errorf("probability must be in [0, 1]: %f", p)
	}
	return &CoinFlip{&distuv.Bernoulli{Src: src, P: p}}, nil
}

type CoinFlip struct {
	dist distuv.Rander
}

func (cf *CoinFlip) Next() bool {
	return cf.dist.Rand() == 1
}
