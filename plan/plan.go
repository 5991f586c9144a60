// Package plan reads YAML sampling plans and draws the described streams.
//
//	name: latency
//	seed: 42
//	algorithm: mt19937-64
//	samples: 1000
//	streams:
//	  - name: rtt
//	    seed: 1
//	    distribution: normal(20, 4)
//	  - name: loss
//	    distribution: bernoulli(0.01)
//
// Every stream draws from its own generator, derived from the plan seed and
// the stream seed, so adding or reordering streams never changes the
// values of another stream.
package plan

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"
	"wasi.team/prng/catalog"
	"wasi.team/prng/dist"
	"wasi.team/prng/internal/logger"
	"wasi.team/prng/rng"
)

type Plan struct {
	Name      string
	Seed      uint64
	Algorithm string
	Samples   int
	Streams   []StreamConfig
}

type StreamConfig struct {
	Name         string
	Seed         uint64
	Distribution string
	dist         distuv.Rander
}

// Predefined seed offset for the generator behind a stream's distribution.
const SeedDistribution uint64 = 10

// ReadPlan opens and decodes a plan file.
func ReadPlan(filename string) (*Plan, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("can't open file: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// Decode reads a plan in yaml format, fills in defaults and prepares the
// distribution of every stream.
func Decode(r io.Reader) (*Plan, error) {

	// read plan as yaml format
	p := &Plan{}
	if err := yaml.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	// make sure we have a name
	if p.Name == "" {
		return nil, fmt.Errorf("please provide a name in plan")
	}

	// make sure we have something to draw
	if p.Samples <= 0 {
		return nil, fmt.Errorf("must provide a positive number of samples")
	}
	if len(p.Streams) == 0 {
		return nil, fmt.Errorf("must provide streams, can't be empty")
	}
	if p.Algorithm == "" {
		p.Algorithm = catalog.MT19937x64
	}

	// set all zero seeds to true random numbers
	if p.Seed == 0 {
		p.Seed = rng.TrueRandom()
	}
	names := make(map[string]bool, len(p.Streams))
	for i := range p.Streams {
		s := &p.Streams[i]
		if s.Name == "" {
			return nil, fmt.Errorf("streams[%d]: must have a name", i)
		}
		if names[s.Name] {
			return nil, fmt.Errorf("streams[%d]: duplicate name %q", i, s.Name)
		}
		names[s.Name] = true
		if s.Seed == 0 {
			s.Seed = rng.TrueRandom()
		}
	}

	// use deterministic generators for all distributions
	sourcer, err := NewSourcer(p.Algorithm, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("algorithm: %w", err)
	}
	for i := range p.Streams {
		s := &p.Streams[i]
		s.dist, err = dist.Parse(s.Distribution, sourcer.NewAtOffset(s.Seed, SeedDistribution))
		if err != nil {
			return nil, fmt.Errorf("streams[%d].distribution: %w", i, err)
		}
		logger.Log().Debug().Str("plan", p.Name).Str("stream", s.Name).
			Uint64("seed", s.Seed).Str("distribution", s.Distribution).Msg("prepared stream")
	}

	return p, nil
}

func (p *Plan) check() {
	for _, s := range p.Streams {
		if s.dist == nil {
			panic("plan not properly initialized")
		}
	}
}
