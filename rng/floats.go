package rng

import (
	"fmt"
	"math"
)

const (
	oneBits  = 0x3FF0000000000000 // IEEE-754 bit pattern of 1.0
	epsilon  = 0x1p-52            // distance from 1.0 to the next double
	mantissa = 52
)

// GetDouble returns a uniform double in [0, 1). The top 52 bits of a 64-bit
// draw fill the mantissa of 1.0 and 1.0 is subtracted again.
func (g *Generator[A, W]) GetDouble() float64 {
	return math.Float64frombits(oneBits|g.Next64()>>(64-mantissa)) - 1.0
}

// GetDoubleMax returns a uniform double in [0, max).
func (g *Generator[A, W]) GetDoubleMax(max float64) (float64, error) {
	if err := checkFloatRange(0, max); err != nil {
		return 0, err
	}
	for {
		// the product may round up onto max
		if v := g.GetDouble() * max; v < max {
			return v, nil
		}
	}
}

// GetDoubleRange returns a uniform double in [min, max).
func (g *Generator[A, W]) GetDoubleRange(min, max float64) (float64, error) {
	if err := checkFloatRange(min, max); err != nil {
		return 0, err
	}
	width := max - min
	for {
		if v := min + g.GetDouble()*width; v < max {
			return v, nil
		}
	}
}

// GetOpenDouble returns a uniform double in (0, 1).
func (g *Generator[A, W]) GetOpenDouble() float64 {
	for {
		if v := g.GetDouble(); v != 0 {
			return v
		}
	}
}

// GetOpenDoubleMax returns a uniform double in (0, max).
func (g *Generator[A, W]) GetOpenDoubleMax(max float64) (float64, error) {
	if err := checkFloatRange(0, max); err != nil {
		return 0, err
	}
	for {
		if v := g.GetDouble() * max; v != 0 && v < max {
			return v, nil
		}
	}
}

// GetOpenDoubleRange returns a uniform double in (min, max).
func (g *Generator[A, W]) GetOpenDoubleRange(min, max float64) (float64, error) {
	if err := checkFloatRange(min, max); err != nil {
		return 0, err
	}
	width := max - min
	for {
		if v := min + g.GetDouble()*width; v != min && v < max {
			return v, nil
		}
	}
}

// checkFloatRange rejects empty, inverted and non-finite ranges; all of
// them would make the rejection loops spin forever.
func checkFloatRange(min, max float64) error {
	if !(min < max) {
		return fmt.Errorf("%w: need min < max, got [%v, %v)", ErrInvalidRange, min, max)
	}
	if math.IsInf(max-min, 0) {
		return fmt.Errorf("%w: width of [%v, %v) overflows", ErrInvalidRange, min, max)
	}
	return nil
}

// GetNormal returns a standard normal deviate (mean 0, stdev 1) using the
// polar Box-Muller method. Each accepted pair yields two deviates; the
// second one is returned by the following call without drawing.
func (g *Generator[A, W]) GetNormal() float64 {
	if g.cache.hasGauss {
		g.cache.hasGauss = false
		return g.cache.gauss
	}
	for {
		r0 := 2*g.GetDouble() - 1
		r1 := 2*g.GetDouble() - 1
		w := r0*r0 + r1*r1
		if w >= 1 || w <= epsilon {
			continue
		}
		scale := math.Sqrt(-2 * math.Log(w) / w)
		g.cache.gauss = r0 * scale
		g.cache.hasGauss = true
		return r1 * scale
	}
}
