// Package dataset generates small synthetic classification problems.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrNoRand is returned when a generator is configured without a random source.
var ErrNoRand = errors.New("random source is required")

// Dataset is a batch of input rows and their target rows.
type Dataset struct {
	X [][]float64
	Y [][]float64
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.X)
}

// CirclesConfig describes two concentric noisy circles.
type CirclesConfig struct {
	Samples int        // Total points (default: 100)
	Inner   float64    // Inner radius, label 1 (default: 0.5)
	Outer   float64    // Outer radius, label 0 (default: 1.0)
	Noise   float64    // Standard deviation of Gaussian jitter per coordinate (default: 0.05)
	Rand    *rand.Rand // Random source (required)
}

// Circles samples points alternately from the inner and outer circle.
//
// Even indices lie on the inner circle with target 1, odd indices on the
// outer circle with target 0. Each point gets a uniform angle and independent
// Gaussian noise on both coordinates.
func Circles(cfg CirclesConfig) (Dataset, error) {
	if cfg.Rand == nil {
		return Dataset{}, ErrNoRand
	}
	if cfg.Samples == 0 {
		cfg.Samples = 100
	}
	if cfg.Inner == 0 {
		cfg.Inner = 0.5
	}
	if cfg.Outer == 0 {
		cfg.Outer = 1.0
	}
	if cfg.Noise == 0 {
		cfg.Noise = 0.05
	}
	if cfg.Samples < 0 || cfg.Noise < 0 {
		return Dataset{}, fmt.Errorf("invalid circles config: samples=%d noise=%g", cfg.Samples, cfg.Noise)
	}

	d := Dataset{
		X: make([][]float64, cfg.Samples),
		Y: make([][]float64, cfg.Samples),
	}
	for i := 0; i < cfg.Samples; i++ {
		r, label := cfg.Outer, 0.0
		if i%2 == 0 {
			r, label = cfg.Inner, 1.0
		}
		theta := cfg.Rand.Float64() * 2 * math.Pi
		d.X[i] = []float64{
			r*math.Cos(theta) + cfg.Rand.NormFloat64()*cfg.Noise,
			r*math.Sin(theta) + cfg.Rand.NormFloat64()*cfg.Noise,
		}
		d.Y[i] = []float64{label}
	}
	return d, nil
}
