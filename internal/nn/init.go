package nn

import (
	"math"
	"math/rand"
)

// Initializer draws one initial weight for a unit with fanIn inputs inside a
// layer of fanOut units. Biases always start at zero.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// Uniform draws weights from U(-1, 1), ignoring fan sizes.
func Uniform(rng *rand.Rand, _, _ int) float64 {
	return rng.Float64()*2.0 - 1.0
}

// Xavier (Glorot) initialization for weights.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
// This initialization helps maintain variance of activations across layers.
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	// Xavier/Glorot bound: sqrt(6 / (fan_in + fan_out))
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (rng.Float64()*2.0 - 1.0) * bound
}
