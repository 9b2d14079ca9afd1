package ops

import (
	"fmt"
	"math"
)

// LeakySlope is the slope LeakyReLU applies on the negative side.
const LeakySlope = 0.01

// ActivationKind selects the non-linearity of an Activation node.
//
// The zero value None means "no activation" and is only meaningful to callers
// that make the activation optional (a neuron of the output layer, for example).
type ActivationKind uint8

// Activation kinds.
const (
	None ActivationKind = iota
	ReLU
	LeakyReLU
	Tanh
	Sigmoid
)

// String returns the symbol used when rendering a node.
func (a ActivationKind) String() string {
	switch a {
	case None:
		return "linear"
	case ReLU:
		return "ReLU"
	case LeakyReLU:
		return "LeakyReLU"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "σ"
	default:
		return fmt.Sprintf("ActivationKind(%d)", a)
	}
}

// Activate computes the forward value of the activation at x.
func Activate(a ActivationKind, x float64) float64 {
	switch a {
	case None:
		return x
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case LeakyReLU:
		if x > 0 {
			return x
		}
		return LeakySlope * x
	case Tanh:
		return math.Tanh(x)
	case Sigmoid:
		return 1.0 / (1.0 + math.Exp(-x))
	default:
		panic(fmt.Sprintf("ops: unknown activation %d", a))
	}
}

// ActivationGrad returns the gradient contribution to the pre-activation input.
//
// ReLU and LeakyReLU read the input x; Tanh and Sigmoid read the output y:
//   - ReLU:      grad if x > 0, else 0
//   - LeakyReLU: grad if x > 0, else 0.01 * grad
//   - Tanh:      (1 - y²) * grad
//   - Sigmoid:   y * (1 - y) * grad
func ActivationGrad(a ActivationKind, x, y, grad float64) float64 {
	switch a {
	case None:
		return grad
	case ReLU:
		if x > 0 {
			return grad
		}
		return 0
	case LeakyReLU:
		if x > 0 {
			return grad
		}
		return LeakySlope * grad
	case Tanh:
		return (1 - y*y) * grad
	case Sigmoid:
		return y * (1 - y) * grad
	default:
		panic(fmt.Sprintf("ops: unknown activation %d", a))
	}
}
