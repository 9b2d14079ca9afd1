// Package nn implements neural network modules on top of the scalar autodiff engine.
//
// This package provides building blocks for constructing small networks:
//   - Parameter: Trainable scalar with persistent data and gradient
//   - Module interface: Base interface for all NN components
//   - Neuron, Layer, Network: Fully connected composition
//   - Initializers: Uniform, Xavier
//   - Loss functions: MSE, BCE, CrossEntropy, Hinge, HingeEmbedding
//   - Batch activations: Sigmoid, Softmax
//   - Regularization: L1, L2
//   - Persistence: Save, Load
//
// Every Forward method records nodes on a caller-supplied *autodiff.Tape.
// Modules themselves hold only Parameters, so one model can be evaluated on
// any number of tapes over its lifetime.
package nn

import "fmt"

// Module is the base interface for all neural network components.
//
// Every module must implement:
//   - Parameters: Return all trainable parameters
//   - ZeroGrad: Clear the gradient of every parameter
//
// Parameters must return the same parameters in the same order on every
// call; optimizers keep state aligned to that order.
type Module interface {
	// Parameters returns all trainable parameters of this module.
	//
	// The returned slice is a fresh copy; callers may modify it.
	Parameters() []*Parameter

	// ZeroGrad sets the gradient of every parameter to zero.
	ZeroGrad()
}

// zeroGrad clears the gradient of each parameter.
func zeroGrad(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// collect concatenates parameter lists, keeping the first occurrence of each
// parameter.
func collect(lists ...[]*Parameter) []*Parameter {
	var n int
	for _, l := range lists {
		n += len(l)
	}

	seen := make(map[*Parameter]struct{}, n)
	out := make([]*Parameter, 0, n)
	for _, l := range lists {
		for _, p := range l {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// prefixed renames parameters in place with a dotted scope prefix.
func prefixed(prefix string, params []*Parameter) {
	for _, p := range params {
		p.name = fmt.Sprintf("%s.%s", prefix, p.name)
	}
}
