package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Neuron computes act(Σ wᵢxᵢ + b).
//
// Weights are named "weight[i]" and the bias "bias"; enclosing layers add
// their own prefix.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	act     ops.ActivationKind
}

// NewNeuron creates a neuron with nin weights drawn from init and a zero bias.
//
// A nil init selects Uniform. ops.None gives a linear neuron.
func NewNeuron(nin int, act ops.ActivationKind, init Initializer, rng *rand.Rand) (*Neuron, error) {
	return newNeuron(nin, 1, act, init, rng)
}

func newNeuron(nin, fanOut int, act ops.ActivationKind, init Initializer, rng *rand.Rand) (*Neuron, error) {
	if nin <= 0 {
		return nil, &ShapeError{Op: "NewNeuron", Got: nin, Want: 1, Details: "need at least one input"}
	}
	if rng == nil {
		return nil, ErrNoRand
	}
	if init == nil {
		init = Uniform
	}

	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("weight[%d]", i), init(rng, nin, fanOut))
	}

	return &Neuron{
		weights: weights,
		bias:    NewParameter("bias", 0),
		act:     act,
	}, nil
}

// Forward records the neuron on t for input x.
//
// Returns a *ShapeError if len(x) differs from the number of weights.
func (n *Neuron) Forward(t *autodiff.Tape, x []autodiff.Value) (autodiff.Value, error) {
	if len(x) != len(n.weights) {
		return autodiff.Value{}, &ShapeError{Op: "Neuron.Forward", Got: len(x), Want: len(n.weights)}
	}

	terms := make([]autodiff.Value, len(x))
	for i, w := range n.weights {
		terms[i] = t.Mul(w.Value(t), x[i])
	}
	z := t.Add(t.Sum(terms...), n.bias.Value(t))

	return t.Activate(z, n.act), nil
}

// Inputs returns the number of weights.
func (n *Neuron) Inputs() int {
	return len(n.weights)
}

// Activation returns the activation applied after the weighted sum.
func (n *Neuron) Activation() ops.ActivationKind {
	return n.act
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return append([]*Parameter(nil), n.weights...)
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad clears every weight and bias gradient.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.weights)
	n.bias.ZeroGrad()
}

// String returns e.g. "ReLU Neuron(3)".
func (n *Neuron) String() string {
	if n.act == ops.None {
		return fmt.Sprintf("Linear Neuron(%d)", len(n.weights))
	}
	return fmt.Sprintf("%s Neuron(%d)", n.act, len(n.weights))
}
