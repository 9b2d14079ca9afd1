package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Layer is a fully connected layer of independent neurons.
//
// Every neuron receives the same input nodes, so an input shared by nout
// neurons is a single DAG node with nout consumers.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer, err := nn.NewLayer(2, 16, ops.ReLU, nn.Uniform, rng)
//
//	tape := autodiff.NewTape()
//	h, err := layer.Forward(tape, tape.Consts([]float64{0.5, -0.3})) // 16 nodes
type Layer struct {
	neurons []*Neuron
	params  []*Parameter
}

// NewLayer creates nout neurons with nin inputs each.
//
// Parameter names are prefixed with "neuron<j>.".
func NewLayer(nin, nout int, act ops.ActivationKind, init Initializer, rng *rand.Rand) (*Layer, error) {
	if nout <= 0 {
		return nil, &ShapeError{Op: "NewLayer", Got: nout, Want: 1, Details: "need at least one neuron"}
	}

	neurons := make([]*Neuron, nout)
	lists := make([][]*Parameter, nout)
	for j := range neurons {
		n, err := newNeuron(nin, nout, act, init, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create neuron %d: %w", j, err)
		}
		neurons[j] = n
		lists[j] = n.Parameters()
		prefixed(fmt.Sprintf("neuron%d", j), lists[j])
	}

	return &Layer{
		neurons: neurons,
		params:  collect(lists...),
	}, nil
}

// Forward records every neuron on t for input x.
func (l *Layer) Forward(t *autodiff.Tape, x []autodiff.Value) ([]autodiff.Value, error) {
	out := make([]autodiff.Value, len(l.neurons))
	for j, n := range l.neurons {
		v, err := n.Forward(t, x)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}
	return out, nil
}

// Inputs returns the number of inputs each neuron expects.
func (l *Layer) Inputs() int {
	return l.neurons[0].Inputs()
}

// Outputs returns the number of neurons.
func (l *Layer) Outputs() int {
	return len(l.neurons)
}

// Neurons returns the neurons in order.
func (l *Layer) Neurons() []*Neuron {
	return append([]*Neuron(nil), l.neurons...)
}

// Parameters returns neuron parameters neuron by neuron.
func (l *Layer) Parameters() []*Parameter {
	return append([]*Parameter(nil), l.params...)
}

// ZeroGrad clears every parameter gradient.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.params)
}

// String returns e.g. "ReLU Layer(2 → 16)".
func (l *Layer) String() string {
	act := l.neurons[0].Activation()
	name := "Linear"
	if act != ops.None {
		name = act.String()
	}
	return fmt.Sprintf("%s Layer(%d → %d)", name, l.Inputs(), l.Outputs())
}
