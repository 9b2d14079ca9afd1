package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Config describes a fully connected network.
type Config struct {
	Inputs     int                // Input features
	Layers     []int              // Output size of each layer; the last is the network output
	Activation ops.ActivationKind // Hidden-layer activation (default: ReLU)
	Init       Initializer        // Weight initializer (default: Uniform)
	Rand       *rand.Rand         // Random source for initialization (required)
}

// Network chains layers; each layer's outputs feed the next layer.
//
// Hidden layers apply Config.Activation. The final layer is linear so that
// callers pick the output transform (see Sigmoid, Softmax) to match the loss.
//
// Example:
//
//	net, err := nn.NewNetwork(nn.Config{
//	    Inputs: 2,
//	    Layers: []int{16, 16, 1},
//	    Rand:   rand.New(rand.NewSource(42)),
//	})
//
//	tape := autodiff.NewTape()
//	out, err := net.Forward(tape, tape.Consts([]float64{0.1, 0.9}))
type Network struct {
	layers []*Layer
	params []*Parameter
}

// NewNetwork creates a new Network from cfg.
//
// Parameter names are prefixed with "layer<k>.", e.g. "layer1.neuron3.weight[0]".
func NewNetwork(cfg Config) (*Network, error) {
	if cfg.Inputs <= 0 {
		return nil, &ShapeError{Op: "NewNetwork", Got: cfg.Inputs, Want: 1, Details: "need at least one input"}
	}
	if len(cfg.Layers) == 0 {
		return nil, &ShapeError{Op: "NewNetwork", Got: 0, Want: 1, Details: "need at least one layer"}
	}
	if cfg.Rand == nil {
		return nil, ErrNoRand
	}
	if cfg.Activation == ops.None {
		cfg.Activation = ops.ReLU
	}
	if cfg.Init == nil {
		cfg.Init = Uniform
	}

	layers := make([]*Layer, len(cfg.Layers))
	lists := make([][]*Parameter, len(cfg.Layers))
	nin := cfg.Inputs
	for k, nout := range cfg.Layers {
		act := cfg.Activation
		if k == len(cfg.Layers)-1 {
			act = ops.None
		}

		layer, err := NewLayer(nin, nout, act, cfg.Init, cfg.Rand)
		if err != nil {
			return nil, fmt.Errorf("failed to create layer %d: %w", k, err)
		}
		layers[k] = layer
		lists[k] = layer.Parameters()
		prefixed(fmt.Sprintf("layer%d", k), lists[k])
		nin = nout
	}

	return &Network{
		layers: layers,
		params: collect(lists...),
	}, nil
}

// Forward applies all layers in sequence to one input row.
func (n *Network) Forward(t *autodiff.Tape, x []autodiff.Value) ([]autodiff.Value, error) {
	out := x
	for k, layer := range n.layers {
		next, err := layer.Forward(t, out)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", k, err)
		}
		out = next
	}
	return out, nil
}

// ForwardBatch applies Forward to every row independently.
func (n *Network) ForwardBatch(t *autodiff.Tape, xs [][]autodiff.Value) ([][]autodiff.Value, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyBatch
	}

	out := make([][]autodiff.Value, len(xs))
	for i, x := range xs {
		y, err := n.Forward(t, x)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = y
	}
	return out, nil
}

// Inputs returns the number of input features.
func (n *Network) Inputs() int {
	return n.layers[0].Inputs()
}

// Outputs returns the number of output values per row.
func (n *Network) Outputs() int {
	return n.layers[len(n.layers)-1].Outputs()
}

// Layers returns the layers in order.
func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// Parameters returns all parameters layer by layer, neuron by neuron,
// weights before bias. The order is fixed at construction.
func (n *Network) Parameters() []*Parameter {
	return append([]*Parameter(nil), n.params...)
}

// ZeroGrad clears every parameter gradient.
func (n *Network) ZeroGrad() {
	zeroGrad(n.params)
}

// String renders the layer stack, e.g. "Network[ReLU Layer(2 → 16), Linear Layer(16 → 1)]".
func (n *Network) String() string {
	parts := make([]string, len(n.layers))
	for i, l := range n.layers {
		parts[i] = l.String()
	}
	return "Network[" + strings.Join(parts, ", ") + "]"
}
