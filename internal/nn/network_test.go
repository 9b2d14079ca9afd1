package nn_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNetwork(t *testing.T, seed int64, layers ...int) *nn.Network {
	t.Helper()
	net, err := nn.NewNetwork(nn.Config{
		Inputs: 2,
		Layers: layers,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	require.NoError(t, err)
	return net
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	p := nn.NewParameter("w", 0.5)

	assert.Equal(t, "w", p.Name())
	assert.Equal(t, 0.5, p.Data())
	assert.Equal(t, 0.0, p.Grad())

	tape := autodiff.NewTape()
	p.Value(tape).MulScalar(3).Backward()
	assert.Equal(t, 3.0, p.Grad())

	p.SetData(2)
	assert.Equal(t, 2.0, p.Data())
	assert.Equal(t, 3.0, p.Grad(), "SetData must not touch the gradient")

	p.ZeroGrad()
	assert.Equal(t, 0.0, p.Grad())
	assert.Equal(t, "w data=2.000 grad=0.000", p.String())
}

// TestNeuron_Forward tests the weighted sum, bias and activation.
func TestNeuron_Forward(t *testing.T) {
	n, err := nn.NewNeuron(2, ops.ReLU, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	w := n.Weights()
	w[0].SetData(2)
	w[1].SetData(-1)
	n.Bias().SetData(0.5)

	tape := autodiff.NewTape()
	out, err := n.Forward(tape, tape.Consts([]float64{3, 1}))
	require.NoError(t, err)
	assert.Equal(t, 5.5, out.Data())

	out, err = n.Forward(tape, tape.Consts([]float64{-3, 1}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Data(), "ReLU clamps negative sums")

	_, err = n.Forward(tape, tape.Consts([]float64{1}))
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)

	assert.Equal(t, "ReLU Neuron(2)", n.String())
	assert.Len(t, n.Parameters(), 3)
}

// TestNeuron_Errors tests constructor validation.
func TestNeuron_Errors(t *testing.T) {
	_, err := nn.NewNeuron(0, ops.None, nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)

	_, err = nn.NewNeuron(3, ops.None, nil, nil)
	assert.ErrorIs(t, err, nn.ErrNoRand)
}

// TestLayer_SharedInputs tests that all neurons consume the same input nodes.
func TestLayer_SharedInputs(t *testing.T) {
	layer, err := nn.NewLayer(2, 4, ops.Tanh, nn.Xavier, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	tape := autodiff.NewTape()
	x := tape.Leaves([]float64{0.3, -0.7})
	out, err := layer.Forward(tape, x)
	require.NoError(t, err)
	require.Len(t, out, 4)

	tape.Sum(out...).Backward()

	var want0 float64
	for _, n := range layer.Neurons() {
		w := n.Weights()
		// d tanh(z)/dx0 = (1 - tanh²(z)) * w0
		z := w[0].Data()*0.3 + w[1].Data()*-0.7 + n.Bias().Data()
		y := tape.Const(z).Tanh().Data()
		want0 += (1 - y*y) * w[0].Data()
	}
	assert.InDelta(t, want0, x[0].Grad(), 1e-12)
	assert.Equal(t, "tanh Layer(2 → 4)", layer.String())
}

// TestNetwork_Config tests constructor validation and defaults.
func TestNetwork_Config(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := nn.NewNetwork(nn.Config{Inputs: 2, Layers: []int{1}})
	assert.ErrorIs(t, err, nn.ErrNoRand)

	_, err = nn.NewNetwork(nn.Config{Inputs: 0, Layers: []int{1}, Rand: rng})
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)

	_, err = nn.NewNetwork(nn.Config{Inputs: 2, Rand: rng})
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)

	_, err = nn.NewNetwork(nn.Config{Inputs: 2, Layers: []int{3, 0}, Rand: rng})
	var shapeErr *nn.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "NewLayer", shapeErr.Op)

	net := newTestNetwork(t, 1, 3, 1)
	layers := net.Layers()
	assert.Equal(t, ops.ReLU, layers[0].Neurons()[0].Activation(), "hidden layers default to ReLU")
	assert.Equal(t, ops.None, layers[1].Neurons()[0].Activation(), "output layer is linear")
	assert.Equal(t, "Network[ReLU Layer(2 → 3), Linear Layer(3 → 1)]", net.String())
	assert.Equal(t, 2, net.Inputs())
	assert.Equal(t, 1, net.Outputs())
}

// TestNetwork_Parameters tests enumeration count, order and stability.
func TestNetwork_Parameters(t *testing.T) {
	net := newTestNetwork(t, 7, 16, 16, 1)

	params := net.Parameters()
	require.Len(t, params, 2*16+16+16*16+16+16+1)

	assert.Equal(t, "layer0.neuron0.weight[0]", params[0].Name())
	assert.Equal(t, "layer0.neuron0.weight[1]", params[1].Name())
	assert.Equal(t, "layer0.neuron0.bias", params[2].Name())
	assert.Equal(t, "layer0.neuron1.weight[0]", params[3].Name())
	assert.Equal(t, "layer2.neuron0.bias", params[len(params)-1].Name())

	again := net.Parameters()
	require.Len(t, again, len(params))
	seen := make(map[*nn.Parameter]bool, len(params))
	for i := range params {
		assert.Same(t, params[i], again[i], "position %d", i)
		assert.False(t, seen[params[i]], "duplicate parameter %s", params[i].Name())
		seen[params[i]] = true
	}

	// Mutating the returned slice must not affect the network.
	params[0] = nil
	assert.NotNil(t, net.Parameters()[0])
}

// TestNetwork_Deterministic tests that a seeded source reproduces initialization.
func TestNetwork_Deterministic(t *testing.T) {
	a := newTestNetwork(t, 42, 4, 1)
	b := newTestNetwork(t, 42, 4, 1)

	pa, pb := a.Parameters(), b.Parameters()
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
	}
	for _, p := range pa {
		if p.Name() == "layer0.neuron0.bias" {
			assert.Equal(t, 0.0, p.Data(), "bias starts at zero")
		} else {
			assert.True(t, p.Data() >= -1 && p.Data() < 1)
		}
	}
}

// TestNetwork_ForwardBatch tests per-row evaluation and error wrapping.
func TestNetwork_ForwardBatch(t *testing.T) {
	net := newTestNetwork(t, 5, 3, 2)
	tape := autodiff.NewTape()

	xs := tape.Consts2D([][]float64{{0.1, 0.2}, {-0.5, 0.4}, {1, 1}})
	out, err := net.ForwardBatch(tape, xs)
	require.NoError(t, err)
	require.Len(t, out, 3)

	single, err := net.Forward(tape, tape.Consts([]float64{-0.5, 0.4}))
	require.NoError(t, err)
	for j := range single {
		assert.Equal(t, single[j].Data(), out[1][j].Data(), "rows are independent")
	}

	_, err = net.ForwardBatch(tape, nil)
	assert.ErrorIs(t, err, nn.ErrEmptyBatch)

	_, err = net.ForwardBatch(tape, [][]autodiff.Value{tape.Consts([]float64{1, 2, 3})})
	assert.ErrorIs(t, err, nn.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "row 0: layer 0")
}

// TestNetwork_ZeroGrad tests that ZeroGrad clears every parameter gradient.
func TestNetwork_ZeroGrad(t *testing.T) {
	net := newTestNetwork(t, 9, 3, 1)
	tape := autodiff.NewTape()

	out, err := net.Forward(tape, tape.Consts([]float64{0.5, 0.5}))
	require.NoError(t, err)
	out[0].Backward()

	var nonzero int
	for _, p := range net.Parameters() {
		if p.Grad() != 0 {
			nonzero++
		}
	}
	require.Positive(t, nonzero)

	net.ZeroGrad()
	for _, p := range net.Parameters() {
		assert.Equal(t, 0.0, p.Grad(), p.Name())
	}
}

// TestRegularization tests L1 and L2 values and gradients.
func TestRegularization(t *testing.T) {
	params := []*nn.Parameter{nn.NewParameter("a", 2), nn.NewParameter("b", -3)}
	tape := autodiff.NewTape()

	l1 := nn.L1(tape, params, 0.5)
	assert.Equal(t, 2.5, l1.Data())
	l1.Backward()
	assert.Equal(t, 0.5, params[0].Grad())
	assert.Equal(t, -0.5, params[1].Grad())

	for _, p := range params {
		p.ZeroGrad()
	}
	l2 := nn.L2(tape, params, 0.1)
	assert.InDelta(t, 1.3, l2.Data(), 1e-12)
	l2.Backward()
	assert.InDelta(t, 0.4, params[0].Grad(), 1e-12)
	assert.InDelta(t, -0.6, params[1].Grad(), 1e-12)
}
