package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Parameter represents a trainable scalar in a neural network.
//
// A Parameter owns an autodiff.Cell that outlives every Tape. Each step binds
// the cell into the current tape with Value; the optimizer later rewrites the
// data through SetData without touching any graph.
//
// Example:
//
//	w := nn.NewParameter("weight[0]", 0.5)
//
//	tape := autodiff.NewTape()
//	y := w.Value(tape).MulScalar(3)
//	y.Backward()
//
//	w.Grad() // 3
type Parameter struct {
	name string        // Parameter name (e.g., "layer0.neuron1.bias")
	cell autodiff.Cell // Data and accumulated gradient
}

// NewParameter creates a new trainable parameter with zero gradient.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name: name,
		cell: autodiff.Cell{Data: data},
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the current value.
func (p *Parameter) Data() float64 {
	return p.cell.Data
}

// SetData overwrites the value. Nodes bound to the parameter observe the
// new value on their next read.
func (p *Parameter) SetData(v float64) {
	p.cell.Data = v
}

// Grad returns the gradient accumulated since the last ZeroGrad.
func (p *Parameter) Grad() float64 {
	return p.cell.Grad
}

// ZeroGrad clears the gradient.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.cell.Grad = 0
}

// Value binds the parameter into t. Repeated calls on the same tape return
// the same node.
func (p *Parameter) Value(t *autodiff.Tape) autodiff.Value {
	return t.Bind(&p.cell, p.name)
}

// String renders the parameter for debugging.
func (p *Parameter) String() string {
	return fmt.Sprintf("%s data=%.3f grad=%.3f", p.name, p.cell.Data, p.cell.Grad)
}
