package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Value is a handle to one scalar node: its data, accumulated gradient and
// graph linkage. Values are cheap to copy; the node itself lives on the Tape.
//
// The methods mirror the Tape constructors so expressions read naturally:
//
//	z := x.Mul(y).Add(x.Pow(3)).Tanh()
type Value struct {
	tape *Tape
	id   NodeID
	gen  uint32
}

// Tape returns the tape that owns the node.
func (v Value) Tape() *Tape {
	return v.tape
}

// ID returns the node identity inside its tape.
func (v Value) ID() NodeID {
	return v.id
}

// Valid reports whether v refers to a live node.
func (v Value) Valid() bool {
	return v.tape != nil && v.gen == v.tape.gen && int(v.id) < len(v.tape.nodes)
}

// Data returns the forward value.
func (v Value) Data() float64 {
	v.tape.own(v)
	return v.tape.data(v.id)
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	v.tape.own(v)
	return v.tape.grad(v.id)
}

// Op returns the operation tag.
func (v Value) Op() ops.Kind {
	v.tape.own(v)
	return v.tape.nodes[v.id].op
}

// Activation returns the activation kind of an Activation node, ops.None otherwise.
func (v Value) Activation() ops.ActivationKind {
	v.tape.own(v)
	return v.tape.nodes[v.id].act
}

// IsLeaf reports whether the node has no operands.
func (v Value) IsLeaf() bool {
	return v.Op().IsLeaf()
}

// Name returns the debug name, empty if none was set.
func (v Value) Name() string {
	v.tape.own(v)
	return v.tape.nodes[v.id].name
}

// WithName sets the debug name and returns v.
func (v Value) WithName(name string) Value {
	v.tape.own(v)
	v.tape.nodes[v.id].name = name
	return v
}

// Operands returns the 0, 1 or 2 nodes v was computed from.
func (v Value) Operands() []Value {
	v.tape.own(v)
	n := v.tape.nodes[v.id]
	switch n.op.Arity() {
	case 0:
		return nil
	case 1:
		return []Value{v.tape.Value(n.left)}
	default:
		return []Value{v.tape.Value(n.left), v.tape.Value(n.right)}
	}
}

// String renders the node for debugging, e.g. "ReLU data=1.000 grad=0.500 ← h".
func (v Value) String() string {
	if !v.Valid() {
		return "<invalid>"
	}
	n := v.tape.nodes[v.id]
	var s string
	switch n.op {
	case ops.Const:
		return fmt.Sprintf("%.3f", n.data)
	case ops.Leaf:
		s = fmt.Sprintf("data=%.3f grad=%.3f", v.Data(), v.Grad())
	case ops.Activation:
		s = fmt.Sprintf("%s data=%.3f grad=%.3f", n.act, v.Data(), v.Grad())
	default:
		s = fmt.Sprintf("%s data=%.3f grad=%.3f", n.op, v.Data(), v.Grad())
	}
	if n.name != "" {
		s += " ← " + n.name
	}
	return s
}

// Backward populates the gradient of every node reachable from v.
// See Tape.Backward.
func (v Value) Backward() {
	v.tape.Backward(v)
}

// Add returns v + o.
func (v Value) Add(o Value) Value { return v.tape.Add(v, o) }

// Sub returns v - o.
func (v Value) Sub(o Value) Value { return v.tape.Sub(v, o) }

// Mul returns v * o.
func (v Value) Mul(o Value) Value { return v.tape.Mul(v, o) }

// Div returns v / o.
func (v Value) Div(o Value) Value { return v.tape.Div(v, o) }

// Neg returns -v.
func (v Value) Neg() Value { return v.tape.Neg(v) }

// AddScalar returns v + x.
func (v Value) AddScalar(x float64) Value { return v.tape.AddScalar(v, x) }

// SubScalar returns v - x.
func (v Value) SubScalar(x float64) Value { return v.tape.SubScalar(v, x) }

// MulScalar returns v * x.
func (v Value) MulScalar(x float64) Value { return v.tape.MulScalar(v, x) }

// DivScalar returns v / x.
func (v Value) DivScalar(x float64) Value { return v.tape.DivScalar(v, x) }

// Pow returns v^p.
func (v Value) Pow(p float64) Value { return v.tape.Pow(v, p) }

// Ln returns the natural logarithm of v.
func (v Value) Ln() Value { return v.tape.Ln(v) }

// Exp returns e^v.
func (v Value) Exp() Value { return v.tape.Exp(v) }

// ReLU returns max(0, v).
func (v Value) ReLU() Value { return v.tape.ReLU(v) }

// LeakyReLU returns v if v > 0, else 0.01*v.
func (v Value) LeakyReLU() Value { return v.tape.LeakyReLU(v) }

// Tanh returns tanh(v).
func (v Value) Tanh() Value { return v.tape.Tanh(v) }

// Sigmoid returns 1 / (1 + e^-v).
func (v Value) Sigmoid() Value { return v.tape.Sigmoid(v) }

// Activate applies the given activation; ops.None returns v unchanged.
func (v Value) Activate(kind ops.ActivationKind) Value { return v.tape.Activate(v, kind) }
