// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Tape: arena owning every node of one computation graph, addressed by NodeID
//   - Value: copyable handle to a node (data, grad, op tag, operands)
//   - ops: op tags with pure forward and local-derivative rules
//   - Backward: depth-first topological sort, then chain rule in reverse order
//
// Graphs are built eagerly (define-by-run): every constructor computes the
// forward value immediately and records how to differentiate it. Nodes are
// never mutated after creation except for gradient accumulation and for the
// data of leaves bound to a Cell.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	a := tape.Leaf(-4.0)
//	b := tape.Leaf(2.0)
//	c := a.Mul(b).Add(b.Pow(3))
//	c.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // 2, -4 + 3*2² = 8
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Leaf creates an input node.
func (t *Tape) Leaf(x float64) Value {
	return t.push(node{data: x, op: ops.Leaf, left: noNode, right: noNode})
}

// Const creates a constant node. Constants receive gradient like any other
// node, but nothing reads it.
func (t *Tape) Const(x float64) Value {
	return t.push(node{data: x, op: ops.Const, left: noNode, right: noNode})
}

// Bind creates a leaf backed by persistent storage.
//
// Binding the same cell again on this tape returns the existing node, so a
// parameter used by many consumers is a single shared node of the graph.
func (t *Tape) Bind(c *Cell, name string) Value {
	if id, ok := t.bound[c]; ok {
		return Value{tape: t, id: id, gen: t.gen}
	}
	v := t.push(node{op: ops.Leaf, left: noNode, right: noNode, cell: c, name: name})
	t.bound[c] = v.id
	return v
}

// Leaves wraps each float as a leaf.
func (t *Tape) Leaves(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = t.Leaf(x)
	}
	return out
}

// Consts wraps each float as a constant.
func (t *Tape) Consts(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = t.Const(x)
	}
	return out
}

// Leaves2D wraps a batch of rows as leaves.
func (t *Tape) Leaves2D(rows [][]float64) [][]Value {
	out := make([][]Value, len(rows))
	for i, row := range rows {
		out[i] = t.Leaves(row)
	}
	return out
}

// Consts2D wraps a batch of rows as constants.
func (t *Tape) Consts2D(rows [][]float64) [][]Value {
	out := make([][]Value, len(rows))
	for i, row := range rows {
		out[i] = t.Consts(row)
	}
	return out
}

func (t *Tape) binary(k ops.Kind, a, b Value) Value {
	t.own(a)
	t.own(b)
	data := ops.Forward(k, ops.Operands{A: t.data(a.id), B: t.data(b.id)})
	return t.push(node{data: data, op: k, left: a.id, right: b.id})
}

func (t *Tape) unary(k ops.Kind, a Value, exponent float64, act ops.ActivationKind) Value {
	t.own(a)
	data := ops.Forward(k, ops.Operands{A: t.data(a.id), Exponent: exponent, Act: act})
	return t.push(node{data: data, op: k, act: act, exponent: exponent, left: a.id, right: noNode})
}

// Add returns a + b.
func (t *Tape) Add(a, b Value) Value {
	return t.binary(ops.Add, a, b)
}

// Mul returns a * b.
func (t *Tape) Mul(a, b Value) Value {
	return t.binary(ops.Mul, a, b)
}

// Neg returns a * -1.
func (t *Tape) Neg(a Value) Value {
	return t.Mul(a, t.Const(-1))
}

// Sub returns a + (-b).
func (t *Tape) Sub(a, b Value) Value {
	return t.Add(a, t.Neg(b))
}

// Div returns a * b^-1.
func (t *Tape) Div(a, b Value) Value {
	return t.Mul(a, t.Pow(b, -1))
}

// AddScalar returns a + x.
func (t *Tape) AddScalar(a Value, x float64) Value {
	return t.Add(a, t.Const(x))
}

// SubScalar returns a + (-x).
func (t *Tape) SubScalar(a Value, x float64) Value {
	return t.Add(a, t.Const(-x))
}

// MulScalar returns a * x.
func (t *Tape) MulScalar(a Value, x float64) Value {
	return t.Mul(a, t.Const(x))
}

// DivScalar returns a * (1/x). Division by zero yields ±Inf or NaN.
func (t *Tape) DivScalar(a Value, x float64) Value {
	return t.Mul(a, t.Const(1/x))
}

// ScalarSub returns x - a.
func (t *Tape) ScalarSub(x float64, a Value) Value {
	return t.Add(t.Const(x), t.Neg(a))
}

// ScalarDiv returns x / a.
func (t *Tape) ScalarDiv(x float64, a Value) Value {
	return t.Mul(t.Const(x), t.Pow(a, -1))
}

// Pow returns a^p. The exponent is a plain number; no gradient flows to it.
func (t *Tape) Pow(a Value, p float64) Value {
	return t.unary(ops.Pow, a, p, ops.None)
}

// Ln returns the natural logarithm of a. Non-positive input yields NaN or -Inf.
func (t *Tape) Ln(a Value) Value {
	return t.unary(ops.Ln, a, 0, ops.None)
}

// Exp returns e^a.
func (t *Tape) Exp(a Value) Value {
	return t.unary(ops.Exp, a, 0, ops.None)
}

// Activate applies an activation. ops.None returns a itself.
func (t *Tape) Activate(a Value, kind ops.ActivationKind) Value {
	if kind == ops.None {
		t.own(a)
		return a
	}
	return t.unary(ops.Activation, a, 0, kind)
}

// ReLU returns max(0, a).
func (t *Tape) ReLU(a Value) Value {
	return t.Activate(a, ops.ReLU)
}

// LeakyReLU returns a if a > 0, else 0.01*a.
func (t *Tape) LeakyReLU(a Value) Value {
	return t.Activate(a, ops.LeakyReLU)
}

// Tanh returns tanh(a).
func (t *Tape) Tanh(a Value) Value {
	return t.Activate(a, ops.Tanh)
}

// Sigmoid returns 1 / (1 + e^-a).
func (t *Tape) Sigmoid(a Value) Value {
	return t.Activate(a, ops.Sigmoid)
}
