// Package ops defines the operation tags of the scalar computation graph and
// their forward formulas and local-derivative rules.
//
// A graph node carries a Kind tag plus zero, one or two operands. The rules in
// this package are pure functions of plain float64 values, so the tape can
// dispatch on the tag without closures or dynamic dispatch:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Pow: d(a^p)/da = p * a^(p-1), no gradient flows to the exponent
//   - Ln:  d(ln a)/da = 1/a
//   - Exp: d(exp a)/da = exp(a), read from the output
//   - Activation: see Activation
package ops

import "fmt"

// Kind tags the operation that produced a node.
type Kind uint8

// Operation kinds.
const (
	Leaf  Kind = iota // Input or trainable parameter.
	Const             // Constant operand created by a scalar helper.
	Add
	Mul
	Pow
	Ln
	Exp
	Activation
)

// Arity returns the number of operands a node of this kind references.
func (k Kind) Arity() int {
	switch k {
	case Leaf, Const:
		return 0
	case Add, Mul:
		return 2
	case Pow, Ln, Exp, Activation:
		return 1
	default:
		panic(fmt.Sprintf("ops: unknown kind %d", k))
	}
}

// IsLeaf reports whether nodes of this kind have no operands.
func (k Kind) IsLeaf() bool {
	return k == Leaf || k == Const
}

// String returns the symbol used when rendering a node.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Const:
		return "const"
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "^"
	case Ln:
		return "ln"
	case Exp:
		return "exp"
	case Activation:
		return "act"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}
