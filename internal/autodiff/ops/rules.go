package ops

import (
	"fmt"
	"math"
)

// Operands carries the plain values a rule needs.
//
// A is the first (or only) operand, B the second operand of a binary op.
// Exponent is only read by Pow and Act only by Activation.
type Operands struct {
	A, B     float64
	Exponent float64
	Act      ActivationKind
}

// Forward computes the output value of a non-leaf op.
func Forward(k Kind, in Operands) float64 {
	switch k {
	case Add:
		return in.A + in.B
	case Mul:
		return in.A * in.B
	case Pow:
		return math.Pow(in.A, in.Exponent)
	case Ln:
		return math.Log(in.A)
	case Exp:
		return math.Exp(in.A)
	case Activation:
		return Activate(in.Act, in.A)
	default:
		panic(fmt.Sprintf("ops: Forward called on %s", k))
	}
}

// Backward returns the contributions to the operands' gradients given the
// node's output value and accumulated gradient. For unary ops db is zero.
//
// Callers add the contributions to the operand gradients; they never assign,
// since an operand may have several consumers.
func Backward(k Kind, in Operands, out, grad float64) (da, db float64) {
	switch k {
	case Add:
		return grad, grad
	case Mul:
		return in.B * grad, in.A * grad
	case Pow:
		return in.Exponent * math.Pow(in.A, in.Exponent-1) * grad, 0
	case Ln:
		return grad / in.A, 0
	case Exp:
		return out * grad, 0
	case Activation:
		return ActivationGrad(in.Act, in.A, out, grad), 0
	default:
		panic(fmt.Sprintf("ops: Backward called on %s", k))
	}
}
