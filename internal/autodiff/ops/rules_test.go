package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
)

// TestForward_Binary tests the binary forward formulas.
func TestForward_Binary(t *testing.T) {
	assert.Equal(t, 5.0, ops.Forward(ops.Add, ops.Operands{A: 2, B: 3}))
	assert.Equal(t, 6.0, ops.Forward(ops.Mul, ops.Operands{A: 2, B: 3}))
}

// TestForward_Unary tests pow, ln and exp.
func TestForward_Unary(t *testing.T) {
	assert.Equal(t, 8.0, ops.Forward(ops.Pow, ops.Operands{A: 2, Exponent: 3}))
	assert.InDelta(t, 0.5, ops.Forward(ops.Pow, ops.Operands{A: 2, Exponent: -1}), 1e-15)
	assert.InDelta(t, 1.0, ops.Forward(ops.Ln, ops.Operands{A: math.E}), 1e-15)
	assert.InDelta(t, math.E, ops.Forward(ops.Exp, ops.Operands{A: 1}), 1e-15)
}

// TestBackward_AddMul tests the local derivatives of add and mul.
func TestBackward_AddMul(t *testing.T) {
	da, db := ops.Backward(ops.Add, ops.Operands{A: 2, B: 3}, 5, 1.5)
	assert.Equal(t, 1.5, da)
	assert.Equal(t, 1.5, db)

	da, db = ops.Backward(ops.Mul, ops.Operands{A: 2, B: 3}, 6, 2)
	assert.Equal(t, 6.0, da, "d(a*b)/da = b")
	assert.Equal(t, 4.0, db, "d(a*b)/db = a")
}

// TestBackward_Unary tests pow, ln and exp local derivatives.
func TestBackward_Unary(t *testing.T) {
	da, db := ops.Backward(ops.Pow, ops.Operands{A: 3, Exponent: 2}, 9, 1)
	assert.Equal(t, 6.0, da)
	assert.Zero(t, db)

	da, _ = ops.Backward(ops.Ln, ops.Operands{A: 4}, math.Log(4), 2)
	assert.Equal(t, 0.5, da)

	// exp reads the post-exp output value.
	da, _ = ops.Backward(ops.Exp, ops.Operands{A: 0}, 7, 2)
	assert.Equal(t, 14.0, da)
}

// TestActivationGrad tests every activation rule on both sides of zero.
func TestActivationGrad(t *testing.T) {
	tests := []struct {
		name string
		act  ops.ActivationKind
		x    float64
		want float64
	}{
		{"relu positive", ops.ReLU, 2, 1},
		{"relu negative", ops.ReLU, -2, 0},
		{"relu zero", ops.ReLU, 0, 0},
		{"leaky positive", ops.LeakyReLU, 2, 1},
		{"leaky negative", ops.LeakyReLU, -2, ops.LeakySlope},
		{"tanh", ops.Tanh, 0.3, 1 - math.Tanh(0.3)*math.Tanh(0.3)},
		{"sigmoid", ops.Sigmoid, 0, 0.25},
		{"none", ops.None, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := ops.Activate(tt.act, tt.x)
			got := ops.ActivationGrad(tt.act, tt.x, y, 1)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

// TestActivate_Forward tests activation forward values.
func TestActivate_Forward(t *testing.T) {
	assert.Equal(t, 0.0, ops.Activate(ops.ReLU, -3))
	assert.Equal(t, 3.0, ops.Activate(ops.ReLU, 3))
	assert.InDelta(t, -0.03, ops.Activate(ops.LeakyReLU, -3), 1e-15)
	assert.InDelta(t, 0.5, ops.Activate(ops.Sigmoid, 0), 1e-15)
	assert.InDelta(t, math.Tanh(1.2), ops.Activate(ops.Tanh, 1.2), 1e-15)
}

// TestKind_Arity tests operand counts of each tag.
func TestKind_Arity(t *testing.T) {
	assert.Equal(t, 0, ops.Leaf.Arity())
	assert.Equal(t, 0, ops.Const.Arity())
	assert.Equal(t, 2, ops.Add.Arity())
	assert.Equal(t, 2, ops.Mul.Arity())
	assert.Equal(t, 1, ops.Pow.Arity())
	assert.Equal(t, 1, ops.Activation.Arity())
	assert.True(t, ops.Const.IsLeaf())
	assert.False(t, ops.Exp.IsLeaf())
}

// TestKind_String tests the rendering symbols.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "+", ops.Add.String())
	assert.Equal(t, "^", ops.Pow.String())
	assert.Equal(t, "σ", ops.Sigmoid.String())
	assert.Equal(t, "LeakyReLU", ops.LeakyReLU.String())
}
