package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTape_Leaf tests leaf and constant creation.
func TestTape_Leaf(t *testing.T) {
	tape := autodiff.NewTape()

	a := tape.Leaf(3.5)
	c := tape.Const(-1)

	assert.Equal(t, 3.5, a.Data())
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, ops.Leaf, a.Op())
	assert.Equal(t, ops.Const, c.Op())
	assert.True(t, a.IsLeaf())
	assert.Nil(t, a.Operands())
	assert.Equal(t, 2, tape.Len())
}

// TestAdd_Backward tests that both operands of a sum receive the seed.
func TestAdd_Backward(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(2)
	b := tape.Leaf(-3)

	c := a.Add(b)
	require.Equal(t, -1.0, c.Data())

	c.Backward()

	assert.Equal(t, 1.0, c.Grad())
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

// TestMul_Backward tests d(a*b)/da = b and d(a*b)/db = a.
func TestMul_Backward(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(2)
	b := tape.Leaf(-3)

	c := a.Mul(b)
	require.Equal(t, -6.0, c.Data())

	c.Backward()

	assert.Equal(t, b.Data(), a.Grad())
	assert.Equal(t, a.Data(), b.Grad())
}

// TestMul_SameOperand tests x*x, where both operand slots are one node.
func TestMul_SameOperand(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(3)

	y := x.Mul(x)
	y.Backward()

	assert.Equal(t, 9.0, y.Data())
	assert.Equal(t, 6.0, x.Grad())
}

// TestDerivedOps tests neg, sub and div built from the primitives.
func TestDerivedOps(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(6)
	b := tape.Leaf(4)

	assert.Equal(t, -6.0, a.Neg().Data())
	assert.Equal(t, 2.0, a.Sub(b).Data())
	assert.Equal(t, 1.5, a.Div(b).Data())
	assert.Equal(t, 7.0, a.AddScalar(1).Data())
	assert.Equal(t, 5.0, a.SubScalar(1).Data())
	assert.Equal(t, 12.0, a.MulScalar(2).Data())
	assert.Equal(t, 3.0, a.DivScalar(2).Data())
	assert.Equal(t, 4.0, tape.ScalarSub(10, a).Data())
	assert.Equal(t, 2.0, tape.ScalarDiv(12, a).Data())

	q := a.Div(b)
	q.Backward()
	assert.InDelta(t, 1.0/4, a.Grad(), 1e-15)
	assert.InDelta(t, -6.0/16, b.Grad(), 1e-15)
}

// TestUnary_Backward tests pow, ln and exp gradients against closed forms.
func TestUnary_Backward(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		build func(autodiff.Value) autodiff.Value
		want  float64
	}{
		{"pow3", 2, func(v autodiff.Value) autodiff.Value { return v.Pow(3) }, 12},
		{"pow-1", 2, func(v autodiff.Value) autodiff.Value { return v.Pow(-1) }, -0.25},
		{"ln", 4, func(v autodiff.Value) autodiff.Value { return v.Ln() }, 0.25},
		{"exp", 1, func(v autodiff.Value) autodiff.Value { return v.Exp() }, math.E},
		{"tanh", 0.5, func(v autodiff.Value) autodiff.Value { return v.Tanh() }, 1 - math.Pow(math.Tanh(0.5), 2)},
		{"sigmoid", 0, func(v autodiff.Value) autodiff.Value { return v.Sigmoid() }, 0.25},
		{"relu+", 1.5, func(v autodiff.Value) autodiff.Value { return v.ReLU() }, 1},
		{"relu-", -1.5, func(v autodiff.Value) autodiff.Value { return v.ReLU() }, 0},
		{"leaky-", -1.5, func(v autodiff.Value) autodiff.Value { return v.LeakyReLU() }, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := autodiff.NewTape()
			x := tape.Leaf(tt.x)
			tt.build(x).Backward()
			assert.InDelta(t, tt.want, x.Grad(), 1e-12)
		})
	}
}

// TestActivate_None tests that the identity activation adds no node.
func TestActivate_None(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(1)

	y := x.Activate(ops.None)

	assert.Equal(t, x.ID(), y.ID())
	assert.Equal(t, 1, tape.Len())
}

// TestNumericAnomaly_Propagates tests that ln(0) and 1/0 are not trapped.
func TestNumericAnomaly_Propagates(t *testing.T) {
	tape := autodiff.NewTape()

	assert.True(t, math.IsInf(tape.Leaf(0).Ln().Data(), -1))
	assert.True(t, math.IsNaN(tape.Leaf(-1).Ln().Data()))
	assert.True(t, math.IsInf(tape.Leaf(1).DivScalar(0).Data(), 1))

	x := tape.Leaf(math.NaN())
	y := x.Mul(tape.Leaf(2))
	y.Backward()
	assert.True(t, math.IsNaN(y.Data()))
}

// TestSum_Product tests left folds and their empty identities.
func TestSum_Product(t *testing.T) {
	tape := autodiff.NewTape()
	xs := tape.Leaves([]float64{1, 2, 3, 4})

	assert.Equal(t, 10.0, tape.Sum(xs...).Data())
	assert.Equal(t, 24.0, tape.Product(xs...).Data())
	assert.Equal(t, 2.5, tape.Mean(xs...).Data())

	assert.Equal(t, 0.0, tape.Sum().Data(), "empty sum is 0")
	assert.Equal(t, 1.0, tape.Product().Data(), "empty product is 1")
	assert.Equal(t, 0.0, tape.Mean().Data())

	single := tape.Sum(xs[2])
	assert.Equal(t, xs[2].ID(), single.ID())
}

// TestProduct_Backward tests gradients through a product fold.
func TestProduct_Backward(t *testing.T) {
	tape := autodiff.NewTape()
	xs := tape.Leaves([]float64{2, 3, 5})

	tape.Product(xs...).Backward()

	assert.Equal(t, 15.0, xs[0].Grad())
	assert.Equal(t, 10.0, xs[1].Grad())
	assert.Equal(t, 6.0, xs[2].Grad())
}

// TestValue_NameAndString tests debug naming and rendering.
func TestValue_NameAndString(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(1).WithName("x")
	h := x.MulScalar(2).ReLU().WithName("h")

	assert.Equal(t, "x", x.Name())
	assert.Equal(t, "ReLU data=2.000 grad=0.000 ← h", h.String())
	assert.Equal(t, "data=1.000 grad=0.000 ← x", x.String())
	assert.Equal(t, "-1.000", tape.Const(-1).String())
	assert.Equal(t, "<invalid>", autodiff.Value{}.String())
}

// TestValue_Operands tests operand linkage.
func TestValue_Operands(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)
	b := tape.Leaf(2)

	sum := a.Add(b)
	ops2 := sum.Operands()
	require.Len(t, ops2, 2)
	assert.Equal(t, a.ID(), ops2[0].ID())
	assert.Equal(t, b.ID(), ops2[1].ID())

	ex := a.Exp()
	require.Len(t, ex.Operands(), 1)
	assert.Equal(t, a.ID(), ex.Operands()[0].ID())
}
