package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBackward_Diamond tests that a node reached by two paths receives the sum
// of both contributions.
//
//	c = a²  d = 3a  e = c * d  =>  de/da = 2a*3a + a²*3 = 9a²
func TestBackward_Diamond(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(2)

	c := a.Pow(2)
	d := a.MulScalar(3)
	e := c.Mul(d)

	e.Backward()

	assert.Equal(t, 24.0, e.Data())
	assert.Equal(t, 36.0, a.Grad(), "both paths must contribute")
	assert.Equal(t, 6.0, c.Grad())
	assert.Equal(t, 4.0, d.Grad())
}

// TestBackward_DeepSharing tests repeated reuse of one intermediate node.
func TestBackward_DeepSharing(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(1.5)

	// y = x + x + ... (10 times) through a shared intermediate.
	shared := x.MulScalar(1)
	terms := make([]autodiff.Value, 10)
	for i := range terms {
		terms[i] = shared
	}
	y := tape.Sum(terms...)

	y.Backward()

	assert.Equal(t, 15.0, y.Data())
	assert.Equal(t, 10.0, x.Grad())
	assert.Equal(t, 10.0, shared.Grad())
}

// TestBackward_Order tests that every consumer precedes its operands.
func TestBackward_Order(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)
	b := tape.Leaf(2)
	c := a.Mul(b)
	d := c.Add(a)
	e := d.Mul(c).Tanh()

	order := tape.Order(e)

	require.Equal(t, e.ID(), order[0].ID(), "root comes first")

	pos := make(map[autodiff.NodeID]int, len(order))
	for i, v := range order {
		_, dup := pos[v.ID()]
		require.False(t, dup, "node %d visited twice", v.ID())
		pos[v.ID()] = i
	}
	for _, v := range order {
		for _, operand := range v.Operands() {
			assert.Less(t, pos[v.ID()], pos[operand.ID()],
				"consumer %d must precede operand %d", v.ID(), operand.ID())
		}
	}
}

// TestBackward_Unreachable tests that nodes not reachable from the root keep
// a zero gradient.
func TestBackward_Unreachable(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)
	b := tape.Leaf(2)
	other := b.MulScalar(5)

	a.MulScalar(3).Backward()

	assert.Equal(t, 3.0, a.Grad())
	assert.Equal(t, 0.0, b.Grad())
	assert.Equal(t, 0.0, other.Grad())
}

// TestBackward_Accumulates tests that a second backward adds to leaf grads
// instead of resetting them.
func TestBackward_Accumulates(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(2)
	y := x.MulScalar(3)

	y.Backward()
	y.Backward()

	assert.Equal(t, 6.0, x.Grad())
	assert.Equal(t, 1.0, y.Grad(), "root is re-seeded, not accumulated")
}

// TestBackward_Fixture reproduces the canonical scalar autodiff example bit for bit.
func TestBackward_Fixture(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(-4.0)
	b := tape.Leaf(2.0)

	c := a.Add(b)
	d := a.Mul(b).Add(b.Pow(3))

	c = c.Add(c.AddScalar(1))
	c = c.Add(tape.Const(1).Add(c).Add(a.Neg()))
	d = d.Add(d.MulScalar(2).Add(b.Add(a).ReLU()))
	d = d.Add(tape.Const(3).Mul(d).Add(b.Sub(a).ReLU()))

	e := c.Sub(d)
	f := e.Pow(2)

	g := f.DivScalar(2)
	g = g.Add(tape.ScalarDiv(10, f))

	g.Backward()

	assert.Equal(t, 24.70408163265306, g.Data())
	assert.Equal(t, 138.83381924198252, a.Grad())
	assert.Equal(t, 645.5772594752186, b.Grad())
}
