package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Backward computes gradients for every node reachable from root.
//
// Algorithm:
//  1. Depth-first post-order traversal from root; a visited set keyed by
//     NodeID guarantees each shared node is finished exactly once
//  2. Reverse the finish order so root comes first and leaves last; every
//     consumer of a node now precedes it
//  3. Seed root.grad = 1
//  4. Apply each non-leaf node's rule, accumulating into operand gradients
//
// Gradients of the other nodes are not reset: callers zero parameter
// gradients before building the graph (see nn.Module.ZeroGrad). The traversal
// always runs to completion.
func (t *Tape) Backward(root Value) {
	t.own(root)

	order := t.topoSort(root.id)

	// ∂root/∂root = 1
	t.setGrad(root.id, 1.0)

	for i := len(order) - 1; i >= 0; i-- {
		t.propagate(order[i])
	}
}

// Order returns the nodes reachable from root, root first and leaves last.
func (t *Tape) Order(root Value) []Value {
	t.own(root)
	finished := t.topoSort(root.id)
	out := make([]Value, len(finished))
	for i, id := range finished {
		out[len(finished)-1-i] = Value{tape: t, id: id, gen: t.gen}
	}
	return out
}

// topoSort returns reachable nodes in DFS finish order (operands before
// consumers). Iterative, so graph depth is bounded by memory, not the stack.
func (t *Tape) topoSort(root NodeID) []NodeID {
	type frame struct {
		id       NodeID
		expanded bool
	}

	visited := make([]bool, len(t.nodes))
	finished := make([]NodeID, 0, int(root)+1)
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			finished = append(finished, f.id)
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		stack = append(stack, frame{id: f.id, expanded: true})
		n := &t.nodes[f.id]
		// Right first so the left operand is explored first.
		if n.right != noNode && !visited[n.right] {
			stack = append(stack, frame{id: n.right})
		}
		if n.left != noNode && !visited[n.left] {
			stack = append(stack, frame{id: n.left})
		}
	}

	return finished
}

// propagate applies the local rule of one node to its operands.
func (t *Tape) propagate(id NodeID) {
	n := &t.nodes[id]
	arity := n.op.Arity()
	if arity == 0 {
		return
	}
	if n.left == noNode || (arity == 2) != (n.right != noNode) {
		panic(fmt.Sprintf("autodiff: node %d (%s) has corrupt operands", id, n.op))
	}

	in := ops.Operands{A: t.data(n.left), Exponent: n.exponent, Act: n.act}
	if arity == 2 {
		in.B = t.data(n.right)
	}

	da, db := ops.Backward(n.op, in, t.data(id), t.grad(id))
	t.addGrad(n.left, da)
	if arity == 2 {
		t.addGrad(n.right, db)
	}
}
