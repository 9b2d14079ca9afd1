package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// NodeID addresses a node inside its Tape. It doubles as the node's identity
// during traversal; two Values are the same node iff they share tape and ID.
type NodeID int32

// noNode marks an absent operand.
const noNode NodeID = -1

// Cell is persistent storage for a trainable leaf.
//
// A Cell outlives any single Tape. A leaf bound to a Cell reads its data from
// the Cell and accumulates its gradient into it, so an optimizer can overwrite
// Data between steps without invalidating nodes that still reference it.
type Cell struct {
	Data float64
	Grad float64
}

// node is one arena record.
type node struct {
	data     float64
	grad     float64
	op       ops.Kind
	act      ops.ActivationKind // Activation nodes only
	exponent float64            // Pow nodes only
	left     NodeID
	right    NodeID
	cell     *Cell
	name     string
}

// Tape is the arena that owns every node of one computation graph.
//
// Nodes are appended in creation order, so an operand always has a smaller ID
// than its consumers. Reset discards the whole graph at once; Values created
// before a Reset become stale and panic when used.
//
// A Tape is not safe for concurrent use. Build, backward and optimizer step of
// one training iteration must run on a single goroutine.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Leaf(2.0)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
type Tape struct {
	nodes []node
	bound map[*Cell]NodeID
	gen   uint32
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 256), // Pre-allocate for common case
		bound: make(map[*Cell]NodeID),
	}
}

// Len returns the number of nodes currently in the arena.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Reset discards every node and cell binding. Capacity is kept for reuse.
func (t *Tape) Reset() {
	t.nodes = t.nodes[:0]
	clear(t.bound)
	t.gen++
}

// Value returns the handle of an existing node.
func (t *Tape) Value(id NodeID) Value {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("autodiff: node %d out of range [0, %d)", id, len(t.nodes)))
	}
	return Value{tape: t, id: id, gen: t.gen}
}

// push appends a node and returns its handle.
func (t *Tape) push(n node) Value {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return Value{tape: t, id: id, gen: t.gen}
}

// own panics unless v is a live node of this tape.
func (t *Tape) own(v Value) {
	if v.tape == nil {
		panic("autodiff: use of zero Value")
	}
	if v.tape != t {
		panic("autodiff: Value belongs to a different tape")
	}
	if v.gen != t.gen {
		panic("autodiff: Value used after Tape.Reset")
	}
}

func (t *Tape) data(id NodeID) float64 {
	n := &t.nodes[id]
	if n.cell != nil {
		return n.cell.Data
	}
	return n.data
}

func (t *Tape) grad(id NodeID) float64 {
	n := &t.nodes[id]
	if n.cell != nil {
		return n.cell.Grad
	}
	return n.grad
}

func (t *Tape) setGrad(id NodeID, g float64) {
	n := &t.nodes[id]
	if n.cell != nil {
		n.cell.Grad = g
		return
	}
	n.grad = g
}

func (t *Tape) addGrad(id NodeID, g float64) {
	n := &t.nodes[id]
	if n.cell != nil {
		n.cell.Grad += g
		return
	}
	n.grad += g
}
