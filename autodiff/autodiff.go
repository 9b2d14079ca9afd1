// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every scalar is a node on a Tape. Building an expression records its
// operands; Backward walks the recorded graph once in reverse topological
// order and accumulates ∂root/∂node into every reachable node.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    a := tape.Leaf(-4.0)
//	    b := tape.Leaf(2.0)
//
//	    c := a.Mul(b).Add(b.Pow(3)) // c = ab + b³
//	    c.Backward()
//
//	    fmt.Println(a.Grad(), b.Grad()) // 2 8
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Tape is the arena that owns every node of one computation graph.
type Tape = autodiff.Tape

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Value is a handle to one scalar node on a Tape.
type Value = autodiff.Value

// NodeID identifies a node inside its Tape.
type NodeID = autodiff.NodeID

// Cell is persistent data and gradient storage for a trainable leaf.
type Cell = autodiff.Cell

// Op identifies the operation that produced a node.
type Op = ops.Kind

// Operation tags.
const (
	OpLeaf       = ops.Leaf
	OpConst      = ops.Const
	OpAdd        = ops.Add
	OpMul        = ops.Mul
	OpPow        = ops.Pow
	OpLn         = ops.Ln
	OpExp        = ops.Exp
	OpActivation = ops.Activation
)

// Activation selects a pointwise nonlinearity.
type Activation = ops.ActivationKind

// Activation kinds.
const (
	Linear    = ops.None
	ReLU      = ops.ReLU
	LeakyReLU = ops.LeakyReLU
	Tanh      = ops.Tanh
	Sigmoid   = ops.Sigmoid
)
