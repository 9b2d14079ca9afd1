// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar autodiff.
//
// # Overview
//
// This package contains:
//   - Parameter: Trainable scalar with persistent data and gradient
//   - Neuron, Layer, Network: Fully connected composition
//   - Losses: MSE, BCE, CrossEntropy, Hinge, HingeEmbedding
//   - Sigmoid and Softmax batch helpers, L1 and L2 penalties
//   - Save and Load of parameter snapshots
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    net, err := nn.NewNetwork(nn.Config{
//	        Inputs: 2,
//	        Layers: []int{16, 16, 1},
//	        Rand:   rand.New(rand.NewSource(42)),
//	    })
//
//	    tape := autodiff.NewTape()
//	    pred, err := net.ForwardBatch(tape, tape.Consts2D(xs))
//	    loss, err := nn.BCELoss{}.Forward(tape, nn.Sigmoid(tape, pred), tape.Consts2D(ys))
//	    loss.Backward()
//	}
package nn
