// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - RMSProp: Root Mean Square Propagation
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	    "github.com/born-ml/scalargrad/optim"
//	)
//
//	func main() {
//	    // Create optimizer
//	    optimizer, err := optim.NewAdam(
//	        net.Parameters(),
//	        optim.AdamConfig{
//	            LR:    0.001,
//	            Betas: [2]float64{0.9, 0.999},
//	            Eps:   1e-8,
//	        },
//	    )
//
//	    // Training loop
//	    tape := autodiff.NewTape()
//	    for step := range steps {
//	        optimizer.ZeroGrad()
//	        tape.Reset()
//	        loss := computeLoss(tape, net, batch)
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
package optim
