// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs serialized training steps for a network and optimizer.
//
// Example:
//
//	trainer, err := train.New(net, adam, train.Config{
//	    Loss:   nn.BCELoss{},
//	    Output: nn.Sigmoid,
//	    Logger: slog.Default(),
//	})
//	results, err := trainer.Fit(ctx, xs, ys, 100)
package train

import (
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
	"github.com/born-ml/scalargrad/internal/train"
)

// Trainer runs training steps under a mutex.
type Trainer = train.Trainer

// Config holds configuration for a Trainer.
type Config = train.Config

// Result reports one training step.
type Result = train.Result

// OutputFunc transforms raw network outputs before the loss.
type OutputFunc = train.OutputFunc

// New creates a Trainer for net and opt.
func New(net *nn.Network, opt optim.Optimizer, cfg Config) (*Trainer, error) {
	return train.New(net, opt, cfg)
}

// Common errors.
var (
	ErrNilComponent  = train.ErrNilComponent
	ErrNegativeSteps = train.ErrNegativeSteps
)
