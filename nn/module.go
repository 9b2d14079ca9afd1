// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"
	"math/rand"

	"github.com/born-ml/scalargrad/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable scalar in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}

// Initializers

// Initializer draws one initial weight.
type Initializer = nn.Initializer

// Uniform draws weights from U(-1, 1).
func Uniform(rng *rand.Rand, fanIn, fanOut int) float64 {
	return nn.Uniform(rng, fanIn, fanOut)
}

// Xavier draws weights from the Glorot uniform distribution.
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	return nn.Xavier(rng, fanIn, fanOut)
}

// Layers

// Neuron computes act(Σ wᵢxᵢ + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights.
func NewNeuron(nin int, act autodiff.Activation, init Initializer, rng *rand.Rand) (*Neuron, error) {
	return nn.NewNeuron(nin, act, init, rng)
}

// Layer is a fully connected layer.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Example:
//
//	layer, err := nn.NewLayer(2, 16, autodiff.ReLU, nn.Xavier, rng)
func NewLayer(nin, nout int, act autodiff.Activation, init Initializer, rng *rand.Rand) (*Layer, error) {
	return nn.NewLayer(nin, nout, act, init, rng)
}

// Network chains fully connected layers.
type Network = nn.Network

// Config describes a Network.
type Config = nn.Config

// NewNetwork creates a network from cfg.
func NewNetwork(cfg Config) (*Network, error) {
	return nn.NewNetwork(cfg)
}

// Loss functions

// Loss reduces predictions and targets to one scalar node.
type Loss = nn.Loss

// MSELoss is mean squared error.
type MSELoss = nn.MSELoss

// BCELoss is binary cross-entropy on probabilities.
type BCELoss = nn.BCELoss

// CrossEntropyLoss is categorical cross-entropy on probabilities.
type CrossEntropyLoss = nn.CrossEntropyLoss

// HingeLoss is the mean hinge loss.
type HingeLoss = nn.HingeLoss

// HingeEmbeddingLoss is the mean of per-row hinge means.
type HingeEmbeddingLoss = nn.HingeEmbeddingLoss

// Batch helpers

// Sigmoid applies σ element-wise to a batch.
func Sigmoid(t *autodiff.Tape, rows [][]autodiff.Value) [][]autodiff.Value {
	return nn.Sigmoid(t, rows)
}

// Softmax normalizes each row to a probability distribution.
func Softmax(t *autodiff.Tape, rows [][]autodiff.Value) [][]autodiff.Value {
	return nn.Softmax(t, rows)
}

// L1 returns alpha·Σ|w|.
func L1(t *autodiff.Tape, params []*Parameter, alpha float64) autodiff.Value {
	return nn.L1(t, params, alpha)
}

// L2 returns alpha·Σw².
func L2(t *autodiff.Tape, params []*Parameter, alpha float64) autodiff.Value {
	return nn.L2(t, params, alpha)
}

// Persistence

// Save writes m's parameter values to w.
func Save(w io.Writer, m Module) error {
	return nn.Save(w, m)
}

// Load assigns a snapshot from r to m's parameters.
func Load(r io.Reader, m Module) error {
	return nn.Load(r, m)
}

// SaveFile writes m's parameter values to path.
func SaveFile(path string, m Module) error {
	return nn.SaveFile(path, m)
}

// LoadFile assigns a snapshot from path to m's parameters.
func LoadFile(path string, m Module) error {
	return nn.LoadFile(path, m)
}

// Errors

// ShapeError reports a size mismatch.
type ShapeError = nn.ShapeError

// Common errors.
var (
	ErrEmptyBatch    = nn.ErrEmptyBatch
	ErrShapeMismatch = nn.ErrShapeMismatch
	ErrNoRand        = nn.ErrNoRand
)
