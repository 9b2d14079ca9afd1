// Package train drives the zero_grad → forward → loss → backward → step cycle.
package train

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Errors returned by the trainer.
var (
	ErrNilComponent  = errors.New("network and optimizer are required")
	ErrNegativeSteps = errors.New("step count must not be negative")
)

// OutputFunc transforms raw network outputs before the loss, e.g. nn.Sigmoid.
type OutputFunc func(t *autodiff.Tape, rows [][]autodiff.Value) [][]autodiff.Value

// Config holds configuration for a Trainer.
type Config struct {
	Loss   nn.Loss      // Loss function (default: nn.MSELoss)
	Output OutputFunc   // Output transform (default: identity)
	L2     float64      // Weight of an L2 penalty over all parameters (default: 0, disabled)
	Logger *slog.Logger // Per-step debug records (default: discard)
}

// Result reports one training step.
type Result struct {
	Step        int         // 1-based step number
	Loss        float64     // Loss before the update, penalty included
	Predictions [][]float64 // Transformed outputs before the update
}

// Trainer runs training steps for one network and optimizer.
//
// Step holds a mutex for the whole cycle, so concurrent callers are
// serialized and never observe a half-updated model. One Tape is reused and
// reset at the start of every step.
//
// Example:
//
//	trainer, err := train.New(net, adam, train.Config{
//	    Loss:   nn.BCELoss{},
//	    Output: nn.Sigmoid,
//	})
//	res, err := trainer.Step(xs, ys)
type Trainer struct {
	mu     sync.Mutex
	net    *nn.Network
	opt    optim.Optimizer
	params []*nn.Parameter
	loss   nn.Loss
	output OutputFunc
	l2     float64
	logger *slog.Logger
	tape   *autodiff.Tape
	step   int
}

// New creates a Trainer. The optimizer must have been built from
// net.Parameters(); otherwise New returns an error wrapping
// optim.ErrParameterMismatch.
func New(net *nn.Network, opt optim.Optimizer, cfg Config) (*Trainer, error) {
	if net == nil || opt == nil {
		return nil, ErrNilComponent
	}

	params := net.Parameters()
	if err := opt.CheckAligned(params); err != nil {
		return nil, fmt.Errorf("optimizer does not match network: %w", err)
	}

	// Set defaults
	if cfg.Loss == nil {
		cfg.Loss = nn.MSELoss{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Trainer{
		net:    net,
		opt:    opt,
		params: params,
		loss:   cfg.Loss,
		output: cfg.Output,
		l2:     cfg.L2,
		logger: cfg.Logger,
		tape:   autodiff.NewTape(),
	}, nil
}

// Step runs one full-batch training step on xs and ys.
//
// On error no parameter is modified.
func (t *Trainer) Step(xs, ys [][]float64) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.opt.ZeroGrad()
	t.tape.Reset()

	pred, err := t.forward(xs)
	if err != nil {
		return Result{}, err
	}
	loss, err := t.loss.Forward(t.tape, pred, t.tape.Consts2D(ys))
	if err != nil {
		return Result{}, fmt.Errorf("loss: %w", err)
	}
	if t.l2 != 0 {
		loss = t.tape.Add(loss, nn.L2(t.tape, t.params, t.l2))
	}

	loss.Backward()
	t.opt.Step()
	t.step++

	res := Result{
		Step:        t.step,
		Loss:        loss.Data(),
		Predictions: values(pred),
	}
	t.logger.Debug("train step",
		slog.Int("step", res.Step),
		slog.Float64("loss", res.Loss),
		slog.Int("nodes", t.tape.Len()),
	)
	return res, nil
}

// Fit runs up to steps training steps, stopping early when ctx is done.
// It returns the results of the completed steps.
func (t *Trainer) Fit(ctx context.Context, xs, ys [][]float64, steps int) ([]Result, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	results := make([]Result, 0, steps)
	for s := 0; s < steps; s++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := t.Step(xs, ys)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", len(results)+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Predict evaluates the network and output transform without training.
func (t *Trainer) Predict(xs [][]float64) ([][]float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tape.Reset()
	pred, err := t.forward(xs)
	if err != nil {
		return nil, err
	}
	return values(pred), nil
}

// Steps returns the number of completed training steps.
func (t *Trainer) Steps() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step
}

func (t *Trainer) forward(xs [][]float64) ([][]autodiff.Value, error) {
	out, err := t.net.ForwardBatch(t.tape, t.tape.Consts2D(xs))
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	if t.output != nil {
		out = t.output(t.tape, out)
	}
	return out, nil
}

func values(rows [][]autodiff.Value) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v.Data()
		}
	}
	return out
}
