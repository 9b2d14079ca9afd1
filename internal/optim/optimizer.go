// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - RMSProp: Root Mean Square Propagation
//
// Every optimizer snapshots the parameter list at construction and keeps its
// per-parameter state in slices aligned to that order. Step reads gradients
// and writes data; it never touches gradients.
//
// Example usage:
//
//	optimizer, err := optim.NewAdam(net.Parameters(), optim.AdamConfig{
//	    LR: 0.001,
//	})
//
//	// Training loop
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    tape.Reset()
//	    loss := computeLoss(tape, net, batch)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/scalargrad/internal/nn"
)

// Common errors.
var (
	ErrParameterMismatch  = errors.New("parameter enumeration does not match optimizer state")
	ErrDuplicateParameter = errors.New("parameter listed more than once")
)

// AlignmentError reports where a parameter enumeration diverges from the
// snapshot an optimizer was built with.
type AlignmentError struct {
	Index int // First diverging position, or -1 for a length mismatch
	Got   int // Length of the given enumeration
	Want  int // Length of the snapshot
}

// Error implements the error interface.
func (e *AlignmentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("parameter_mismatch: got %d parameters, want %d", e.Got, e.Want)
	}
	return fmt.Sprintf("parameter_mismatch: parameter %d differs from optimizer state", e.Index)
}

// Unwrap returns ErrParameterMismatch so errors.Is matches the sentinel.
func (e *AlignmentError) Unwrap() error {
	return ErrParameterMismatch
}

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters based on computed gradients to
// minimize the loss function during training.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR, SetLR: Learning rate access (for monitoring/scheduling)
//   - CheckAligned: Verify a parameter enumeration against optimizer state
type Optimizer interface {
	// Step applies one update to every parameter from its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)

	// CheckAligned returns an *AlignmentError unless params lists exactly
	// the optimizer's parameters in the same order.
	CheckAligned(params []*nn.Parameter) error
}

// paramSet is the construction-time parameter snapshot shared by all
// optimizers, plus scratch buffers for vectorized updates.
type paramSet struct {
	params []*nn.Parameter
	data   []float64
	grad   []float64
}

func newParamSet(params []*nn.Parameter) (paramSet, error) {
	seen := make(map[*nn.Parameter]struct{}, len(params))
	for i, p := range params {
		if _, ok := seen[p]; ok {
			return paramSet{}, fmt.Errorf("parameter %d (%s): %w", i, p.Name(), ErrDuplicateParameter)
		}
		seen[p] = struct{}{}
	}

	return paramSet{
		params: append([]*nn.Parameter(nil), params...),
		data:   make([]float64, len(params)),
		grad:   make([]float64, len(params)),
	}, nil
}

// gather copies parameter data and gradients into the scratch buffers.
func (s *paramSet) gather() {
	for i, p := range s.params {
		s.data[i] = p.Data()
		s.grad[i] = p.Grad()
	}
}

// scatter writes the data buffer back to the parameters.
func (s *paramSet) scatter() {
	for i, p := range s.params {
		p.SetData(s.data[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *paramSet) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// CheckAligned compares params with the snapshot by length and identity.
func (s *paramSet) CheckAligned(params []*nn.Parameter) error {
	if len(params) != len(s.params) {
		return &AlignmentError{Index: -1, Got: len(params), Want: len(s.params)}
	}
	for i := range params {
		if params[i] != s.params[i] {
			return &AlignmentError{Index: i, Got: len(params), Want: len(s.params)}
		}
	}
	return nil
}
