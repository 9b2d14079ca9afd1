package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/nn"
)

// RMSProp scales each step by a running average of squared gradients.
//
// Update rule:
//
//	v_t = beta * v_{t-1} + (1-beta) * gradient²
//	param = param - lr * gradient / (sqrt(v_t) + eps)
type RMSProp struct {
	paramSet
	lr   float64
	beta float64
	eps  float64
	v    []float64
	sq   []float64
}

// RMSPropConfig holds configuration for RMSProp optimizer.
type RMSPropConfig struct {
	LR   float64 // Learning rate (default: 0.01)
	Beta float64 // Decay of the squared-gradient average (default: 0.9)
	Eps  float64 // Term for numerical stability (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp(params []*nn.Parameter, config RMSPropConfig) (*RMSProp, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Beta == 0 {
		config.Beta = 0.9
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	set, err := newParamSet(params)
	if err != nil {
		return nil, err
	}

	return &RMSProp{
		paramSet: set,
		lr:       config.LR,
		beta:     config.Beta,
		eps:      config.Eps,
		v:        make([]float64, len(params)),
		sq:       make([]float64, len(params)),
	}, nil
}

// Step performs a single optimization step.
func (r *RMSProp) Step() {
	r.gather()

	floats.MulTo(r.sq, r.grad, r.grad)
	floats.Scale(r.beta, r.v)
	floats.AddScaled(r.v, 1-r.beta, r.sq)

	for i := range r.data {
		r.data[i] -= r.lr * r.grad[i] / (math.Sqrt(r.v[i]) + r.eps)
	}

	r.scatter()
}

// GetLR returns the current learning rate.
func (r *RMSProp) GetLR() float64 {
	return r.lr
}

// SetLR updates the learning rate.
func (r *RMSProp) SetLR(lr float64) {
	r.lr = lr
}
