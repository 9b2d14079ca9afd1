package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule:
//
//	velocity = momentum * velocity + lr * gradient
//	param = param - velocity
//
// With zero momentum this is plain gradient descent, param -= lr * gradient.
// Momentum helps accelerate SGD in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer, err := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	paramSet
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Returns ErrDuplicateParameter if params lists a parameter twice.
func NewSGD(params []*nn.Parameter, config SGDConfig) (*SGD, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	set, err := newParamSet(params)
	if err != nil {
		return nil, err
	}

	return &SGD{
		paramSet: set,
		lr:       config.LR,
		momentum: config.Momentum,
		velocity: make([]float64, len(params)),
	}, nil
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	s.gather()

	// velocity = momentum * velocity + lr * grad
	floats.Scale(s.momentum, s.velocity)
	floats.AddScaled(s.velocity, s.lr, s.grad)

	// param -= velocity
	floats.Sub(s.data, s.velocity)

	s.scatter()
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Velocity returns a copy of the momentum buffer, aligned with the parameters.
func (s *SGD) Velocity() []float64 {
	return append([]float64(nil), s.velocity...)
}
