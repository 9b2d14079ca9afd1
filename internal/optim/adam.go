package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// The timestep t is shared by all parameters.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	optimizer, err := optim.NewAdam(net.Parameters(), optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
type Adam struct {
	paramSet
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int       // Timestep for bias correction
	m     []float64 // First moment estimates
	v     []float64 // Second moment estimates
	sq    []float64 // Scratch for gradient²
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(params []*nn.Parameter, config AdamConfig) (*Adam, error) {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	set, err := newParamSet(params)
	if err != nil {
		return nil, err
	}

	return &Adam{
		paramSet: set,
		lr:       config.LR,
		beta1:    config.Betas[0],
		beta2:    config.Betas[1],
		eps:      config.Eps,
		m:        make([]float64, len(params)),
		v:        make([]float64, len(params)),
		sq:       make([]float64, len(params)),
	}, nil
}

// Step performs a single optimization step.
func (a *Adam) Step() {
	a.t++
	a.gather()

	// m = beta1 * m + (1 - beta1) * grad
	floats.Scale(a.beta1, a.m)
	floats.AddScaled(a.m, 1-a.beta1, a.grad)

	// v = beta2 * v + (1 - beta2) * grad²
	floats.MulTo(a.sq, a.grad, a.grad)
	floats.Scale(a.beta2, a.v)
	floats.AddScaled(a.v, 1-a.beta2, a.sq)

	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))
	for i := range a.data {
		mHat := a.m[i] / c1
		vHat := a.v[i] / c2
		a.data[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}

	a.scatter()
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}
