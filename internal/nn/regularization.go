package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// L1 returns alpha·Σ|w| over params.
//
// |w| is recorded as relu(w) + relu(-w), so its gradient is sign(w) and 0 at w = 0.
func L1(t *autodiff.Tape, params []*Parameter, alpha float64) autodiff.Value {
	terms := make([]autodiff.Value, len(params))
	for i, p := range params {
		w := p.Value(t)
		terms[i] = t.Add(w.ReLU(), w.Neg().ReLU())
	}
	return t.MulScalar(t.Sum(terms...), alpha)
}

// L2 returns alpha·Σw² over params.
func L2(t *autodiff.Tape, params []*Parameter, alpha float64) autodiff.Value {
	terms := make([]autodiff.Value, len(params))
	for i, p := range params {
		w := p.Value(t)
		terms[i] = t.Mul(w, w)
	}
	return t.MulScalar(t.Sum(terms...), alpha)
}
