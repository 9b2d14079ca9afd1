package nn

import (
	"math"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Sigmoid applies σ element-wise to a batch, e.g. to turn logits into
// probabilities for BCELoss.
func Sigmoid(t *autodiff.Tape, rows [][]autodiff.Value) [][]autodiff.Value {
	out := make([][]autodiff.Value, len(rows))
	for i, row := range rows {
		out[i] = make([]autodiff.Value, len(row))
		for j, v := range row {
			out[i][j] = t.Sigmoid(v)
		}
	}
	return out
}

// Softmax normalizes each row to a probability distribution.
//
// softmax(x)ⱼ = exp(xⱼ - m) / Σₖ exp(xₖ - m), where m is the row maximum.
// m enters the graph as a constant; the result and its gradient equal the
// unshifted formula while exp never overflows.
func Softmax(t *autodiff.Tape, rows [][]autodiff.Value) [][]autodiff.Value {
	out := make([][]autodiff.Value, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			out[i] = []autodiff.Value{}
			continue
		}

		m := math.Inf(-1)
		for _, v := range row {
			m = math.Max(m, v.Data())
		}

		exps := make([]autodiff.Value, len(row))
		for j, v := range row {
			exps[j] = t.SubScalar(v, m).Exp()
		}
		sum := t.Sum(exps...)

		out[i] = make([]autodiff.Value, len(row))
		for j, e := range exps {
			out[i][j] = t.Div(e, sum)
		}
	}
	return out
}
