// Package metrics scores predictions without recording anything on a tape.
package metrics

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/nn"
)

// DefaultThreshold separates the positive and negative class.
const DefaultThreshold = 0.5

// BinaryAccuracy is the fraction of elements whose prediction falls on the
// same side of Threshold as the target.
type BinaryAccuracy struct {
	Threshold float64 // Default: 0.5; zero selects the default
}

// Compute reads the data of pred and target, which must share a non-empty
// [batch][features] shape. Values equal to the threshold count as negative.
func (m BinaryAccuracy) Compute(pred, target [][]autodiff.Value) (float64, error) {
	return m.ComputeData(data(pred), data(target))
}

// ComputeData is Compute over plain values.
func (m BinaryAccuracy) ComputeData(pred, target [][]float64) (float64, error) {
	if len(pred) == 0 {
		return 0, nn.ErrEmptyBatch
	}
	if len(target) != len(pred) {
		return 0, &nn.ShapeError{Op: "BinaryAccuracy", Got: len(target), Want: len(pred), Details: "target rows"}
	}

	thr := m.Threshold
	if thr == 0 {
		thr = DefaultThreshold
	}

	var correct, total int
	for i := range pred {
		if len(target[i]) != len(pred[i]) {
			return 0, &nn.ShapeError{Op: "BinaryAccuracy", Got: len(target[i]), Want: len(pred[i]), Details: "target columns"}
		}
		for j := range pred[i] {
			if (pred[i][j] > thr) == (target[i][j] > thr) {
				correct++
			}
			total++
		}
	}
	if total == 0 {
		return 0, nn.ErrEmptyBatch
	}
	return float64(correct) / float64(total), nil
}

func data(rows [][]autodiff.Value) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v.Data()
		}
	}
	return out
}
