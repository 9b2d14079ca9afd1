package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Default loss hyperparameters.
const (
	DefaultBCEEpsilon  = 1e-7
	DefaultHingeMargin = 1.0
)

// Loss reduces a batch of predictions and targets to one scalar node.
//
// pred and target are [batch][features]; both must be non-empty and have the
// same shape. Targets are usually constants (see Tape.Consts2D).
type Loss interface {
	Forward(t *autodiff.Tape, pred, target [][]autodiff.Value) (autodiff.Value, error)
}

// checkBatch validates that pred and target are non-empty with equal shapes.
func checkBatch(op string, pred, target [][]autodiff.Value) error {
	if len(pred) == 0 {
		return ErrEmptyBatch
	}
	if len(target) != len(pred) {
		return &ShapeError{Op: op, Got: len(target), Want: len(pred), Details: "target rows"}
	}
	for i := range pred {
		if len(pred[i]) == 0 {
			return &ShapeError{Op: op, Got: 0, Want: 1, Details: "empty prediction row"}
		}
		if len(target[i]) != len(pred[i]) {
			return &ShapeError{Op: op, Got: len(target[i]), Want: len(pred[i]), Details: "target columns"}
		}
	}
	return nil
}

// elementwise applies f to every (prediction, target) pair in row-major order.
func elementwise(pred, target [][]autodiff.Value, f func(p, y autodiff.Value) autodiff.Value) []autodiff.Value {
	var terms []autodiff.Value
	for i := range pred {
		for j := range pred[i] {
			terms = append(terms, f(pred[i][j], target[i][j]))
		}
	}
	return terms
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²) over all elements.
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
type MSELoss struct{}

// Forward computes the MSE loss.
func (MSELoss) Forward(t *autodiff.Tape, pred, target [][]autodiff.Value) (autodiff.Value, error) {
	if err := checkBatch("MSELoss", pred, target); err != nil {
		return autodiff.Value{}, err
	}
	terms := elementwise(pred, target, func(p, y autodiff.Value) autodiff.Value {
		return t.Sub(p, y).Pow(2)
	})
	return t.Mean(terms...), nil
}

// BCELoss computes binary cross-entropy on probabilities.
//
// Loss = -mean(y·ln(p+ε) + (1-y)·ln(1+ε-p))
//
// Predictions must already lie in [0, 1]; apply Sigmoid to logits first.
type BCELoss struct {
	Epsilon float64 // Added inside both logarithms (default: 1e-7; zero selects the default)
}

// Forward computes the BCE loss.
func (l BCELoss) Forward(t *autodiff.Tape, pred, target [][]autodiff.Value) (autodiff.Value, error) {
	if err := checkBatch("BCELoss", pred, target); err != nil {
		return autodiff.Value{}, err
	}
	eps := l.Epsilon
	if eps == 0 {
		eps = DefaultBCEEpsilon
	}

	terms := elementwise(pred, target, func(p, y autodiff.Value) autodiff.Value {
		pos := t.Mul(y, p.AddScalar(eps).Ln())
		neg := t.Mul(t.ScalarSub(1, y), t.ScalarSub(1+eps, p).Ln())
		return t.Add(pos, neg)
	})
	return t.Mean(terms...).Neg(), nil
}

// CrossEntropyLoss computes categorical cross-entropy on probabilities.
//
// Loss = -mean over rows of Σⱼ yⱼ·ln(pⱼ+ε)
//
// Predictions are expected to be softmax-normalized (see Softmax).
type CrossEntropyLoss struct {
	Epsilon float64 // Added inside the logarithm (default: 0)
}

// Forward computes the cross-entropy loss.
func (l CrossEntropyLoss) Forward(t *autodiff.Tape, pred, target [][]autodiff.Value) (autodiff.Value, error) {
	if err := checkBatch("CrossEntropyLoss", pred, target); err != nil {
		return autodiff.Value{}, err
	}

	rows := make([]autodiff.Value, len(pred))
	for i := range pred {
		terms := make([]autodiff.Value, len(pred[i]))
		for j, p := range pred[i] {
			if l.Epsilon != 0 {
				p = p.AddScalar(l.Epsilon)
			}
			terms[j] = t.Mul(target[i][j], p.Ln())
		}
		rows[i] = t.Sum(terms...)
	}
	return t.Mean(rows...).Neg(), nil
}

// HingeLoss computes the hinge loss for ±1 targets.
//
// Loss = mean(max(0, margin - y·p)) over all elements.
type HingeLoss struct {
	Margin float64 // Default: 1; zero selects the default
}

// Forward computes the hinge loss.
func (l HingeLoss) Forward(t *autodiff.Tape, pred, target [][]autodiff.Value) (autodiff.Value, error) {
	if err := checkBatch("HingeLoss", pred, target); err != nil {
		return autodiff.Value{}, err
	}
	margin := l.Margin
	if margin == 0 {
		margin = DefaultHingeMargin
	}

	terms := elementwise(pred, target, func(p, y autodiff.Value) autodiff.Value {
		return t.ScalarSub(margin, t.Mul(y, p)).ReLU()
	})
	return t.Mean(terms...), nil
}

// HingeEmbeddingLoss averages the per-row mean hinge term.
//
// Loss = mean over rows of mean over columns of max(0, margin - y·p)
//
// Unlike HingeLoss the margin is used as given, zero included.
type HingeEmbeddingLoss struct {
	Margin float64
}

// Forward computes the hinge-embedding loss.
func (l HingeEmbeddingLoss) Forward(t *autodiff.Tape, pred, target [][]autodiff.Value) (autodiff.Value, error) {
	if err := checkBatch("HingeEmbeddingLoss", pred, target); err != nil {
		return autodiff.Value{}, err
	}

	rows := make([]autodiff.Value, len(pred))
	for i := range pred {
		terms := make([]autodiff.Value, len(pred[i]))
		for j, p := range pred[i] {
			terms[j] = t.ScalarSub(l.Margin, t.Mul(target[i][j], p)).ReLU()
		}
		rows[i] = t.Mean(terms...)
	}
	return t.Mean(rows...), nil
}
