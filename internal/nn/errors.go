package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyBatch    = errors.New("empty batch")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNoRand        = errors.New("random source is required")
)

// ShapeError provides detailed information about a size mismatch.
type ShapeError struct {
	Op      string // Operation that rejected its input (e.g., "Neuron.Forward", "MSELoss")
	Got     int    // Size received
	Want    int    // Size expected
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: shape mismatch: %s: got %d, want %d", e.Op, e.Details, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: shape mismatch: got %d, want %d", e.Op, e.Got, e.Want)
}

// Unwrap returns ErrShapeMismatch so errors.Is matches the sentinel.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
