package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrTruncated     = errors.New("snapshot ends inside a value")
	ErrCountMismatch = errors.New("snapshot value count does not match model")
)

// CountError reports a snapshot whose value count differs from the model's
// parameter count.
type CountError struct {
	Got  int // Values in the snapshot
	Want int // Parameters in the model
}

// Error implements the error interface.
func (e *CountError) Error() string {
	return fmt.Sprintf("count_mismatch: snapshot has %d values, model has %d parameters", e.Got, e.Want)
}

// Unwrap returns ErrCountMismatch so errors.Is matches the sentinel.
func (e *CountError) Unwrap() error {
	return ErrCountMismatch
}

// CheckCount returns a *CountError unless got == want.
func CheckCount(got, want int) error {
	if got != want {
		return &CountError{Got: got, Want: want}
	}
	return nil
}
