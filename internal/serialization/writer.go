package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// valueSize is the encoded size of one float64.
const valueSize = 8

// WriteFloats writes values as consecutive big-endian float64s.
func WriteFloats(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	var buf [valueSize]byte
	for i, v := range values {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("failed to write value %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes values to it.
func WriteFile(path string, values []float64) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return WriteFloats(f, values)
}
