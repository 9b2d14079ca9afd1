package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ReadFloats reads big-endian float64s until EOF.
//
// A stream whose length is not a multiple of 8 bytes fails with ErrTruncated.
func ReadFloats(r io.Reader) ([]float64, error) {
	br := bufio.NewReader(r)
	var values []float64
	var buf [valueSize]byte
	for {
		n, err := io.ReadFull(br, buf[:])
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("value %d: got %d of %d bytes: %w", len(values), n, valueSize, ErrTruncated)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read value %d: %w", len(values), err)
		}
		values = append(values, math.Float64frombits(binary.BigEndian.Uint64(buf[:])))
	}
}

// ReadFile reads a snapshot from path.
func ReadFile(path string) ([]float64, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadFloats(f)
}
