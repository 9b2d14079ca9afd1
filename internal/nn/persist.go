package nn

import (
	"fmt"
	"io"

	"github.com/born-ml/scalargrad/internal/serialization"
)

// Save writes the data of m's parameters in enumeration order.
//
// The snapshot stores values only; loading requires a module of the same
// architecture.
func Save(w io.Writer, m Module) error {
	if err := serialization.WriteFloats(w, snapshot(m)); err != nil {
		return fmt.Errorf("failed to save parameters: %w", err)
	}
	return nil
}

// Load reads a snapshot and assigns it to m's parameters in enumeration order.
//
// If the stored count differs from the parameter count, Load returns a
// *serialization.CountError and assigns nothing. Gradients are not touched.
func Load(r io.Reader, m Module) error {
	values, err := serialization.ReadFloats(r)
	if err != nil {
		return fmt.Errorf("failed to load parameters: %w", err)
	}
	return assign(m, values)
}

// SaveFile writes a snapshot of m to path.
func SaveFile(path string, m Module) error {
	if err := serialization.WriteFile(path, snapshot(m)); err != nil {
		return fmt.Errorf("failed to save parameters to %s: %w", path, err)
	}
	return nil
}

// LoadFile loads a snapshot from path into m.
func LoadFile(path string, m Module) error {
	values, err := serialization.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load parameters from %s: %w", path, err)
	}
	return assign(m, values)
}

// Save writes the network parameters to w. See Save.
func (n *Network) Save(w io.Writer) error { return Save(w, n) }

// Load reads network parameters from r. See Load.
func (n *Network) Load(r io.Reader) error { return Load(r, n) }

// SaveFile writes the network parameters to path.
func (n *Network) SaveFile(path string) error { return SaveFile(path, n) }

// LoadFile reads network parameters from path.
func (n *Network) LoadFile(path string) error { return LoadFile(path, n) }

func snapshot(m Module) []float64 {
	params := m.Parameters()
	values := make([]float64, len(params))
	for i, p := range params {
		values[i] = p.Data()
	}
	return values
}

func assign(m Module, values []float64) error {
	params := m.Parameters()
	if err := serialization.CheckCount(len(values), len(params)); err != nil {
		return err
	}
	for i, p := range params {
		p.SetData(values[i])
	}
	return nil
}
