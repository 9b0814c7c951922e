package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for an index outside the matrix.
	ErrOutOfRange = errors.New("batch: index out of range")

	// ErrDimensionMismatch is returned when inputs disagree on size.
	ErrDimensionMismatch = errors.New("batch: dimension mismatch")
)

// DistanceMatrix is a symmetric n×n matrix with a zero diagonal, stored
// row-major in one flat slice.
type DistanceMatrix struct {
	n    int
	data []float64
}

// NewDistanceMatrix allocates an n×n zero matrix.
func NewDistanceMatrix(n int) (*DistanceMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrDimensionMismatch, n)
	}

	return &DistanceMatrix{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix order.
func (m *DistanceMatrix) N() int { return m.n }

// At returns the distance between entries i and j.
func (m *DistanceMatrix) At(i, j int) (float64, error) {
	if err := m.bounds(i, j); err != nil {
		return 0, err
	}

	return m.data[i*m.n+j], nil
}

// Set stores v at (i, j) and (j, i).
func (m *DistanceMatrix) Set(i, j int, v float64) error {
	if err := m.bounds(i, j); err != nil {
		return err
	}
	m.set(i, j, v)

	return nil
}

// Row returns a copy of row i.
func (m *DistanceMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.n)
	}

	return append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...), nil
}

// set writes both halves without bounds checks; callers own disjoint cells.
func (m *DistanceMatrix) set(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

func (m *DistanceMatrix) bounds(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("%w: (%d,%d) of %d", ErrOutOfRange, i, j, m.n)
	}

	return nil
}
