package pairwise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize indicates a requested matrix size that is not positive.
var ErrInvalidSize = errors.New("pairwise: matrix size must be > 0")

// ErrIndexOutOfRange indicates a row or column index outside 0..Size()-1.
var ErrIndexOutOfRange = errors.New("pairwise: index out of range")

// Dense is a symmetric n×n distance matrix stored row-major in a flat
// slice. The diagonal is zero and every write mirrors across it, so
// At(i, j) == At(j, i) always holds.
type Dense struct {
	n    int       // number of items (rows == cols)
	data []float64 // flat backing storage, length n*n
}

// NewDense creates an n×n matrix of zero distances.
// Returns ErrInvalidSize when n <= 0.
// Complexity: O(n²) memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Size returns the number of items the matrix covers.
// Complexity: O(1).
func (m *Dense) Size() int {
	return m.n
}

// indexOf computes the flat index for (i, j) or reports ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("pairwise: (%d,%d): %w", i, j, ErrIndexOutOfRange)
	}

	return i*m.n + j, nil
}

// At returns the distance between items i and j.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set records distance v between items i and j, writing both (i,j) and
// (j,i) so the matrix stays symmetric.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if _, err := m.indexOf(i, j); err != nil {
		return err
	}
	m.setSym(i, j, v)

	return nil
}

// setSym writes v to (i,j) and (j,i) without bounds checks; callers must
// guarantee valid indexes.
func (m *Dense) setSym(i, j int, v float64) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Row returns a copy of row i: the distances from item i to every item.
// Complexity: O(n) time and memory.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("pairwise: row %d: %w", i, ErrIndexOutOfRange)
	}

	row := make([]float64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])

	return row, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
