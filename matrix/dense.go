// Package matrix provides the dense linear-algebra primitives used by
// the memoization layer: a row-major float64 matrix and an inversion
// routine with explicit singularity and shape errors.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a row-major matrix of float64 values. The element at
// (row, col) lives at data[row*cols+col]. The zero value is not
// usable; construct with NewDense, NewDenseFromRows, or Identity.
type Dense struct {
	rows, cols int
	data       []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a rows×cols matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// NewDenseFromRows builds a matrix from a slice of rows. All rows must
// have the same non-zero length.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m := &Dense{
		rows: len(rows),
		cols: cols,
		data: make([]float64, 0, len(rows)*cols),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("(%d,%d) outside %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether other has the same shape and exactly the same
// element values.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether other has the same shape and every
// element within eps of m's.
func (m *Dense) EqualApprox(other *Dense, eps float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		d := m.data[i] - other.data[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging output.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.cols+j], 'g', -1, 64))
		}
		b.WriteString("]\n")
	}
	return b.String()
}
