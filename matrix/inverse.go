package matrix

import (
	"fmt"
	"math"
)

// Inverse returns the multiplicative inverse of a square matrix using
// LU decomposition with partial pivoting, solving one unit column at a
// time via forward and backward substitution.
//
// Errors: ErrNilMatrix for a nil input, ErrNonSquare when rows != cols,
// ErrSingular when no usable pivot exists (the matrix is not invertible).
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Inverse: %w", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", m.rows, m.cols, ErrNonSquare)
	}

	n := m.rows
	lu := m.Clone()

	// perm[i] is the original row now stored at position i.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// In-place factorization: U fills the upper triangle, the unit
	// lower triangle of L lands below the diagonal.
	for col := 0; col < n; col++ {
		pivot := col
		max := math.Abs(lu.data[col*n+col])
		for row := col + 1; row < n; row++ {
			if v := math.Abs(lu.data[row*n+col]); v > max {
				pivot, max = row, v
			}
		}
		if max == 0 {
			return nil, fmt.Errorf("Inverse: column %d: %w", col, ErrSingular)
		}
		if pivot != col {
			lu.swapRows(pivot, col)
			perm[pivot], perm[col] = perm[col], perm[pivot]
		}
		for row := col + 1; row < n; row++ {
			factor := lu.data[row*n+col] / lu.data[col*n+col]
			lu.data[row*n+col] = factor
			for k := col + 1; k < n; k++ {
				lu.data[row*n+k] -= factor * lu.data[col*n+k]
			}
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, n)
	for col := 0; col < n; col++ {
		// Forward substitution: Ly = P·e_col.
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += lu.data[i*n+k] * y[k]
			}
			e := 0.0
			if perm[i] == col {
				e = 1.0
			}
			y[i] = e - sum
		}
		// Backward substitution: Ux = y.
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				sum += lu.data[i*n+k] * inv.data[k*n+col]
			}
			inv.data[i*n+col] = (y[i] - sum) / lu.data[i*n+i]
		}
	}
	return inv, nil
}

func (m *Dense) swapRows(a, b int) {
	ra := m.data[a*m.cols : (a+1)*m.cols]
	rb := m.data[b*m.cols : (b+1)*m.cols]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}
