package matrix

import "fmt"

// Mul returns the matrix product a·b.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			v := a.data[i*a.cols+k]
			if v == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*b.cols+j] += v * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}
