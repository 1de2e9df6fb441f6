package matmemo

import "errors"

var (
	// ErrNilCell is returned by Compute when the cell itself is nil.
	ErrNilCell = errors.New("matmemo: nil cell")

	// ErrNilInput is returned by Compute when the cell holds no input
	// matrix to invert.
	ErrNilInput = errors.New("matmemo: cell has no input matrix")
)
