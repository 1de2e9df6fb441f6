package matrix

import "errors"

// Sentinel errors returned by the matrix package. Algorithms return
// these (optionally wrapped with context via %w) so callers can match
// with errors.Is.
var (
	// ErrInvalidDimensions is returned when a requested shape has a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols() != b.Rows(), or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input was not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when no pivot can be found during
	// inversion, i.e. the matrix has no multiplicative inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
