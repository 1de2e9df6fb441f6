package matmemo

import (
	"context"
	"time"

	"github.com/goforj/matmemo/matrix"
)

const opCompute = "compute"

// InverseFunc computes the multiplicative inverse of a square matrix.
// It must be a pure function of its input.
type InverseFunc func(*matrix.Dense) (*matrix.Dense, error)

// Inverter memoizes matrix inversion through a cell: Compute returns
// the cached inverse when present, otherwise it invokes the inversion
// primitive on the current input, stores the result back, and returns
// it. A failed inversion propagates unchanged and never populates the
// cache, so the next Compute on the same input retries.
type Inverter struct {
	inverse  InverseFunc
	observer Observer
}

// NewInverter creates an inverter using matrix.Inverse as the
// primitive unless overridden via options.
//
// Example: memoize an inversion
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	cell := matmemo.NewCell(m)
//	inv := matmemo.NewInverter()
//	out, _ := inv.Compute(cell) // computes [[0.5,0],[0,0.5]]
//	out, _ = inv.Compute(cell)  // cache hit, no recomputation
func NewInverter(opts ...Option) *Inverter {
	v := &Inverter{inverse: matrix.Inverse}
	for _, opt := range opts {
		opt(v)
	}
	if v.inverse == nil {
		v.inverse = matrix.Inverse
	}
	return v
}

// WithObserver attaches an observer and returns the inverter.
func (v *Inverter) WithObserver(o Observer) *Inverter {
	v.observer = o
	return v
}

// Compute returns the inverse of the cell's current input, reusing the
// cached result when present.
func (v *Inverter) Compute(cell CellAPI) (*matrix.Dense, error) {
	return v.ComputeCtx(context.Background(), cell)
}

// ComputeCtx is the context-aware variant of Compute. The computation
// itself is synchronous and runs to completion on the caller's
// goroutine; ctx is forwarded to the observer only.
func (v *Inverter) ComputeCtx(ctx context.Context, cell CellAPI) (*matrix.Dense, error) {
	start := time.Now()
	if cell == nil {
		v.observe(ctx, "", false, ErrNilCell, start)
		return nil, ErrNilCell
	}
	if result, ok := cell.Cached(); ok {
		v.observe(ctx, v.hitKey(cell), true, nil, start)
		return result, nil
	}
	input := cell.Input()
	if input == nil {
		v.observe(ctx, "", false, ErrNilInput, start)
		return nil, ErrNilInput
	}
	result, err := v.inverse(input)
	if err != nil {
		// Cached slot stays empty; the next Compute retries.
		v.observe(ctx, MatrixDigest(input), false, err, start)
		return nil, err
	}
	cell.SetCached(result)
	v.observe(ctx, MatrixDigest(input), false, nil, start)
	return result, nil
}

// hitKey digests the input only when someone is listening.
func (v *Inverter) hitKey(cell CellAPI) string {
	if v.observer == nil {
		return ""
	}
	return MatrixDigest(cell.Input())
}

func (v *Inverter) observe(ctx context.Context, key string, hit bool, err error, start time.Time) {
	if v.observer == nil {
		return
	}
	v.observer.OnComputeOp(ctx, opCompute, key, hit, err, time.Since(start))
}
