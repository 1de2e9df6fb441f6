package matmemo

import "github.com/goforj/matmemo/matrix"

// Cell pairs one input matrix with at most one cached inverse.
// Whenever the cached slot is non-empty it holds the true inverse of
// the current input. Cell performs no computation itself and cannot
// fail; it is not safe for concurrent use (see SyncCell).
type Cell struct {
	input  *matrix.Dense
	cached *matrix.Dense
}

// NewCell creates a cell around an initial input with an empty cached
// slot. The input is cloned so later caller-side mutation cannot
// corrupt the cell's invariant.
func NewCell(input *matrix.Dense) *Cell {
	return &Cell{input: cloneMatrix(input)}
}

// SetInput replaces the stored input and unconditionally clears the
// cached result, even when the new matrix equals the old one. The
// cell never compares matrices; every call is treated as a potential
// change.
func (c *Cell) SetInput(m *matrix.Dense) {
	c.input = cloneMatrix(m)
	c.cached = nil
}

// Input returns a copy of the current input matrix. No side effects.
func (c *Cell) Input() *matrix.Dense {
	return cloneMatrix(c.input)
}

// SetCached stores result as the cached output for whatever input is
// currently stored. The cell performs no verification; the caller
// must guarantee result is the inverse of the current input.
func (c *Cell) SetCached(result *matrix.Dense) {
	c.cached = cloneMatrix(result)
}

// Cached returns a copy of the cached result and whether one is
// present. A false flag is the only empty marker; Cached never
// returns a stale value for a replaced input.
func (c *Cell) Cached() (*matrix.Dense, bool) {
	if c.cached == nil {
		return nil, false
	}
	return c.cached.Clone(), true
}

func cloneMatrix(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}
	return m.Clone()
}
