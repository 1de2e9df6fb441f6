package matmemotest

import (
	"testing"

	"github.com/goforj/matmemo"
	"github.com/goforj/matmemo/matrix"
)

// Options configures shared cell contract checks.
type Options struct {
	// CaseName labels failures. Defaults to t.Name().
	CaseName string
	// SkipCloneCheck disables the copy-in/copy-out assertions for
	// implementations that deliberately alias caller matrices.
	SkipCloneCheck bool
}

// Cell is the minimal contract required by RunCellContract.
type Cell = matmemo.CellAPI

// RunCellContract runs an implementation-agnostic cell contract suite.
// newCell must return a fresh cell holding the given initial input.
func RunCellContract(t *testing.T, newCell func(initial *matrix.Dense) Cell, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}

	m1 := mustDense(t, [][]float64{{2, 0}, {0, 2}})
	m2 := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	inv1 := mustDense(t, [][]float64{{0.5, 0}, {0, 0.5}})

	cell := newCell(m1)

	// Fresh cell: input readable, cached slot empty.
	if got := cell.Input(); !got.Equal(m1) {
		t.Fatalf("%s: fresh cell input mismatch:\n%v", caseName, got)
	}
	if _, ok := cell.Cached(); ok {
		t.Fatalf("%s: expected fresh cell cached slot empty", caseName)
	}

	// SetCached stores and reads back.
	cell.SetCached(inv1)
	got, ok := cell.Cached()
	if !ok || !got.Equal(inv1) {
		t.Fatalf("%s: cached read-back mismatch: ok=%v got:\n%v", caseName, ok, got)
	}

	if !opts.SkipCloneCheck {
		// Mutating the value returned by Cached must not corrupt the slot.
		if err := got.Set(0, 0, 99); err != nil {
			t.Fatalf("%s: mutate returned cached: %v", caseName, err)
		}
		again, ok := cell.Cached()
		if !ok || !again.Equal(inv1) {
			t.Fatalf("%s: cached slot changed after caller-side mutation", caseName)
		}
	}

	// SetInput replaces the input and invalidates unconditionally.
	cell.SetInput(m2)
	if got := cell.Input(); !got.Equal(m2) {
		t.Fatalf("%s: input after replace mismatch:\n%v", caseName, got)
	}
	if _, ok := cell.Cached(); ok {
		t.Fatalf("%s: expected cached slot empty after input replace", caseName)
	}

	// Even an identical input invalidates.
	cell.SetCached(inv1)
	cell.SetInput(cell.Input())
	if _, ok := cell.Cached(); ok {
		t.Fatalf("%s: expected identical-input replace to invalidate", caseName)
	}

	if !opts.SkipCloneCheck {
		// Mutating the caller's matrix after SetInput must not leak in.
		outside := m1.Clone()
		cell.SetInput(outside)
		if err := outside.Set(0, 0, -7); err != nil {
			t.Fatalf("%s: mutate caller matrix: %v", caseName, err)
		}
		if got := cell.Input(); !got.Equal(m1) {
			t.Fatalf("%s: cell input aliased caller matrix", caseName)
		}
	}

	// Cell stays reusable: overwrite cached, replace, repeat.
	cell.SetInput(m1)
	cell.SetCached(inv1)
	cell.SetCached(inv1)
	if _, ok := cell.Cached(); !ok {
		t.Fatalf("%s: expected cached overwrite to stay valid", caseName)
	}
}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}
	return m
}
