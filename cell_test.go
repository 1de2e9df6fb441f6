package matmemo

import (
	"testing"

	"github.com/goforj/matmemo/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}
	return m
}

func TestCellStartsEmpty(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	cell := NewCell(m)

	if got := cell.Input(); !got.Equal(m) {
		t.Fatalf("input mismatch:\n%v", got)
	}
	if _, ok := cell.Cached(); ok {
		t.Fatalf("expected fresh cell cached slot empty")
	}
}

func TestCellSetInputInvalidates(t *testing.T) {
	m1 := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	m2 := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	cell := NewCell(m1)
	cell.SetCached(mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}}))

	cell.SetInput(m2)
	if _, ok := cell.Cached(); ok {
		t.Fatalf("expected cached slot empty after replace")
	}
	if got := cell.Input(); !got.Equal(m2) {
		t.Fatalf("input after replace mismatch:\n%v", got)
	}
}

func TestCellSetInputInvalidatesOnIdenticalInput(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	cell := NewCell(m)
	cell.SetCached(mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}}))

	// No equality check: replacing with the same value still invalidates.
	cell.SetInput(m)
	if _, ok := cell.Cached(); ok {
		t.Fatalf("expected identical-input replace to invalidate")
	}
}

func TestCellCopyInCopyOut(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	cell := NewCell(m)

	if err := m.Set(0, 0, 42); err != nil {
		t.Fatalf("mutate caller matrix: %v", err)
	}
	if got := cell.Input(); !got.Equal(mustRows(t, [][]float64{{2, 0}, {0, 2}})) {
		t.Fatalf("cell input aliased caller matrix:\n%v", got)
	}

	inv := mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}})
	cell.SetCached(inv)
	got, ok := cell.Cached()
	if !ok {
		t.Fatalf("expected cached value")
	}
	if err := got.Set(0, 0, 99); err != nil {
		t.Fatalf("mutate returned cached: %v", err)
	}
	again, ok := cell.Cached()
	if !ok || !again.Equal(inv) {
		t.Fatalf("cached slot changed after caller-side mutation:\n%v", again)
	}
}

func TestCellSetCachedOverwrites(t *testing.T) {
	cell := NewCell(mustRows(t, [][]float64{{2, 0}, {0, 2}}))
	first := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	second := mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}})

	cell.SetCached(first)
	cell.SetCached(second)
	got, ok := cell.Cached()
	if !ok || !got.Equal(second) {
		t.Fatalf("expected overwrite to win, got ok=%v:\n%v", ok, got)
	}
}
