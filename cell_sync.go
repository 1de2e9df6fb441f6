package matmemo

import (
	"context"
	"sync"

	"github.com/goforj/matmemo/matrix"
)

// SyncCell is a Cell guarded by a mutex for concurrent callers. The
// individual accessors are each atomic; Memoize additionally holds the
// lock across the whole read-check-compute-write sequence so two
// callers cannot both observe a miss and double-compute, and a
// concurrent SetInput cannot let a stale result populate the cache for
// the new input.
type SyncCell struct {
	mu   sync.Mutex
	cell Cell
}

// NewSyncCell creates a synchronized cell around an initial input.
func NewSyncCell(input *matrix.Dense) *SyncCell {
	return &SyncCell{cell: Cell{input: cloneMatrix(input)}}
}

// SetInput replaces the input and clears the cached result atomically.
func (s *SyncCell) SetInput(m *matrix.Dense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.SetInput(m)
}

// Input returns a copy of the current input matrix.
func (s *SyncCell) Input() *matrix.Dense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cell.Input()
}

// SetCached stores a computed result for the current input.
func (s *SyncCell) SetCached(result *matrix.Dense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.SetCached(result)
}

// Cached returns a copy of the cached result and whether one is present.
func (s *SyncCell) Cached() (*matrix.Dense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cell.Cached()
}

// Memoize runs inv.Compute against the cell while holding its lock.
// Callers that pass a SyncCell straight to Inverter.Compute get
// per-accessor atomicity only; Memoize is the concurrency-safe entry
// point for compute.
func (s *SyncCell) Memoize(inv *Inverter) (*matrix.Dense, error) {
	return s.MemoizeCtx(context.Background(), inv)
}

// MemoizeCtx is the context-aware variant of Memoize.
func (s *SyncCell) MemoizeCtx(ctx context.Context, inv *Inverter) (*matrix.Dense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return inv.ComputeCtx(ctx, &s.cell)
}
