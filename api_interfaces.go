package matmemo

import "github.com/goforj/matmemo/matrix"

// InputAPI exposes the mutable input slot of a cell.
type InputAPI interface {
	SetInput(m *matrix.Dense)
	Input() *matrix.Dense
}

// CachedAPI exposes the cached-result slot of a cell.
type CachedAPI interface {
	SetCached(result *matrix.Dense)
	Cached() (*matrix.Dense, bool)
}

// CellAPI is the composed cell surface Inverter.Compute operates on.
type CellAPI interface {
	InputAPI
	CachedAPI
}

var (
	_ CellAPI = (*Cell)(nil)
	_ CellAPI = (*SyncCell)(nil)
)
