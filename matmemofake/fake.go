// Package matmemofake provides a deterministic Inverter plus assertion
// helpers for tests of code that consumes matmemo. It wraps the real
// inversion primitive with a counting layer so no instrumentation of
// production code is needed to assert how many inversions ran.
package matmemofake

import (
	"sync"
	"testing"

	"github.com/goforj/matmemo"
	"github.com/goforj/matmemo/matrix"
)

// Fake exposes an Inverter whose primitive counts invocations.
type Fake struct {
	inverter *matmemo.Inverter
	mu       sync.Mutex
	computes int
	failures int
}

// New creates a Fake around the real matrix.Inverse primitive.
func New() *Fake {
	return NewWithInverse(matrix.Inverse)
}

// NewWithInverse wires a custom primitive beneath the counting layer.
func NewWithInverse(fn matmemo.InverseFunc) *Fake {
	f := &Fake{}
	f.inverter = matmemo.NewInverter(matmemo.WithInverse(f.counting(fn)))
	return f
}

// Inverter returns the counting inverter to inject into code under test.
func (f *Fake) Inverter() *matmemo.Inverter { return f.inverter }

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.computes = 0
	f.failures = 0
}

// Computes returns how many times the primitive actually ran.
func (f *Fake) Computes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.computes
}

// Failures returns how many primitive runs returned an error.
func (f *Fake) Failures() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures
}

// AssertComputes verifies the primitive ran exactly want times.
func (f *Fake) AssertComputes(t *testing.T, want int) {
	t.Helper()
	if got := f.Computes(); got != want {
		t.Fatalf("expected %d computations, got %d", want, got)
	}
}

// AssertFailures verifies exactly want primitive runs failed.
func (f *Fake) AssertFailures(t *testing.T, want int) {
	t.Helper()
	if got := f.Failures(); got != want {
		t.Fatalf("expected %d failed computations, got %d", want, got)
	}
}

func (f *Fake) counting(fn matmemo.InverseFunc) matmemo.InverseFunc {
	return func(m *matrix.Dense) (*matrix.Dense, error) {
		out, err := fn(m)
		f.mu.Lock()
		f.computes++
		if err != nil {
			f.failures++
		}
		f.mu.Unlock()
		return out, err
	}
}
