package matmemo

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/goforj/matmemo/matrix"
)

type computeEvent struct {
	op  string
	key string
	hit bool
	err error
}

type observerSpy struct {
	events []computeEvent
}

func (o *observerSpy) OnComputeOp(_ context.Context, op string, key string, hit bool, err error, _ time.Duration) {
	o.events = append(o.events, computeEvent{op: op, key: key, hit: hit, err: err})
}

func TestObserverSeesMissThenHit(t *testing.T) {
	spy := &observerSpy{}
	inv := NewInverter().WithObserver(spy)
	cell := NewCell(mustRows(t, [][]float64{{2, 0}, {0, 2}}))

	if _, err := inv.Compute(cell); err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if _, err := inv.Compute(cell); err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if len(spy.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(spy.events))
	}
	miss, hit := spy.events[0], spy.events[1]
	if miss.op != "compute" || miss.hit || miss.err != nil {
		t.Fatalf("unexpected miss event: %+v", miss)
	}
	if !hit.hit || hit.err != nil {
		t.Fatalf("unexpected hit event: %+v", hit)
	}
	if miss.key == "" || miss.key != hit.key {
		t.Fatalf("expected matching digest keys, got %q and %q", miss.key, hit.key)
	}
}

func TestObserverSeesFailure(t *testing.T) {
	spy := &observerSpy{}
	inv := NewInverter(WithObserver(spy))
	cell := NewCell(mustRows(t, [][]float64{{1, 2}, {2, 4}}))

	if _, err := inv.Compute(cell); err == nil {
		t.Fatalf("expected singular failure")
	}
	if len(spy.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(spy.events))
	}
	if spy.events[0].hit || spy.events[0].err == nil {
		t.Fatalf("unexpected failure event: %+v", spy.events[0])
	}
}

func TestObserverFuncNilIsSafe(t *testing.T) {
	var f ObserverFunc
	f.OnComputeOp(context.Background(), "compute", "", false, nil, 0)
}

func TestNewZapObserverHandlesAllOutcomes(t *testing.T) {
	obs := NewZapObserver(zap.NewNop())
	ctx := context.Background()
	obs.OnComputeOp(ctx, "compute", "abc", true, nil, time.Millisecond)
	obs.OnComputeOp(ctx, "compute", "abc", false, nil, time.Millisecond)
	obs.OnComputeOp(ctx, "compute", "abc", false, matrix.ErrSingular, time.Millisecond)

	// A nil logger falls back to a no-op logger.
	NewZapObserver(nil).OnComputeOp(ctx, "compute", "", false, nil, 0)
}

func TestMatrixDigest(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := mustRows(t, [][]float64{{1, 2}, {3, 5}})

	if MatrixDigest(a) != MatrixDigest(b) {
		t.Fatalf("equal matrices must share a digest")
	}
	if MatrixDigest(a) == MatrixDigest(c) {
		t.Fatalf("distinct matrices should not share a digest")
	}
	if MatrixDigest(nil) != "" {
		t.Fatalf("nil matrix digest should be empty")
	}

	// Shape participates: 1x4 and 2x2 with the same elements differ.
	flat := mustRows(t, [][]float64{{1, 2, 3, 4}})
	if MatrixDigest(a) == MatrixDigest(flat) {
		t.Fatalf("digest must include shape")
	}
}
