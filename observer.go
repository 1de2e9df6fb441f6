package matmemo

import (
	"context"
	"time"
)

// Observer receives events for memoized compute operations.
// It is called from Inverter after each operation completes; it is not
// part of the correctness contract.
type Observer interface {
	OnComputeOp(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration)

// OnComputeOp implements Observer.
func (f ObserverFunc) OnComputeOp(ctx context.Context, op string, key string, hit bool, err error, dur time.Duration) {
	if f == nil {
		return
	}
	f(ctx, op, key, hit, err, dur)
}
