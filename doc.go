// Package matmemo memoizes matrix inversion behind a single-slot,
// value-keyed cache. A Cell pairs one input matrix with at most one
// cached inverse; replacing the input invalidates the cached result,
// and an Inverter computes the inverse at most once per distinct
// input, reusing the cached value on repeated requests.
//
// The base Cell is synchronous and single-actor. SyncCell wraps the
// same contract for concurrent callers.
package matmemo
