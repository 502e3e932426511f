// Package lazy provides a memoized deferred computation Lazy[T].
//
// New stores a thunk uninvoked; Eval runs it once and caches the value for
// every later call. First evaluation is guarded, so sharing a Lazy across
// goroutines still runs the thunk exactly once.
package lazy
