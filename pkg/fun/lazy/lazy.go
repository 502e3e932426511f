package lazy

import (
	"sync"
	"sync/atomic"
)

// Lazy is a deferred, memoized single-shot computation. The thunk runs at
// most once, on first Eval, even under concurrent first access.
type Lazy[T any] struct {
	once  sync.Once
	done  atomic.Bool
	thunk func() T
	value T
}

func New[T any](thunk func() T) *Lazy[T] {
	return &Lazy[T]{thunk: thunk}
}

// Of returns an already-evaluated Lazy holding v.
func Of[T any](v T) *Lazy[T] {
	l := &Lazy[T]{value: v}
	l.once.Do(func() {})
	l.done.Store(true)
	return l
}

// Eval returns the computed value, invoking the thunk exactly once over the
// lifetime of the Lazy. Subsequent calls return the cached value.
func (l *Lazy[T]) Eval() T {
	l.once.Do(func() {
		l.value = l.thunk()
		l.thunk = nil
		l.done.Store(true)
	})
	return l.value
}

// Evaluated reports whether the thunk has already run.
func (l *Lazy[T]) Evaluated() bool {
	return l.done.Load()
}

// Map derives a new Lazy whose thunk evaluates l and applies f. The source
// is not forced until the derived value is.
func Map[T, U any](l *Lazy[T], f func(T) U) *Lazy[U] {
	return New(func() U {
		return f(l.Eval())
	})
}
