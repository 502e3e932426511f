package maybe

import (
	"github.com/ib-77/fun3/pkg/fun"
)

// Maybe holds either a value or nothing. The zero value is Nothing, so a
// Maybe can be embedded in other structs safely. Absence is a normal terminal
// state, not an error.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:    v,
		hasValue: true,
	}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOk lifts Go's (value, ok) pair, e.g. a map lookup, into a Maybe.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// FromPtr treats a nil pointer as Nothing and dereferences otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) IsNothing() bool {
	return !m.hasValue
}

// Value returns the held value. For Nothing it returns the type's zero
// value; callers that need to distinguish should use Get or HasValue.
func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.hasValue
}

func (m Maybe[T]) OrElse(def T) T {
	if m.hasValue {
		return m.value
	}
	return def
}

// OrElseGet evaluates the fallback lazily, only on Nothing.
func (m Maybe[T]) OrElseGet(f func() T) T {
	if m.hasValue {
		return m.value
	}
	return f()
}

func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.hasValue && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// Map applies f to the held value, propagating absence without invoking f.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.hasValue {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// Bind chains a Maybe-returning function, flattening one level. Absence
// propagates without invoking f.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.hasValue {
		return Nothing[U]()
	}
	return f(m.value)
}

// Match collapses the Maybe into a single value via eager dispatch.
func Match[T, R any](m Maybe[T], onJust func(T) R, onNothing func() R) R {
	if m.hasValue {
		return onJust(m.value)
	}
	return onNothing()
}

// ToResult bridges into the Result world, failing with err on Nothing.
func ToResult[T any](m Maybe[T], err error) fun.Result[T] {
	if m.hasValue {
		return fun.Success(m.value)
	}
	return fun.Fail[T](err)
}
