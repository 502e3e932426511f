package pipe

// Pipeline carries a value through a chain of pure transformations. It has
// no failure semantics of its own; carry a fun.Result if failures need to
// propagate.
type Pipeline[T any] struct {
	value T
}

func Of[T any](v T) Pipeline[T] {
	return Pipeline[T]{value: v}
}

// Then applies a same-type transformation and wraps the result.
func (p Pipeline[T]) Then(f func(T) T) Pipeline[T] {
	return Pipeline[T]{value: f(p.value)}
}

// Tap runs a side effect on the carried value without changing it.
func (p Pipeline[T]) Tap(f func(T)) Pipeline[T] {
	f(p.value)
	return p
}

func (p Pipeline[T]) Unwrap() T {
	return p.value
}

// Next applies a type-changing transformation. A free function because Go
// methods cannot introduce new type parameters.
func Next[T, U any](p Pipeline[T], f func(T) U) Pipeline[U] {
	return Pipeline[U]{value: f(p.value)}
}
