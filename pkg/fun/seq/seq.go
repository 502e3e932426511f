package seq

import (
	"github.com/ib-77/fun3/pkg/fun"
)

// Map applies f to every element, returning a new slice of the same length
// and order. The input is never mutated.
func Map[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// FlatMap applies f to every element and concatenates the resulting slices,
// preserving element order.
func FlatMap[T, U any](in []T, f func(T) []U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v)...)
	}
	return out
}

func Filter[T any](in []T, pred func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func Fold[T, A any](in []T, seed A, f func(acc A, v T) A) A {
	acc := seed
	for _, v := range in {
		acc = f(acc, v)
	}
	return acc
}

// Traverse maps every element into a Result and sequences them, failing
// fast on the first failure.
func Traverse[T, U any](in []T, f func(T) fun.Result[U]) fun.Result[[]U] {
	out := make([]U, 0, len(in))
	for _, v := range in {
		r := f(v)
		if r.IsFailure() {
			return fun.FailFrom[U, []U](r)
		}
		out = append(out, r.Result())
	}
	return fun.Success(out)
}
