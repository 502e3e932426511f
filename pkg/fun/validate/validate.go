package validate

import (
	"context"
	"errors"

	"github.com/ib-77/fun3/pkg/fun"
)

// Validator is a transform-and-check step: it receives the current value and
// returns either a failure or the (possibly transformed) value the next
// validator will see.
type Validator[T any] func(ctx context.Context, in T) fun.Result[T]

// Check adapts a pure predicate returning (valid, errMsg) into a Validator
// that passes the value through unchanged.
func Check[T any](check func(ctx context.Context, in T) (valid bool, errMsg string)) Validator[T] {
	return func(ctx context.Context, in T) fun.Result[T] {
		if isValid, errMsg := check(ctx, in); !isValid {
			return fun.Fail[T](errors.New(errMsg))
		}
		return fun.Success(in)
	}
}

// Transform adapts a conventional (T, error) function into a Validator.
func Transform[T any](f func(ctx context.Context, in T) (T, error)) Validator[T] {
	return func(ctx context.Context, in T) fun.Result[T] {
		out, err := f(ctx, in)
		if err != nil {
			return fun.Fail[T](err)
		}
		return fun.Success(out)
	}
}

// Pipeline is an ordered list of validators. The value type is threaded
// through: validator i+1 receives the success value returned by validator i,
// so validators may transform, not just check. Order is significant.
type Pipeline[T any] struct {
	validators []Validator[T]
}

func New[T any](validators ...Validator[T]) Pipeline[T] {
	vs := make([]Validator[T], len(validators))
	copy(vs, validators)
	return Pipeline[T]{validators: vs}
}

// Add returns a new Pipeline with v appended. The receiver is not mutated,
// so partially built pipelines stay reusable.
func (p Pipeline[T]) Add(v Validator[T]) Pipeline[T] {
	vs := make([]Validator[T], 0, len(p.validators)+1)
	vs = append(vs, p.validators...)
	vs = append(vs, v)
	return Pipeline[T]{validators: vs}
}

func (p Pipeline[T]) Len() int {
	return len(p.validators)
}

// Run evaluates validators strictly in list order, short-circuiting on the
// first failure: later validators never execute. On success the returned
// result carries the last transformed value. A context already cancelled
// stops evaluation and returns the current state unchanged.
func (p Pipeline[T]) Run(ctx context.Context, input T) fun.Result[T] {
	current := fun.Success(input)

	for _, v := range p.validators {
		if !fun.IsNil(ctx.Err()) {
			return current
		}

		next := v(ctx, current.Result())
		if next.IsFailure() {
			return next
		}
		current = next
	}
	return current
}

// RunAll evaluates every validator regardless of failures, accumulating the
// errors with errors.Join. The value threads through successful validators
// only; failing validators do not advance it. On any failure the joined
// error is returned.
func (p Pipeline[T]) RunAll(ctx context.Context, input T) fun.Result[T] {
	current := fun.Success(input)

	var errs []error
	for _, v := range p.validators {
		if !fun.IsNil(ctx.Err()) {
			break
		}

		next := v(ctx, current.Result())
		if next.IsFailure() {
			errs = append(errs, next.Err())
			continue
		}
		current = next
	}

	if len(errs) > 0 {
		return fun.Fail[T](errors.Join(errs...))
	}
	return current
}
