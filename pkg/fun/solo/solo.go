package solo

import (
	"context"
	"errors"

	"github.com/ib-77/fun3/pkg/fun"
)

func Succeed[T any](input T) fun.Result[T] {
	return fun.Success(input)
}

func Fail[T any](err error) fun.Result[T] {
	return fun.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) fun.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input fun.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) fun.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return fun.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// Switch is the monadic bind: it moves from Result[In] to Result[Out],
// invoking onSuccess only for successes and carrying failures across the
// type change untouched.
func Switch[In any, Out any](ctx context.Context,
	input fun.Result[In],
	onSuccess func(ctx context.Context, r In) fun.Result[Out]) fun.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return fun.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input fun.Result[In],
	onSuccess func(ctx context.Context, r In) Out) fun.Result[Out] {

	if input.IsSuccess() {
		return fun.Success(onSuccess(ctx, input.Result()))
	}
	return fun.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input fun.Result[T],
	onSuccess func(ctx context.Context, r fun.Result[T])) fun.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input fun.Result[T],
	condition func(ctx context.Context, r fun.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r fun.Result[T])) fun.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input fun.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) fun.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input fun.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) fun.Result[Out] {

	if input.IsSuccess() {
		return fun.Success(onSuccess(ctx, input.Result()))
	}

	onError(ctx, input.Err())
	return fun.FailFrom[In, Out](input)
}

// Try lifts a conventional (Out, error) function into the Result world.
func Try[In any, Out any](ctx context.Context, input fun.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) fun.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return fun.Fail[Out](err)
		}

		return fun.Success(out)
	}

	return fun.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input fun.Result[T],
	maybeErr func(ctx context.Context, in T) error) fun.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return fun.Fail[T](err)
		}
		return input
	}
	return input
}

// Match collapses a Result into a concrete value via eager dispatch to the
// matching handler.
func Match[In, Out any](ctx context.Context, input fun.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
