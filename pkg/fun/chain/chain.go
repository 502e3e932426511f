package chain

import (
	"context"

	"github.com/ib-77/fun3/pkg/fun"
	"github.com/ib-77/fun3/pkg/fun/solo"
)

// Chain wraps a fun.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res fun.Result[T]
}

// Start creates a new chain from a fun.Result
func Start[T any](ctx context.Context, r fun.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, fun.Success(v))
}

// Result returns the underlying fun.Result
func (c Chain[T]) Result() fun.Result[T] {
	return c.res
}

// Then composes functions that already return fun.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) fun.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.ctx, c.res.Result())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: fun.Fail[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: fun.Success(u)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: fun.Success(onSuccess(c.ctx, c.res.Result()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

// Or returns c when it is a success, otherwise the first successful
// alternative; if none succeeded, the first failure wins.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}

	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failure among c and the required chains, otherwise
// the last success.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	last := c
	for _, req := range required {
		if req.res.IsFailure() {
			return req
		}
		last = req
	}
	return last
}

// Finally collapses the chain to a final value, delegating to solo.Match
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}

// To moves the chain to a new value type. A free function because Go
// methods cannot introduce new type parameters.
func To[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) fun.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// MapTo transforms the successful value into a new value type.
func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}
