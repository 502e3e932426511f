package async

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Executor is the caller-supplied settlement function. It is expected to
// call exactly one of resolve or reject, exactly once, eventually. It may
// settle synchronously or hand off to background work of its own; this type
// makes no concurrency guarantee about it.
type Executor[T any] func(ctx context.Context, resolve func(T), reject func(error))

// Result is a continuation-style asynchronous outcome. Handlers registered
// via Then and Catch before Execute are fanned out, in registration order,
// when the executor settles. Handlers registered after Execute never fire.
//
// Registration and execution are not safe for concurrent use; callers must
// provide external synchronization if they share an instance.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	executor  Executor[T]
	onSuccess []func(T)
	onFailure []func(error)
	settle    sync.Once
	executed  bool
	settled   bool
}

func New[T any](executor Executor[T]) *Result[T] {
	return &Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		executor:  executor,
	}
}

// Resolved returns a Result whose executor settles immediately with v.
func Resolved[T any](v T) *Result[T] {
	return New(func(_ context.Context, resolve func(T), _ func(error)) {
		resolve(v)
	})
}

// Rejected returns a Result whose executor settles immediately with err.
func Rejected[T any](err error) *Result[T] {
	return New(func(_ context.Context, _ func(T), reject func(error)) {
		reject(err)
	})
}

// Then registers a success handler and returns the same instance, so
// multiple independent subscribers can be attached fluently.
func (r *Result[T]) Then(handler func(T)) *Result[T] {
	r.onSuccess = append(r.onSuccess, handler)
	return r
}

// Catch registers a failure handler and returns the same instance.
func (r *Result[T]) Catch(handler func(error)) *Result[T] {
	r.onFailure = append(r.onFailure, handler)
	return r
}

// Execute snapshots the handler lists and invokes the stored executor with
// dispatcher callbacks. Whichever of resolve/reject the executor calls
// first wins; the matching snapshot handlers run in registration order and
// any further settlement is ignored.
func (r *Result[T]) Execute(ctx context.Context) {
	success := make([]func(T), len(r.onSuccess))
	copy(success, r.onSuccess)
	failure := make([]func(error), len(r.onFailure))
	copy(failure, r.onFailure)

	resolve := func(v T) {
		r.settle.Do(func() {
			r.settled = true
			for _, h := range success {
				h(v)
			}
		})
	}
	reject := func(err error) {
		r.settle.Do(func() {
			r.settled = true
			for _, h := range failure {
				h(err)
			}
		})
	}

	r.executed = true
	r.executor(ctx, resolve, reject)
}

// Executed reports whether Execute has been invoked.
func (r *Result[T]) Executed() bool {
	return r.executed
}

// Settled reports whether the executor has called resolve or reject. An
// abandoned executor leaves the Result executed but never settled.
func (r *Result[T]) Settled() bool {
	return r.settled
}

func (r *Result[T]) Id() uuid.UUID {
	return r.id
}

func (r *Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
