package chain

import (
	"context"

	"github.com/ib-77/outbound/pkg/rop"
	"github.com/ib-77/outbound/pkg/rop/solo"
)

// Chain carries a Result and the context every later step runs with.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

// FromValue starts on the success rail.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then is andThen: next runs only while the chain is still successful.
func Then[T, U any](c *Chain[T], next func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, next))
}

// ThenTry is Then for functions written the plain (value, error) way.
func ThenTry[T, U any](c *Chain[T], next func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, next))
}

func Map[T, U any](c *Chain[T], f func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, f))
}

// Ensure calls observe with a successful value and leaves the chain as it was.
func (c *Chain[T]) Ensure(observe func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.DoubleTee(c.ctx, c.result, observe, nil))
}

// Finally folds the chain into a single value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
