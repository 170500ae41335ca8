package chain

import (
	"github.com/ib-77/variant/pkg/variant"
)

// Chain wraps a variant.Result to enable fluent chaining
type Chain[T, E any] struct {
	result variant.Result[T, E]
}

// Start creates a new chain from a variant.Result
func Start[T, E any](result variant.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{
		result: variant.Ok[T, E](value),
	}
}

// Result returns the underlying variant.Result
func (c *Chain[T, E]) Result() variant.Result[T, E] {
	return c.result
}

// Then chains a same-type result-returning function, short-circuiting on Err
func (c *Chain[T, E]) Then(onOk func(v T) variant.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: c.result.FlatMap(onOk),
	}
}

// Ensure performs a side effect on Ok without changing the result
func (c *Chain[T, E]) Ensure(onOk func(v T)) *Chain[T, E] {
	if v, ok := c.result.Get(); ok {
		onOk(v)
	}
	return c
}

// Recover chains a fallback producing a new result, passing Ok through
func (c *Chain[T, E]) Recover(onErr func(e E) variant.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: c.result.OrElse(onErr),
	}
}

// Then chains a function that returns variant.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onOk func(v T) variant.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		result: variant.FlatMapResult(c.result, onOk),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(v T) U) *Chain[U, E] {
	return &Chain[U, E]{
		result: variant.MapResult(c.result, onOk),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(v T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		result: variant.FlatMapResult(c.result, func(v T) variant.Result[U, error] {
			return variant.TryFunc(tryOnOk(v))
		}),
	}
}

// Finally collapses the chain into a final value via ok/err handlers
func Finally[T, E, U any](c *Chain[T, E], onOk func(v T) U, onErr func(e E) U) U {
	if v, ok := c.result.Get(); ok {
		return onOk(v)
	}
	return onErr(c.result.UnwrapErr())
}
