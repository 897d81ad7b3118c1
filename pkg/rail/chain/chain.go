package chain

import (
	"github.com/rail-go/rail/pkg/rail"
	"github.com/rail-go/rail/pkg/rail/result"
)

// Chain wraps a rail.Result to enable fluent composition of the result
// combinators. It is sugar only: every method delegates to the result
// package and adds no semantics of its own.
type Chain[T, E any] struct {
	res rail.Result[T, E]
}

// Start creates a new chain from a rail.Result.
func Start[T, E any](r rail.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](v T) Chain[T, E] {
	return Chain[T, E]{res: rail.Ok[T, E](v)}
}

// Result returns the underlying rail.Result.
func (c Chain[T, E]) Result() rail.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a Result of the same type.
func (c Chain[T, E]) Then(f func(T) rail.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.Switch(c.res, f)}
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(f func(T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, f)}
}

// Verify fails the chain when the value does not satisfy valid.
func (c Chain[T, E]) Verify(valid func(T) bool, invalid E) Chain[T, E] {
	return Chain[T, E]{res: result.Validate(c.res, valid, invalid)}
}

// Recover gives the error branch a chance to rejoin the success track.
func (c Chain[T, E]) Recover(f func(E) rail.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.Recover(c.res, f)}
}

// Ensure triggers side effects for the active branch without changing the
// result. Nil callbacks are safe.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	return Chain[T, E]{res: result.TeeBoth(c.res, onOk, onErr)}
}

// Or returns c when it succeeded, else the alternative when it did, else c's
// own failure (the first failure wins).
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And returns the first failure of the two, or the required chain when both
// succeeded.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// RepeatUntil applies f at least once and keeps applying it while the chain
// stays successful, stopping once done reports true for the current value.
func (c Chain[T, E]) RepeatUntil(f func(T) rail.Result[T, E], done func(T) bool) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	for {
		c = c.Then(f)
		if c.res.IsErr() || done(c.res.Value()) {
			return c
		}
	}
}

// While applies f while the chain is successful and keep reports true for
// the current value; the condition is checked before the first application.
func (c Chain[T, E]) While(f func(T) rail.Result[T, E], keep func(T) bool) Chain[T, E] {
	for c.res.IsOk() && keep(c.res.Value()) {
		c = c.Then(f)
	}
	return c
}

// Then chains a function that moves the chain to a new value type.
func Then[T, U, E any](c Chain[T, E], f func(T) rail.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.Switch(c.res, f)}
}

// Map chains a pure transformation to a new value type.
func Map[T, U, E any](c Chain[T, E], f func(T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, f)}
}

// ThenFit chains a plain Go function returning (U, error), fitting its
// return into the chain.
func ThenFit[T, U any](c Chain[T, error], f func(T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: result.Switch(c.res, func(v T) rail.Result[U, error] {
		return result.Fit(f(v))
	})}
}

// Finally collapses the chain to a final value via the branch handlers.
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return result.Finally(c.res, onOk, onErr)
}
