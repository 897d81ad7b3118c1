package option

import (
	"github.com/rail-go/rail/pkg/rail"
)

// Map applies f to the present value; absence passes through.
func Map[T, U any](o rail.Option[T], f func(T) U) rail.Option[U] {
	if v, ok := o.Get(); ok {
		return rail.Some(f(v))
	}
	return rail.None[U]()
}

// MapOr applies f to the present value, or returns fallback when absent.
// Unlike Map it always produces the target type, never an Option.
func MapOr[T, U any](o rail.Option[T], f func(T) U, fallback U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return fallback
}

// MapIf applies f to the present value only when the predicate holds. A
// present value that does not meet the predicate is returned unchanged, and
// absence passes through.
func MapIf[T any](o rail.Option[T], when func(T) bool, f func(T) T) rail.Option[T] {
	v, ok := o.Get()
	if !ok || !when(v) {
		return o
	}
	return rail.Some(f(v))
}

// ToResult bridges Option-space into Result-space: presence becomes a
// success, absence becomes a failure carrying the absent payload. This is
// the one sanctioned crossing between the two algebras and the required
// on-ramp before chaining Result combinators; no reverse conversion exists.
func ToResult[T, E any](o rail.Option[T], absent E) rail.Result[T, E] {
	if v, ok := o.Get(); ok {
		return rail.Ok[T, E](v)
	}
	return rail.Err[T](absent)
}
