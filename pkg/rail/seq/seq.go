package seq

import (
	"errors"

	"github.com/rail-go/rail/pkg/rail"
)

// Combine collapses a slice of Results into a Result of a slice. It scans
// left to right accumulating success values in order; the first failure is
// returned immediately and later elements are never looked at. An empty (or
// nil) input yields a success holding an empty slice.
func Combine[T, E any](rs []rail.Result[T, E]) rail.Result[[]T, E] {
	vs := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsErr() {
			return rail.ErrFrom[[]T](r, r.Err())
		}
		vs = append(vs, r.Value())
	}
	return rail.Ok[[]T, E](vs)
}

// CombineAll is Combine without the short-circuit: every element is scanned
// and every error payload is joined with errors.Join, in element order.
// rail.GetErrors recovers the individual parts from the joined error.
func CombineAll[T any](rs []rail.Result[T, error]) rail.Result[[]T, error] {
	vs := make([]T, 0, len(rs))
	var errs []error
	for _, r := range rs {
		if r.IsErr() {
			errs = append(errs, r.Err())
			continue
		}
		vs = append(vs, r.Value())
	}
	if len(errs) > 0 {
		return rail.Err[[]T](errors.Join(errs...))
	}
	return rail.Ok[[]T, error](vs)
}

// Cons prepends head's success value onto tail's success list. A failing
// head wins outright; otherwise a failing tail wins; otherwise the result is
// a success over a fresh slice, leaving tail's slice untouched.
func Cons[T, E any](head rail.Result[T, E], tail rail.Result[[]T, E]) rail.Result[[]T, E] {
	if head.IsErr() {
		return rail.ErrFrom[[]T](head, head.Err())
	}
	if tail.IsErr() {
		return tail
	}
	vs := tail.Value()
	out := make([]T, 0, len(vs)+1)
	out = append(out, head.Value())
	out = append(out, vs...)
	return rail.Ok[[]T, E](out)
}

// Split distributes a success over its elements: a success list of length N
// becomes a success holding exactly N individually Ok-tagged elements in the
// original order. A failure is NOT distributed: it stays a single failure at
// the outer level, carrying the same payload. Split is therefore not a strict
// inverse of Combine on the error side; the asymmetry is deliberate, since a
// collapsed aggregate error names no element it could be assigned to.
func Split[T, E any](r rail.Result[[]T, E]) rail.Result[[]rail.Result[T, E], E] {
	if r.IsErr() {
		return rail.ErrFrom[[]rail.Result[T, E]](r, r.Err())
	}
	vs := r.Value()
	out := make([]rail.Result[T, E], 0, len(vs))
	for _, v := range vs {
		out = append(out, rail.OkFrom[T, E](r, v))
	}
	return rail.OkFrom[[]rail.Result[T, E], E](r, out)
}

// Traverse maps a plain slice through a Result-returning function and
// combines the outputs. The walk stops at the first failure, which is
// returned as-is; elements after it are never visited.
func Traverse[T, U, E any](xs []T, f func(T) rail.Result[U, E]) rail.Result[[]U, E] {
	us := make([]U, 0, len(xs))
	for _, x := range xs {
		r := f(x)
		if r.IsErr() {
			return rail.ErrFrom[[]U](r, r.Err())
		}
		us = append(us, r.Value())
	}
	return rail.Ok[[]U, E](us)
}

// Partition separates a batch into its success values and its error
// payloads, each in encounter order.
func Partition[T, E any](rs []rail.Result[T, E]) ([]T, []E) {
	vs := make([]T, 0, len(rs))
	es := make([]E, 0)
	for _, r := range rs {
		if r.IsOk() {
			vs = append(vs, r.Value())
		} else {
			es = append(es, r.Err())
		}
	}
	return vs, es
}
