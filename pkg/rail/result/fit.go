package result

import (
	"github.com/rail-go/rail/pkg/rail"
)

// Wrap normalizes a raw, possibly-absent value into a Result: a nil pointer
// becomes a failure carrying the zero E, anything else becomes a success
// holding the pointed-to value. Values that are already a Result need no
// wrapping; the type system makes them their own normal form.
func Wrap[T, E any](p *T) rail.Result[T, E] {
	var absent E
	return WrapOr(p, absent)
}

// WrapOr is Wrap with an explicit error payload for the absent case.
func WrapOr[T, E any](p *T, absent E) rail.Result[T, E] {
	if p == nil {
		return rail.Err[T](absent)
	}
	return rail.Ok[T, E](*p)
}

// The fit adapters normalize Go's loosely-shaped (values..., error) return
// convention into a canonical Result with the error branch pinned to error.
// A non-nil error always wins; the success payload is Unit for a bare error
// return, the single value for one, and an ordered tuple for two to five.

// Fit0 fits a bare error return.
func Fit0(err error) rail.Result[rail.Unit, error] {
	if err != nil {
		return rail.Err[rail.Unit](err)
	}
	return rail.Ok[rail.Unit, error](rail.Unit{})
}

// Fit fits a single-value return, e.g. result.Fit(strconv.Atoi(s)).
func Fit[T any](v T, err error) rail.Result[T, error] {
	if err != nil {
		return rail.Err[T](err)
	}
	return rail.Ok[T, error](v)
}

// Fit2 fits a two-value return into a Pair payload.
func Fit2[A, B any](a A, b B, err error) rail.Result[rail.Pair[A, B], error] {
	if err != nil {
		return rail.Err[rail.Pair[A, B]](err)
	}
	return rail.Ok[rail.Pair[A, B], error](rail.Pair[A, B]{A: a, B: b})
}

// Fit3 fits a three-value return into a Tuple3 payload.
func Fit3[A, B, C any](a A, b B, c C, err error) rail.Result[rail.Tuple3[A, B, C], error] {
	if err != nil {
		return rail.Err[rail.Tuple3[A, B, C]](err)
	}
	return rail.Ok[rail.Tuple3[A, B, C], error](rail.Tuple3[A, B, C]{A: a, B: b, C: c})
}

// Fit4 fits a four-value return into a Tuple4 payload.
func Fit4[A, B, C, D any](a A, b B, c C, d D, err error) rail.Result[rail.Tuple4[A, B, C, D], error] {
	if err != nil {
		return rail.Err[rail.Tuple4[A, B, C, D]](err)
	}
	return rail.Ok[rail.Tuple4[A, B, C, D], error](rail.Tuple4[A, B, C, D]{A: a, B: b, C: c, D: d})
}

// Fit5 fits a five-value return into a Tuple5 payload.
func Fit5[A, B, C, D, E any](a A, b B, c C, d D, e E, err error) rail.Result[rail.Tuple5[A, B, C, D, E], error] {
	if err != nil {
		return rail.Err[rail.Tuple5[A, B, C, D, E]](err)
	}
	return rail.Ok[rail.Tuple5[A, B, C, D, E], error](rail.Tuple5[A, B, C, D, E]{A: a, B: b, C: c, D: d, E: e})
}
