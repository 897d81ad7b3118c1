package result

import (
	"github.com/rail-go/rail/pkg/rail"
)

// Map applies f to the success value; a failure passes through untouched.
func Map[T, U, E any](r rail.Result[T, E], f func(T) U) rail.Result[U, E] {
	if r.IsOk() {
		return rail.OkFrom[U, E](r, f(r.Value()))
	}
	return rail.ErrFrom[U](r, r.Err())
}

// Apply is the applicative form of Map: the function itself arrives wrapped
// in a Result. The function-holder is inspected first: if it is a failure its
// error wins, even when r is also a failure; otherwise a failing r wins;
// otherwise the function is applied to the value.
func Apply[T, U, E any](r rail.Result[T, E], f rail.Result[func(T) U, E]) rail.Result[U, E] {
	if f.IsErr() {
		return rail.ErrFrom[U](f, f.Err())
	}
	if r.IsErr() {
		return rail.ErrFrom[U](r, r.Err())
	}
	return rail.OkFrom[U, E](r, f.Value()(r.Value()))
}

// MapErr applies f to the error payload; a success passes through untouched.
func MapErr[T, E, F any](r rail.Result[T, E], f func(E) F) rail.Result[T, F] {
	if r.IsOk() {
		return rail.OkFrom[T, F](r, r.Value())
	}
	return rail.ErrFrom[T](r, f(r.Err()))
}

// Switch applies f to the success value and returns its Result directly, so
// results never nest. A failure passes through untouched.
func Switch[T, U, E any](r rail.Result[T, E], f func(T) rail.Result[U, E]) rail.Result[U, E] {
	if r.IsOk() {
		return f(r.Value())
	}
	return rail.ErrFrom[U](r, r.Err())
}

// Recover is the error-branch counterpart of Switch: f turns an error payload
// into a fresh Result, which may succeed (recovery) or fail with a new
// payload. A success passes through untouched.
func Recover[T, E, F any](r rail.Result[T, E], f func(E) rail.Result[T, F]) rail.Result[T, F] {
	if r.IsErr() {
		return f(r.Err())
	}
	return rail.OkFrom[T, F](r, r.Value())
}

// SwitchIf applies f to the success value only when the predicate holds.
// A success that does not meet the predicate is returned unchanged, never
// demoted to a failure; a failure passes through untouched.
func SwitchIf[T, E any](r rail.Result[T, E], when func(T) bool, f func(T) rail.Result[T, E]) rail.Result[T, E] {
	if r.IsErr() {
		return r
	}
	if !when(r.Value()) {
		return r
	}
	return f(r.Value())
}

// Validate fails a success whose value does not satisfy valid, replacing it
// with the invalid payload. Everything else passes through untouched.
func Validate[T, E any](r rail.Result[T, E], valid func(T) bool, invalid E) rail.Result[T, E] {
	if r.IsOk() && !valid(r.Value()) {
		return rail.ErrFrom[T](r, invalid)
	}
	return r
}

// Tee runs a side effect on the success value and returns r unchanged.
func Tee[T, E any](r rail.Result[T, E], onOk func(T)) rail.Result[T, E] {
	if r.IsOk() && onOk != nil {
		onOk(r.Value())
	}
	return r
}

// TeeBoth runs a side effect on whichever branch is active and returns r
// unchanged. Nil callbacks are skipped.
func TeeBoth[T, E any](r rail.Result[T, E], onOk func(T), onErr func(E)) rail.Result[T, E] {
	if r.IsOk() {
		if onOk != nil {
			onOk(r.Value())
		}
		return r
	}
	if onErr != nil {
		onErr(r.Err())
	}
	return r
}

// Finally collapses r to a plain value via the branch handlers.
func Finally[T, E, U any](r rail.Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.IsOk() {
		return onOk(r.Value())
	}
	return onErr(r.Err())
}
