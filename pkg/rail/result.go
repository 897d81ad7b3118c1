package rail

import (
	"time"

	"github.com/google/uuid"
)

// Result is a closed two-variant union: a success carrying a value of T, or
// a failure carrying an error payload of E. Exactly one variant is active.
// The error payload is opaque: it is never inspected, so E does not have to
// implement error and a zero (even nil) payload is a legal failure.
//
// Every constructed Result is stamped with an identity and a UTC creation
// time. Combinators that derive a new Result from a single input preserve
// both, so a value can be traced through a whole pipeline.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

// Ok returns a success Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		isOk:      true,
	}
}

// Err returns a failure Result holding the error payload e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       e,
		isOk:      false,
	}
}

// OkFrom returns a success Result holding v that keeps the identity and
// creation time of from. Combinators use it (and custom combinators should
// use it) so that transforming a value does not break its provenance.
func OkFrom[U, F, T, E any](from Result[T, E], v U) Result[U, F] {
	return Result[U, F]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     v,
		isOk:      true,
	}
}

// ErrFrom returns a failure Result holding e that keeps the identity and
// creation time of from. It is the error-branch counterpart of OkFrom.
func ErrFrom[U, F, T, E any](from Result[T, E], e F) Result[U, F] {
	return Result[U, F]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       e,
		isOk:      false,
	}
}

// Value returns the success payload, or the zero T on a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error payload, or the zero E on a success.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Payload returns whichever payload is active, success or error, as a plain
// value. It does not discriminate which one it got and never fails.
func (r Result[T, E]) Payload() any {
	if r.isOk {
		return r.value
	}
	return r.err
}

// MustValue returns the success payload. It panics with the error payload as
// the fault reason when called on a failure; use it only after the caller has
// proven the Result is a success. This is the one operation of the algebra
// that can raise a fault.
func (r Result[T, E]) MustValue() T {
	if !r.isOk {
		panic(r.err)
	}
	return r.value
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// IsZero reports whether r is the zero value, which no constructor produces.
// A zero Result behaves as a failure with a zero error payload everywhere.
func (r Result[T, E]) IsZero() bool {
	return !r.isOk && r.id == uuid.Nil && r.createdAt.IsZero()
}
