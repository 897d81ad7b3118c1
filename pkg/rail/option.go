package rail

// Option is an explicit two-variant union: a present value of T, or absence.
// Absence is a tag, not a sentinel value, so a present zero (or nil) T is
// never confused with a missing one. The zero value of Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from Go's comma-ok convention, as produced by map
// lookups and type assertions.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr builds an Option from a pointer, treating nil as absence.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromNillable builds an Option from any value, treating nil-like values
// (nil pointers, maps, slices, channels, funcs and interfaces) as absence.
// Non-nillable kinds are always present.
func FromNillable[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value if present, else fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
