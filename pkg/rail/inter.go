package rail

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload value
	Value() T
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types that hold either a value or an
// error payload
type WithErr[T, E any] interface {
	ValueProvider[T]
	// Err returns the error payload if the operation failed
	Err() E
	// IsOk returns true if the operation was successful
	IsOk() bool
}
