// Package rail defines the two tagged-union value types the library is built
// around: Result[T, E] (success value or opaque error payload) and Option[T]
// (present value or absence). Both are immutable once constructed; the
// combinator packages always derive new values.
//
// Key pieces:
// - Ok/Err: construct Result; OkFrom/ErrFrom: derive while keeping provenance
// - Some/None/FromOk/FromPtr/FromNillable: construct Option
// - Payload/MustValue: terminal extraction (MustValue is the only operation
//   that can raise a fault)
// - Unit/Pair/Tuple3..Tuple5: payload shapes for the multi-value fit adapters
// - ValueProvider/WithErr: read-side interfaces satisfied by Result
//
// The algebras themselves live in the result, option, seq and chain
// subpackages.
package rail
