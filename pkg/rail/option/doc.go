// Package option contains the combinators that operate on rail.Option[T]
// and the bridge into Result-space. Absence short-circuits the same way a
// failure does in the result package.
//
// Highlights:
// - Map: transform the present value
// - MapOr: transform or fall back, always producing the target type
// - MapIf: transform only when a predicate holds; a false predicate keeps
//   the value unchanged
// - ToResult: the bridge, turning absence into a caller-chosen error payload
package option
