// Package seq converts between the two representations of an aggregate: one
// Result wrapping a whole slice (a single failure collapses everything) and
// a slice of Results (each element tagged on its own).
//
// Highlights:
// - Combine: slice of Results -> Result of slice, first failure wins
// - CombineAll: same direction, no short-circuit, errors joined in order
// - Cons: prepend a Result head onto a Result list, head failure wins
// - Split: distribute a success over its elements; a failure stays whole
// - Traverse: map a plain slice through a Result-returning function
// - Partition: tear a batch into success values and error payloads
package seq
