// Package result contains the single-value, synchronous combinators that
// operate on rail.Result[T, E]. Failures short-circuit: every combinator
// except the error-branch ones passes an existing failure through untouched,
// so a pipeline of these functions never needs to branch by hand.
//
// Highlights:
// - Map/Apply: transform the success value (Apply takes the function wrapped
//   in a Result; a failing function-holder wins over a failing value)
// - MapErr: transform the error payload
// - Switch: monadic bind, move from Result[T] to Result[U]
// - Recover: bind on the error branch, the recovery hook
// - SwitchIf: transform only when a predicate holds; a false predicate keeps
//   the success unchanged instead of failing it
// - Validate: fail a success whose value does not satisfy a predicate
// - Tee/TeeBoth: side-effect taps that leave the result untouched
// - Finally: reduce to a concrete value via success/error handlers
// - Wrap/WrapOr: normalize possibly-absent raw values at the boundary
// - Fit0..Fit5: normalize Go's (values..., error) returns into Results
package result
