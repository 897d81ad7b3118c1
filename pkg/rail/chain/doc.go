// Package chain provides a fluent wrapper around rail.Result for building
// synchronous pipelines out of the result-package combinators without
// handling the branch at every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then/Map/Verify/Recover/Ensure: same-type steps as methods
// - Or/And: pick between two finished chains
// - RepeatUntil/While: iterate a step while the chain stays successful
// - Then/Map/ThenFit (package level): steps that change the value type,
//   which Go methods cannot express
// - Finally: collapse the chain into a final value via handlers
package chain
