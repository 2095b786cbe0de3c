// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (flatMap), short-circuits on failure
// - Map: transform successful values with a function that cannot fail
// - Try/FailOnError: call error-returning functions and convert the error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers that never change the result
// - Finally: reduce to a concrete value via success/error handlers (fold)
package solo
