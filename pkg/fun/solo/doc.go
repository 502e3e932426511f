// Package solo contains single-value, synchronous primitives that operate
// on fun.Result[T]. These functions form the core building blocks for
// error-aware pipelines.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: monadic bind from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error hook)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Match: reduce to a concrete value via success/error handlers
package solo
