// Package pipe provides Pipeline[T], a fluent carrier for threading a value
// through a series of transformations.
//
// - Of: start a pipeline
// - Then: same-type step (method)
// - Next: type-changing step (free function)
// - Tap: side effect without changing the value
// - Unwrap: extract the final value
//
// Each step produces a new Pipeline; there is no implicit sharing.
package pipe
