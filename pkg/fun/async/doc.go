// Package async provides a continuation-style asynchronous Result[T].
//
// A Result is created with an executor that receives resolve and reject
// callbacks. Subscribers attach with Then and Catch; Execute runs the
// executor and fans the single settlement out to every handler of the
// matching kind, in registration order.
//
// The package defines no scheduler and spawns no goroutines: whether the
// executor settles synchronously or from background work is entirely up to
// the caller. There is no timeout and no way to abort a running executor.
package async
