// Package fun holds the core Result[T] value shared by every combinator
// package in this module. A Result is either a success carrying a value or a
// failure carrying an error, never both; each instance also carries a uuid
// and a UTC creation time so individual results can be traced through
// pipelines.
//
// Construct results with Success and Fail only. FailFrom moves a failure
// across a type boundary without losing its identity.
//
// Combinators over Result live in the subpackages:
// - solo: synchronous Map/Switch/Try/Tee/Match primitives
// - chain: fluent composition of Result-returning steps
// - validate: ordered transform-and-check validation pipelines
// - async: continuation-style asynchronous results
package fun
