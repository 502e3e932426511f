// Package maybe provides an optional value wrapper Maybe[T].
//
// Common usage:
// - Just/Nothing/FromOk/FromPtr: construct
// - Map/Bind: transform while propagating absence
// - OrElse/OrElseGet/Match: extract
// - ToResult: convert absence into a Result failure
//
// A Maybe is immutable once constructed; every operation produces a new
// value.
package maybe
