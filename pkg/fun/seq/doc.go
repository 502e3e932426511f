// Package seq provides functor and monad operations over ordered slices:
// Map, FlatMap, Filter, Fold and Traverse. Every function returns a fresh
// slice and leaves its input untouched.
package seq
