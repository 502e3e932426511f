// Package validate provides an ordered validation Pipeline[T] built on
// fun.Result.
//
// Validators are sequential transform-and-check steps: each receives the
// value produced by the previous one and returns a Result carrying either a
// failure or the value for the next step. Run short-circuits at the first
// failure; RunAll executes every validator and joins the collected errors.
//
// Use Check to lift a plain predicate and Transform to lift a (T, error)
// function into a Validator.
package validate
