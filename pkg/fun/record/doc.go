// Package record holds thin record types built atop the combinator core.
//
// TestResult[T] is a terminal success/failure record with a message and an
// open string detail map; Success/Failure cover the void specialization.
// Builder[T] accumulates named setter closures and produces the target
// record on Build.
package record
