// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of fun.Result[T] values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - To/MapTo: move to a new value type (free functions)
// - Or/And: combine alternative or required chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability without introducing channels.
package chain
