// Package fn provides function-level combinators: composition, typed
// currying up to five arguments, and an arity-N argument accumulator for
// functions that cannot be typed statically.
//
// Common usage:
// - Compose/ComposeAll: build h(x) = f(g(x))
// - Curry2..Curry5, Uncurry2/Uncurry3, Partial2/Partial3: typed currying
// - CurryN + Curried.Apply: dynamic arity with reusable partial applications
package fn
