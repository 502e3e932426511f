package fn

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always yields v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Compose binds two unary functions into one: Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// ComposeAll composes same-type functions in right-to-left order, matching
// Compose: the last function runs first.
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		result := v
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}
