package fn

// Curry2 converts a two-argument function into a chain of single-argument
// applications. Each partial application is independent and reusable.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

func Curry5[A, B, C, D, E, R any](f func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return func(b B) func(C) func(D) func(E) R {
			return func(c C) func(D) func(E) R {
				return func(d D) func(E) R {
					return func(e E) R {
						return f(a, b, c, d, e)
					}
				}
			}
		}
	}
}

func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// Partial2 fixes the first argument of a two-argument function.
func Partial2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial3 fixes the first argument of a three-argument function.
func Partial3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Curried accumulates arguments for a function of known arity. Every Apply
// returns a new independent accumulator; prior partial applications are
// never mutated and stay reusable.
type Curried struct {
	arity   int
	f       func(args ...any) any
	args    []any
	settled bool
	out     any
}

// CurryN wraps a variadic function of the given arity. Use Curried.Apply to
// supply arguments in one or more steps; once the cumulative count reaches
// the arity the function is invoked exactly once and the result becomes
// available via Value. Arguments beyond the arity are passed through to the
// function, not rejected.
func CurryN(arity int, f func(args ...any) any) Curried {
	return Curried{arity: arity, f: f}
}

func (c Curried) Apply(vals ...any) Curried {
	if c.settled {
		return c
	}

	merged := make([]any, 0, len(c.args)+len(vals))
	merged = append(merged, c.args...)
	merged = append(merged, vals...)

	if len(merged) < c.arity {
		return Curried{arity: c.arity, f: c.f, args: merged}
	}

	return Curried{
		arity:   c.arity,
		f:       c.f,
		args:    merged,
		settled: true,
		out:     c.f(merged...),
	}
}

// Settled reports whether the underlying function has been invoked.
func (c Curried) Settled() bool {
	return c.settled
}

// Value returns the invocation result. Calling Value on an under-applied
// accumulator is a caller bug; it returns nil.
func (c Curried) Value() any {
	return c.out
}

// Remaining returns how many arguments are still needed before invocation.
func (c Curried) Remaining() int {
	if c.settled {
		return 0
	}
	return c.arity - len(c.args)
}
