package record

// Builder accumulates named setter closures and applies them to a copy of
// the seed when Build is called. Setters are keyed by field name: a later
// Set with the same key replaces the earlier one. Application order is
// unspecified, so setters for different keys must be commutative.
type Builder[T any] struct {
	seed    T
	setters map[string]func(*T)
}

func NewBuilder[T any](seed T) Builder[T] {
	return Builder[T]{seed: seed, setters: map[string]func(*T){}}
}

// Set returns a new Builder with the named setter registered. The receiver
// is not mutated.
func (b Builder[T]) Set(name string, set func(*T)) Builder[T] {
	setters := make(map[string]func(*T), len(b.setters)+1)
	for k, v := range b.setters {
		setters[k] = v
	}
	setters[name] = set

	return Builder[T]{seed: b.seed, setters: setters}
}

func (b Builder[T]) Len() int {
	return len(b.setters)
}

// Build applies every registered setter to a copy of the seed and returns
// the result. The seed itself is never modified.
func (b Builder[T]) Build() T {
	out := b.seed
	for _, set := range b.setters {
		set(&out)
	}
	return out
}
