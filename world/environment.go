package world

// Environment is implemented by application state that can hand out a
// type-erased view of itself. It lets heterogeneous callbacks share one
// world: each callback downcasts the environment to the concrete type it
// knows and skips work when the downcast fails.
//
// Go has no const references, so the two views differ only by intent:
// AsAny is for reading, AsAnyMut for mutation. Implementations commonly
// return the same pointer from both.
type Environment interface {
	// AsAny returns the environment for read access.
	AsAny() any

	// AsAnyMut returns the environment for read-write access.
	AsAnyMut() any
}

type wrapped[T any] struct {
	v *T
}

func (e wrapped[T]) AsAny() any    { return e.v }
func (e wrapped[T]) AsAnyMut() any { return e.v }

// Wrap returns an Environment backed by v, for state types that do not
// implement the interface themselves.
func Wrap[T any](v *T) Environment {
	return wrapped[T]{v: v}
}

// EnvAs downcasts an environment's read view to T. The second result is
// false when env is nil or holds a different type; callers are expected
// to treat that as "not for me" and move on.
func EnvAs[T any](env Environment) (T, bool) {
	var zero T
	if env == nil {
		return zero, false
	}
	v, ok := env.AsAny().(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// EnvAsMut is EnvAs over the read-write view.
func EnvAsMut[T any](env Environment) (T, bool) {
	var zero T
	if env == nil {
		return zero, false
	}
	v, ok := env.AsAnyMut().(T)
	if !ok {
		return zero, false
	}
	return v, true
}
