package anim

// option holds a value that may be unset. Clip and Animation parameters are
// all optional so that animation-level settings can override clip-level ones
// only when they were explicitly given.
type option[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) option[T] {
	return option[T]{value: v, ok: true}
}

func (o option[T]) or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}
