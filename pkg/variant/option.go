package variant

// Option is an optional value: Some carrying a payload of type T, or None
// carrying nothing. The zero value is None, so Options embed safely. The
// variant is fixed at construction.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{some: false}
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk lifts Go's common comma-ok pattern (map lookups, type assertions)
// into an Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the payload. Calling it on None is a programmer error and
// panics with *LogicError.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&LogicError{msg: "Called unwrap on a None value"})
	}
	return o.value
}

// Value is the non-panicking accessor: the payload for Some, nil for None.
// It also feeds the match dispatcher's untyped unwrapping.
func (o Option[T]) Value() any {
	if o.some {
		return o.value
	}
	return nil
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Map transforms the payload, passing None through untouched.
func (o Option[T]) Map(fn func(v T) T) Option[T] {
	if o.some {
		return Some(fn(o.value))
	}
	return o
}

// FlatMap chains an option-returning function over Some and short-circuits
// on None.
func (o Option[T]) FlatMap(fn func(v T) Option[T]) Option[T] {
	if o.some {
		return fn(o.value)
	}
	return o
}

// Filter keeps Some only when the predicate holds, converting to None
// otherwise.
func (o Option[T]) Filter(pred func(v T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to the payload, nil for None.
func (o Option[T]) ToPtr() *T {
	if o.some {
		return &o.value
	}
	return nil
}
