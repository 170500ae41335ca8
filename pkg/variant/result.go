package variant

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a fallible operation: either Ok carrying a value
// of type T or Err carrying an error value of type E. E is unconstrained;
// whatever the caller stores in the error slot is returned verbatim, with no
// wrapping or coercion. The variant is fixed at construction.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// errFrom rebuilds an Err under new type parameters, keeping the error value
// and metadata of the source result.
func errFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. Calling it on an Err is a programmer
// error and panics with *LogicError.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&LogicError{msg: "Called unwrap on an Err value"})
	}
	return r.value
}

// UnwrapErr returns the error value. Calling it on an Ok panics with
// *LogicError.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&LogicError{msg: "Called unwrapErr on an Ok value"})
	}
	return r.err
}

// Value is the non-panicking accessor: the success value for Ok, the error
// value for Err. It also feeds the match dispatcher's untyped unwrapping.
func (r Result[T, E]) Value() any {
	if r.ok {
		return r.value
	}
	return r.err
}

// Get returns the success value and whether the result is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns the error value and whether the result is Err.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(fn func(e E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Map transforms the success value, passing Err through untouched.
func (r Result[T, E]) Map(fn func(v T) T) Result[T, E] {
	if r.ok {
		return Ok[T, E](fn(r.value))
	}
	return r
}

// MapErr transforms the error value, passing Ok through untouched.
func (r Result[T, E]) MapErr(fn func(e E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T, E](fn(r.err))
}

// FlatMap chains a result-returning function over Ok and short-circuits on
// Err, returning the receiver unchanged.
func (r Result[T, E]) FlatMap(fn func(v T) Result[T, E]) Result[T, E] {
	if r.ok {
		return fn(r.value)
	}
	return r
}

// OrElse recovers from Err via a fallback producing a new result; Ok passes
// through untouched.
func (r Result[T, E]) OrElse(fn func(e E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Ok converts to Option, discarding the error value.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// CreatedAt is the result's creation time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
