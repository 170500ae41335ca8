package variant

// Cross-type transforms live here as free functions because Go methods
// cannot introduce new type parameters. Same-type transforms are methods on
// Option and Result.

// MapOption transforms the payload of a Some into a new payload type,
// passing None through untouched.
func MapOption[T, U any](o Option[T], fn func(v T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMapOption chains an option-returning function over Some,
// short-circuiting on None.
func FlatMapOption[T, U any](o Option[T], fn func(v T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// OkOr converts an Option into a Result: Some(v) becomes Ok(v), None becomes
// Err carrying the supplied error value.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](err)
}

// MapResult transforms the success value into a new type, passing Err
// through untouched.
func MapResult[T, E, U any](r Result[T, E], fn func(v T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return errFrom[T, U](r)
}

// MapResultErr transforms the error value into a new type, passing Ok
// through untouched.
func MapResultErr[T, E, F any](r Result[T, E], fn func(e E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// OrElseResult recovers from Err via a fallback producing a result with a
// new error type, passing Ok through untouched.
func OrElseResult[T, E, F any](r Result[T, E], fn func(e E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// FlatMapResult chains a result-returning function over Ok, short-circuiting
// on Err.
func FlatMapResult[T, E, U any](r Result[T, E], fn func(v T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return errFrom[T, U](r)
}

// Try runs a (T, error) function and lifts its outcome into a Result.
func Try[T any](fn func() (T, error)) Result[T, error] {
	v, err := fn()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// TryFunc lifts an already-made (T, error) pair into a Result.
func TryFunc[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}
