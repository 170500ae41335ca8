package variant

// The shape interfaces are the capability predicates the match dispatcher
// sniffs container subjects with. Option and Result satisfy theirs; any
// third-party container type can take part in matching by implementing the
// relevant pair plus Valuer.

// OkShape reports whether a value holds a success variant.
type OkShape interface {
	IsOk() bool
}

// ErrShape reports whether a value holds a failure variant.
type ErrShape interface {
	IsErr() bool
}

// SomeShape reports whether a value holds a present payload.
type SomeShape interface {
	IsSome() bool
}

// NoneShape reports whether a value holds no payload.
type NoneShape interface {
	IsNone() bool
}

// Valuer gives untyped access to the held payload (or error value). The
// dispatcher uses it to pass the unwrapped payload to a matched handler.
type Valuer interface {
	Value() any
}

var (
	_ OkShape   = Result[int, error]{}
	_ ErrShape  = Result[int, error]{}
	_ Valuer    = Result[int, error]{}
	_ SomeShape = Option[int]{}
	_ NoneShape = Option[int]{}
	_ Valuer    = Option[int]{}
)
