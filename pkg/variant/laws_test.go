package variant

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Some(v) holds v", prop.ForAll(
		func(n int) bool {
			o := Some(n)
			return o.IsSome() && !o.IsNone() && o.Unwrap() == n && o.Value() == n
		},
		gen.Int(),
	))

	properties.Property("Map on Some applies fn", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			return Some(n).Map(fn).Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("okOr/ok round trip recovers the payload", prop.ForAll(
		func(n int) bool {
			e := errors.New("absent")
			return OkOr(Some(n), e).Ok().Unwrap() == n
		},
		gen.Int(),
	))

	properties.Property("filter keeps iff predicate holds", prop.ForAll(
		func(n int) bool {
			even := func(x int) bool { return x%2 == 0 }
			filtered := Some(n).Filter(even)
			return filtered.IsSome() == even(n)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestResultLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Ok returns Ok(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := Ok[int, error](n).Map(fn)
			return mapped.IsOk() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on Err returns Err untouched", prop.ForAll(
		func(msg string) bool {
			mapped := Err[int](msg).Map(func(x int) int { return x * 2 })
			return mapped.IsErr() && mapped.UnwrapErr() == msg
		},
		gen.AnyString(),
	))

	properties.Property("flatMap left identity", prop.ForAll(
		func(n int) bool {
			f := func(x int) Result[int, error] { return Ok[int, error](x * 3) }
			left := Ok[int, error](n).FlatMap(f)
			right := f(n)
			return left.IsOk() == right.IsOk() && left.Unwrap() == right.Unwrap()
		},
		gen.Int(),
	))

	properties.Property("error values survive verbatim", prop.ForAll(
		func(msg string) bool {
			return Err[int](msg).UnwrapErr() == msg
		},
		gen.AnyString(),
	))

	properties.Property("unwrapOr falls back only on Err", prop.ForAll(
		func(n int, d int) bool {
			return Ok[int, string](n).UnwrapOr(d) == n &&
				Err[int]("e").UnwrapOr(d) == d
		},
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
