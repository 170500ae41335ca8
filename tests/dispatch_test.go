package tests

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/chain"
	"github.com/ib-77/variant/pkg/variant/match"
)

// TestEventRouting runs a batch of heterogeneous subjects through a single
// case table: bare status strings, tagged event objects, and container
// results all route through the same dispatcher.
func TestEventRouting(t *testing.T) {
	subjects := []any{
		"connected",
		"disconnected",
		map[string]any{"Retry": 3},
		map[string]any{"Fatal": "disk full"},
		variant.Ok[int, string](200),
		variant.Err[int]("timeout"),
	}

	table := match.Cases[string]{
		match.On("connected", func() string { return "up" }),
		match.On("disconnected", func() string { return "down" }),
		match.OnValue("Retry", func(v any) string { return fmt.Sprintf("retry x%d", v.(int)) }),
		match.OnValue("Fatal", func(v any) string { return "fatal: " + v.(string) }),
		match.OnValue("Ok", func(v any) string { return "status " + strconv.Itoa(v.(int)) }),
		match.OnValue("Err", func(v any) string { return "error: " + v.(string) }),
	}

	var out []string
	for _, s := range subjects {
		routed, err := match.Match(s, table)
		assert.NoError(t, err)
		out = append(out, routed)
	}

	assert.Equal(t, []string{
		"up",
		"down",
		"retry x3",
		"fatal: disk full",
		"status 200",
		"error: timeout",
	}, out)
}

// TestParsePipeline chains parsing and validation, then collapses each
// outcome through the dispatcher.
func TestParsePipeline(t *testing.T) {
	inputs := []string{"1", "2", "bad", "", "5"}

	toResult := func(s string) variant.Result[int, error] {
		c := chain.ThenTry(
			chain.FromValue[string, error](s).
				Then(func(v string) variant.Result[string, error] {
					if v == "" {
						return variant.Err[string](fmt.Errorf("empty"))
					}
					return variant.Ok[string, error](v)
				}),
			strconv.Atoi)
		return chain.Map(c, func(n int) int { return n * 2 }).Result()
	}

	finalize := match.Cases[string]{
		match.OnValue("Ok", func(v any) string { return fmt.Sprintf("val:%d", v.(int)) }),
		match.On("Err", func() string { return "invalid" }),
	}

	var results []string
	for _, in := range inputs {
		results = append(results, match.MustMatch(toResult(in), finalize))
	}

	assert.Equal(t, []string{"val:2", "val:4", "invalid", "invalid", "val:10"}, results)

	invalid := 0
	for _, r := range results {
		if r == "invalid" {
			invalid++
		}
	}
	assert.Equal(t, 2, invalid)
}

// TestOptionResultConversions exercises cross-kind conversion through plain
// handler tables in both directions.
func TestOptionResultConversions(t *testing.T) {
	toOption := match.Cases[variant.Option[int]]{
		match.OnValue("Ok", func(v any) variant.Option[int] { return variant.Some(v.(int)) }),
		match.On("Err", func() variant.Option[int] { return variant.None[int]() }),
	}
	toResult := match.Cases[variant.Result[int, string]]{
		match.OnValue("Some", func(v any) variant.Result[int, string] { return variant.Ok[int, string](v.(int)) }),
		match.On("None", func() variant.Result[int, string] { return variant.Err[int]("absent") }),
	}

	o := match.MustMatch(variant.Ok[int, string](5), toOption)
	assert.True(t, o.IsSome())
	assert.Equal(t, 5, o.Unwrap())

	r := match.MustMatch(o, toResult)
	assert.True(t, r.IsOk())
	assert.Equal(t, 5, r.Unwrap())

	back := match.MustMatch(variant.Err[int]("boom"), toOption)
	assert.True(t, back.IsNone())
	assert.Equal(t, "absent", match.MustMatch(back, toResult).UnwrapErr())
}
