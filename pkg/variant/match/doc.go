// Package match provides a structural pattern-matching dispatcher over
// primitives, tagged unions, mixed primitive-or-object unions, and the
// variant container types.
//
// A call routes a subject through an ordered case table to exactly one
// handler (or a declared default) and propagates that handler's return
// value:
//
//	area, err := match.Match[float64](shape, match.Cases[float64]{
//		match.OnValue("circle", func(s any) float64 {
//			c := s.(Shape)
//			return math.Pi * c.Radius * c.Radius
//		}),
//		match.OnValue("rectangle", func(s any) float64 {
//			r := s.(Shape)
//			return r.W * r.H
//		}),
//	}, "Kind")
//
// Key operations:
// - Match/MustMatch: classify a subject and run one handler
// - On/OnValue: bind a case key to a bare or payload-carrying handler
// - Default/DefaultValue: declare the fallback case
//
// Handlers may return any type, including another container, so converting
// a Result to an Option (and back) is just a two-case table; the dispatcher
// itself is a pure router.
package match
