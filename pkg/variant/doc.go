// Package variant provides algebraic container types for optional values
// and fallible operations: Option[T] (Some | None) and Result[T, E]
// (Ok | Err). Both are immutable after construction and hold exactly one
// variant.
//
// Highlights:
// - Some/None, Ok/Err: construct containers
// - IsSome/IsNone, IsOk/IsErr: variant predicates
// - Unwrap/UnwrapErr: direct access, panicking with *LogicError on misuse
// - Value/Get: non-panicking accessors
// - Map/MapErr/FlatMap/Filter: variant-preserving transforms
// - MapOption/MapResult/FlatMapResult/OkOr: cross-type free transforms
// - Ok()/OkOr: conversions between the two container kinds
//
// The error slot of Result is fully generic: strings, numbers, structs and
// error values are all stored exactly as given, never wrapped.
//
// For structural pattern matching over containers, tagged unions and
// primitives, see package match.
package variant
