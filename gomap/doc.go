// Package gomap converts between IR value trees and native Go values.
//
// There is no schema metadata and no reflection: each Go target shape is
// served by a capability value, a Type[T] carrying the conversion code
// for that one shape, composed at compile time. Scalars are package
// variables (gomap.Uint64, gomap.String, ...); containers are built with
// combinators:
//
//	seq := gomap.SliceOf(gomap.Int64)
//	m := gomap.MapOf(gomap.Uint64, gomap.String)
//	pairs := gomap.PairsOf(gomap.Uint64, gomap.MapOf(gomap.String, gomap.String))
//
//	xs, ok := seq.Conv(v)   // borrowing: v is readable afterwards
//	xs, ok := seq.Take(v)   // consuming: steals payloads, v is spent
//	tree := seq.Value(xs)   // reverse direction
//
// Conv and Take produce identical logical results for identical input;
// they are one structural-match algorithm parameterized by whether leaf
// data is copied or moved.
//
// Conversion is best-effort and element-level lossy: a sequence or map
// element that does not convert to the element capability is silently
// dropped, in order, and only a top-level shape mismatch makes the whole
// conversion fail (ok == false). Integer targets range-check; floating
// targets accept unsigned, negative and float sources; Bool accepts only
// the true/false simple values; String accepts only text.
//
// The reverse direction is symmetric. Note that MapOf builds its tree by
// iterating a Go map, so the produced entry order is unspecified;
// PairsOf preserves its source order.
package gomap
