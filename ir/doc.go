// Package ir provides the in-memory representation for CBOR data items.
//
// # Overview
//
// Every decoded CBOR data item is represented as a tree of Values. The
// tree is dynamic and self-describing: a Value carries its Type and the
// payload for that type, and composite Values own their children
// exclusively. Trees are acyclic; there are no parent pointers and no
// shared subtrees. Copying is always a deep copy (Clone), never aliasing.
//
// # Value structure
//
// A Value is a tagged union. The Type field selects which payload fields
// are meaningful:
//
//   - UnsignedType: Uint64 (major type 0)
//   - NegativeType: Int64, always negative (major type 1)
//   - ByteStringType: Bytes (major type 2)
//   - Utf8StringType: String, valid UTF-8 (major type 3)
//   - ArrayType: Values (major type 4)
//   - MapType: Pairs (major type 5)
//   - FloatType: Float64 (major type 7, floats)
//   - SimpleType: Simple (major type 7, simple values)
//
// Maps are ordered lists of key/value pairs, not hash tables: pair order
// mirrors decode or construction order, duplicate keys are permitted, and
// any Value (including nested arrays and maps) may serve as a key.
// Structural Equal, Compare and Hash are defined over whole trees so that
// composite keys work; ValueMap gives an associative view keyed by Values.
//
// Tag numbers (major type 6) are not represented: decoding a tagged item
// discards the tag and yields the wrapped content's Value.
//
// # Creating Values
//
// Use the constructor functions:
//
//	n := ir.FromUint(42)
//	s := ir.FromString("hello")
//	a := ir.FromSlice([]*ir.Value{ir.FromInt(-1), ir.FromBool(true)})
//	m := ir.FromPairs([]ir.KeyVal{{Key: ir.FromUint(1), Val: s}})
//
// # Related packages
//
//   - github.com/cborg/go-cborg/decode - bytes to Value
//   - github.com/cborg/go-cborg/encode - Value to bytes
//   - github.com/cborg/go-cborg/gomap - Value to and from Go values
package ir
