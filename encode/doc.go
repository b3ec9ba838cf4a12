// Package encode serializes IR value trees to CBOR bytes.
//
// # Usage
//
//	data, err := encode.Marshal(v)
//
//	// or to a writer
//	err := encode.Encode(v, w)
//
// Output is always definite-length and minimal-size: integer and length
// headers use the shortest legal width, so re-encoding a tree decoded
// from indefinite-length input changes the wire bytes while preserving
// logical content. Floats are always emitted as 8-byte doubles. Map
// entries are emitted in stored order; no canonical key sorting is
// performed.
//
// Marshal fails only on values with no legal wire form: simple values
// with the reserved codes 24-31 (outside false/true/null/undefined).
//
// # Related packages
//
//   - github.com/cborg/go-cborg/ir - the value tree
//   - github.com/cborg/go-cborg/decode - bytes to Value
package encode
