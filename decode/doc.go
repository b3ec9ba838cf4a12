// Package decode parses CBOR bytes into IR value trees.
//
// # Usage
//
//	v, err := decode.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	// Successive values from one buffer
//	d := decode.NewDecoder(data)
//	first, err := d.Next()
//	second, err := d.Next()
//
//	// With options
//	v, err := decode.Decode(data, decode.WithMaxDepth(32))
//
// The decoder reads a forward-only cursor over a contiguous byte slice
// and never backtracks. Definite lengths are checked against the bytes
// actually remaining before anything is allocated, and nesting depth is
// bounded, so hostile length prefixes and deep nesting fail cleanly with
// an error instead of exhausting memory or stack.
//
// Decode reads exactly one value and ignores trailing bytes; use
// Decoder.Rest to inspect the unread tail.
//
// All failures wrap ir.ErrUnexpectedValue or ir.ErrInsufficientBytes.
//
// # Related packages
//
//   - github.com/cborg/go-cborg/ir - the value tree
//   - github.com/cborg/go-cborg/encode - Value to bytes
package decode
