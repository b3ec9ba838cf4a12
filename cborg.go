// Package cborg is a CBOR codec built around a dynamic value tree.
//
// Bytes decode into an ir.Value tree; trees encode back to
// minimal-length definite CBOR; the gomap package bridges trees to
// native Go containers with compile-time capability values instead of
// reflection. This package re-exports the surface operations; the
// subpackages carry the machinery:
//
//	v, err := cborg.Decode(data)
//	out, err := cborg.Marshal(v)
//
//	shape := gomap.MapOf(gomap.Uint64, gomap.String)
//	m, ok, err := cborg.DecodeTo(shape, data)
//
//	out, err := cborg.MarshalGo(shape, m)
package cborg

import (
	"github.com/cborg/go-cborg/decode"
	"github.com/cborg/go-cborg/encode"
	"github.com/cborg/go-cborg/gomap"
	"github.com/cborg/go-cborg/ir"
)

// The codec's two error kinds; see the ir package.
var (
	ErrUnexpectedValue   = ir.ErrUnexpectedValue
	ErrInsufficientBytes = ir.ErrInsufficientBytes
)

// Decode reads one CBOR value from data into a tree. Trailing bytes are
// ignored.
func Decode(data []byte, opts ...decode.DecodeOption) (*ir.Value, error) {
	return decode.Decode(data, opts...)
}

// DecodeTo decodes one value and converts it to the target shape t. The
// conversion consumes the freshly decoded tree. ok is false when the
// top-level value does not match the target shape; err reports decode
// failures only.
func DecodeTo[T any](t gomap.Type[T], data []byte, opts ...decode.DecodeOption) (T, bool, error) {
	v, err := decode.Decode(data, opts...)
	if err != nil {
		var none T
		return none, false, err
	}
	x, ok := t.Take(v)
	return x, ok, nil
}

// Marshal serializes a tree to minimal-length definite CBOR.
func Marshal(v *ir.Value) ([]byte, error) {
	return encode.Marshal(v)
}

// MarshalGo converts x through its capability and serializes the result.
// Output is byte-identical to Marshal of the same logical tree.
func MarshalGo[T any](t gomap.Type[T], x T) ([]byte, error) {
	return encode.Marshal(t.Value(x))
}

// MarshalDyn serializes a dynamically-typed value that carries its own
// tree form.
func MarshalDyn(v gomap.Valuer) ([]byte, error) {
	return encode.Marshal(v.AsValue())
}

// MarshalAny serializes a dynamically-typed Go value by type switch; see
// gomap.FromGo for the supported shapes.
func MarshalAny(x any) ([]byte, error) {
	v, err := gomap.FromGo(x)
	if err != nil {
		return nil, err
	}
	return encode.Marshal(v)
}
