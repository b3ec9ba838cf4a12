package gomap

import (
	"math"

	"github.com/cborg/go-cborg/ir"
)

// Type is the conversion capability for one Go target shape T: a
// borrowing forward conversion, a consuming forward conversion, and the
// reverse direction. Capabilities are values so containers compose at
// compile time; see SliceOf, MapOf, PairOf.
type Type[T any] struct {
	conv  func(v *ir.Value) (T, bool)
	take  func(v *ir.Value) (T, bool)
	value func(x T) *ir.Value
}

// New builds a capability from its three parts. conv must not mutate its
// argument; take owns it and may strip payloads; value must produce a
// tree sharing nothing with x.
func New[T any](conv, take func(*ir.Value) (T, bool), value func(T) *ir.Value) Type[T] {
	return Type[T]{conv: conv, take: take, value: value}
}

// Conv converts v by reference, copying only unavoidable leaf data.
func (t Type[T]) Conv(v *ir.Value) (T, bool) { return t.conv(v) }

// Take converts an owned v destructively, moving payloads instead of
// copying where it can. The tree is spent afterwards.
func (t Type[T]) Take(v *ir.Value) (T, bool) { return t.take(v) }

// Value converts in the reverse direction, building a fresh tree.
func (t Type[T]) Value(x T) *ir.Value { return t.value(x) }

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Scalar capabilities. Leaves have nothing to move, so the borrowing and
// consuming paths are one function.
var (
	Uint64 = uintType[uint64](math.MaxUint64)
	Uint32 = uintType[uint32](math.MaxUint32)
	Uint16 = uintType[uint16](math.MaxUint16)
	Uint8  = uintType[uint8](math.MaxUint8)
	Uint   = uintType[uint](math.MaxUint)

	Int64 = intType[int64](math.MinInt64, math.MaxInt64)
	Int32 = intType[int32](math.MinInt32, math.MaxInt32)
	Int16 = intType[int16](math.MinInt16, math.MaxInt16)
	Int8  = intType[int8](math.MinInt8, math.MaxInt8)
	Int   = intType[int](math.MinInt, math.MaxInt)

	Float64 = floatType[float64]()
	Float32 = floatType[float32]()

	String = New(stringFrom, stringFrom, ir.FromString)
	Bool   = New(boolFrom, boolFrom, func(x bool) *ir.Value { return ir.FromBool(x) })
)

func uintType[T unsignedInt](max uint64) Type[T] {
	from := func(v *ir.Value) (T, bool) {
		switch v.Type {
		case ir.UnsignedType:
			if v.Uint64 <= max {
				return T(v.Uint64), true
			}
		case ir.NegativeType:
			// negative values never fit an unsigned target
		}
		return 0, false
	}
	return New(from, from, func(x T) *ir.Value { return ir.FromUint(uint64(x)) })
}

func intType[T signedInt](min, max int64) Type[T] {
	from := func(v *ir.Value) (T, bool) {
		switch v.Type {
		case ir.UnsignedType:
			if v.Uint64 <= uint64(max) {
				return T(v.Uint64), true
			}
		case ir.NegativeType:
			if v.Int64 >= min {
				return T(v.Int64), true
			}
		}
		return 0, false
	}
	return New(from, from, func(x T) *ir.Value { return ir.FromInt(int64(x)) })
}

func floatType[T ~float32 | ~float64]() Type[T] {
	from := func(v *ir.Value) (T, bool) {
		switch v.Type {
		case ir.UnsignedType:
			return T(v.Uint64), true
		case ir.NegativeType:
			return T(v.Int64), true
		case ir.FloatType:
			return T(v.Float64), true
		}
		return 0, false
	}
	return New(from, from, func(x T) *ir.Value { return ir.FromFloat(float64(x)) })
}

func stringFrom(v *ir.Value) (string, bool) {
	return v.AsString()
}

func boolFrom(v *ir.Value) (bool, bool) {
	return v.AsBool()
}

// Raw passes the Value itself through. Conv clones; Take hands over the
// original; Value clones so the produced tree shares nothing.
var Raw = New(
	func(v *ir.Value) (*ir.Value, bool) { return v.Clone(), true },
	func(v *ir.Value) (*ir.Value, bool) { return v, true },
	func(x *ir.Value) *ir.Value { return x.Clone() },
)
