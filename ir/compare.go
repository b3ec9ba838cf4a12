package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Equal reports recursive structural equality of two trees. Values of
// different types are never equal; floats compare by IEEE equality, so a
// NaN payload is not equal to itself.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case UnsignedType:
		return a.Uint64 == b.Uint64
	case NegativeType:
		return a.Int64 == b.Int64
	case ByteStringType:
		return bytes.Equal(a.Bytes, b.Bytes)
	case Utf8StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if !Equal(a.Pairs[i].Key, b.Pairs[i].Key) {
				return false
			}
			if !Equal(a.Pairs[i].Val, b.Pairs[i].Val) {
				return false
			}
		}
		return true
	case FloatType:
		return a.Float64 == b.Float64
	case SimpleType:
		return a.Simple == b.Simple
	}
	return false
}

// Compare returns an integer comparing two trees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values order by type rank first, then by payload; aggregates compare
// lexicographically element by element, shorter first on a shared prefix.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case SimpleType:
		return cmp.Compare(a.Simple, b.Simple)
	case UnsignedType:
		return cmp.Compare(a.Uint64, b.Uint64)
	case NegativeType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case ByteStringType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case Utf8StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Simple < Negative < Unsigned < Float < ByteString < Utf8String < Array < Map
func rank(t Type) int {
	switch t {
	case SimpleType:
		return 0
	case NegativeType:
		return 1
	case UnsignedType:
		return 2
	case FloatType:
		return 3
	case ByteStringType:
		return 4
	case Utf8StringType:
		return 5
	case ArrayType:
		return 6
	case MapType:
		return 7
	}
	return 100
}

func compareArrays(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Value) int {
	lenA := len(a.Pairs)
	lenB := len(b.Pairs)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Pairs[i].Key, b.Pairs[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.Pairs[i].Val, b.Pairs[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
