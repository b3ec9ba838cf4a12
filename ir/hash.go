package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal trees hash equal for the whole process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the tree. Equal trees (per
// Equal) produce equal hashes within one process; the seed is random per
// process start, so hashes are not stable across runs.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(v.Type))

	switch v.Type {
	case UnsignedType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v.Uint64)
		h.Write(b[:])
	case NegativeType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int64))
		h.Write(b[:])
	case ByteStringType:
		h.Write(v.Bytes)
	case Utf8StringType:
		h.WriteString(v.String)
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Float64))
		h.Write(b[:])
	case SimpleType:
		h.WriteByte(byte(v.Simple))
	case ArrayType:
		var b [8]byte
		for _, vv := range v.Values {
			// Writing the child hash keeps the combination order-dependent.
			binary.LittleEndian.PutUint64(b[:], vv.Hash())
			h.Write(b[:])
		}
	case MapType:
		var b [8]byte
		for i := range v.Pairs {
			binary.LittleEndian.PutUint64(b[:], v.Pairs[i].Key.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Pairs[i].Val.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
