package encode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cborg/go-cborg/ir"
)

// Marshal serializes v to minimal-length definite CBOR.
func Marshal(v *ir.Value) ([]byte, error) {
	return appendValue(nil, v)
}

// Encode serializes v and writes the bytes to w.
func Encode(v *ir.Value, w io.Writer) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// appendUint appends a head with the given major type whose argument is
// x, using the smallest legal width: 5-bit immediate for 0-23, else a
// 1/2/4/8-byte big-endian field selected by minor 24/25/26/27.
func appendUint(b []byte, major byte, x uint64) []byte {
	head := major << 5
	switch {
	case x <= 23:
		return append(b, head|byte(x))
	case x <= math.MaxUint8:
		return append(b, head|24, byte(x))
	case x <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(b, head|25), uint16(x))
	case x <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(b, head|26), uint32(x))
	default:
		return binary.BigEndian.AppendUint64(append(b, head|27), x)
	}
}

func appendSimple(b []byte, s ir.Simple) ([]byte, error) {
	switch {
	case s.Named():
		return append(b, 7<<5|byte(s)), nil
	case s < 20:
		return append(b, 7<<5|byte(s)), nil
	case s > 31:
		return append(b, 7<<5|24, byte(s)), nil
	default:
		// 24-31 are reserved on the wire and have no legal encoding
		return nil, fmt.Errorf("%w: reserved simple value %d", ir.ErrUnexpectedValue, s)
	}
}

func appendValue(b []byte, v *ir.Value) ([]byte, error) {
	switch v.Type {
	case ir.UnsignedType:
		return appendUint(b, 0, v.Uint64), nil
	case ir.NegativeType:
		// offset encoding: major 1 carries -1 - value
		return appendUint(b, 1, uint64(-1-v.Int64)), nil
	case ir.ByteStringType:
		b = appendUint(b, 2, uint64(len(v.Bytes)))
		return append(b, v.Bytes...), nil
	case ir.Utf8StringType:
		b = appendUint(b, 3, uint64(len(v.String)))
		return append(b, v.String...), nil
	case ir.ArrayType:
		b = appendUint(b, 4, uint64(len(v.Values)))
		var err error
		for _, vv := range v.Values {
			if b, err = appendValue(b, vv); err != nil {
				return nil, err
			}
		}
		return b, nil
	case ir.MapType:
		b = appendUint(b, 5, uint64(len(v.Pairs)))
		var err error
		for i := range v.Pairs {
			if b, err = appendValue(b, v.Pairs[i].Key); err != nil {
				return nil, err
			}
			if b, err = appendValue(b, v.Pairs[i].Val); err != nil {
				return nil, err
			}
		}
		return b, nil
	case ir.FloatType:
		// always the 8-byte form; no width minimization
		return binary.BigEndian.AppendUint64(append(b, 7<<5|27), math.Float64bits(v.Float64)), nil
	case ir.SimpleType:
		return appendSimple(b, v.Simple)
	}
	return nil, fmt.Errorf("%w: value type %s", ir.ErrUnexpectedValue, v.Type)
}
