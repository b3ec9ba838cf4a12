package ir

import "fmt"

type Type int

const (
	UnsignedType Type = iota
	NegativeType
	ByteStringType
	Utf8StringType
	ArrayType
	MapType
	FloatType
	SimpleType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UnsignedType:   "Unsigned",
		NegativeType:   "Negative",
		ByteStringType: "ByteString",
		Utf8StringType: "Utf8String",
		ArrayType:      "Array",
		MapType:        "Map",
		FloatType:      "Float",
		SimpleType:     "Simple",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Unsigned":   UnsignedType,
		"Negative":   NegativeType,
		"ByteString": ByteStringType,
		"Utf8String": Utf8StringType,
		"Array":      ArrayType,
		"Map":        MapType,
		"Float":      FloatType,
		"Simple":     SimpleType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		UnsignedType,
		NegativeType,
		ByteStringType,
		Utf8StringType,
		ArrayType,
		MapType,
		FloatType,
		SimpleType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, MapType:
		return false
	default:
		return true
	}
}

// Major returns the CBOR major type (bits 7-5 of the leading byte)
// used on the wire for values of type t. FloatType and SimpleType
// share major type 7.
func (t Type) Major() byte {
	switch t {
	case UnsignedType:
		return 0
	case NegativeType:
		return 1
	case ByteStringType:
		return 2
	case Utf8StringType:
		return 3
	case ArrayType:
		return 4
	case MapType:
		return 5
	default:
		return 7
	}
}
