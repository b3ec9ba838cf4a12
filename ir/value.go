package ir

type Value struct {
	Type Type

	Uint64  uint64
	Int64   int64
	Bytes   []byte
	String  string
	Values  []*Value
	Pairs   []KeyVal
	Float64 float64
	Simple  Simple
}

// KeyVal is one map entry. It is owned exclusively by the Pairs slice of
// its containing map Value.
type KeyVal struct {
	Key *Value
	Val *Value
}

func FromUint(u uint64) *Value {
	return &Value{Type: UnsignedType, Uint64: u}
}

// FromInt selects UnsignedType or NegativeType by sign: negative values
// are stored as the true mathematical value, never as Unsigned.
func FromInt(i int64) *Value {
	if i < 0 {
		return &Value{Type: NegativeType, Int64: i}
	}
	return &Value{Type: UnsignedType, Uint64: uint64(i)}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float64: f}
}

func FromBool(b bool) *Value {
	s := False
	if b {
		s = True
	}
	return &Value{Type: SimpleType, Simple: s}
}

func FromString(s string) *Value {
	return &Value{Type: Utf8StringType, String: s}
}

func FromBytes(b []byte) *Value {
	return &Value{Type: ByteStringType, Bytes: b}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

func FromPairs(kvs []KeyVal) *Value {
	return &Value{Type: MapType, Pairs: kvs}
}

func FromSimple(s Simple) *Value {
	return &Value{Type: SimpleType, Simple: s}
}

func Null() *Value {
	return &Value{Type: SimpleType, Simple: NullSimple}
}

func Undef() *Value {
	return &Value{Type: SimpleType, Simple: Undefined}
}

// Clone returns a full deep copy. Child Values and byte payloads are
// duplicated, never shared with the receiver's tree.
func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Uint64 = v.Uint64
	dst.Int64 = v.Int64
	dst.String = v.String
	dst.Float64 = v.Float64
	dst.Simple = v.Simple
	if v.Bytes != nil {
		dst.Bytes = make([]byte, len(v.Bytes))
		copy(dst.Bytes, v.Bytes)
	}
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			dst.Values[i] = vv.Clone()
		}
	}
	if v.Pairs != nil {
		dst.Pairs = make([]KeyVal, len(v.Pairs))
		for i := range v.Pairs {
			dst.Pairs[i] = KeyVal{
				Key: v.Pairs[i].Key.Clone(),
				Val: v.Pairs[i].Val.Clone(),
			}
		}
	}
	return dst
}

// AsUint extracts an unsigned integer; ok is false for any other type.
func (v *Value) AsUint() (uint64, bool) {
	if v.Type != UnsignedType {
		return 0, false
	}
	return v.Uint64, true
}

// AsNeg extracts a negative integer.
func (v *Value) AsNeg() (int64, bool) {
	if v.Type != NegativeType {
		return 0, false
	}
	return v.Int64, true
}

// AsFloat extracts a float. Integers are not promoted; use the gomap
// package for lossy numeric conversion.
func (v *Value) AsFloat() (float64, bool) {
	if v.Type != FloatType {
		return 0, false
	}
	return v.Float64, true
}

// AsBytes extracts a byte string. The returned slice is the Value's own
// payload, not a copy.
func (v *Value) AsBytes() ([]byte, bool) {
	if v.Type != ByteStringType {
		return nil, false
	}
	return v.Bytes, true
}

func (v *Value) AsString() (string, bool) {
	if v.Type != Utf8StringType {
		return "", false
	}
	return v.String, true
}

func (v *Value) AsArray() ([]*Value, bool) {
	if v.Type != ArrayType {
		return nil, false
	}
	return v.Values, true
}

func (v *Value) AsMap() ([]KeyVal, bool) {
	if v.Type != MapType {
		return nil, false
	}
	return v.Pairs, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.Type != SimpleType {
		return false, false
	}
	switch v.Simple {
	case True:
		return true, true
	case False:
		return false, true
	}
	return false, false
}

// Get returns the value for the first entry whose key equals key, or nil.
// Later duplicates are shadowed; use AsMap to see every entry.
func Get(v *Value, key *Value) *Value {
	if v.Type != MapType {
		return nil
	}
	for i := range v.Pairs {
		if Equal(v.Pairs[i].Key, key) {
			return v.Pairs[i].Val
		}
	}
	return nil
}

// GetString is Get with a text key.
func GetString(v *Value, key string) *Value {
	return Get(v, FromString(key))
}

// Visit walks the tree in depth-first order, calling f before (isPost
// false) and after (isPost true) each value's children. Returning false
// from the pre call skips the children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
		for i := range v.Pairs {
			if err := v.Pairs[i].Key.Visit(f); err != nil {
				return err
			}
			if err := v.Pairs[i].Val.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
