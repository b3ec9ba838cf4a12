package gomap

import (
	"fmt"
	"sort"

	"github.com/cborg/go-cborg/ir"
)

// Valuer is the dynamically-typed reverse capability: a value that knows
// its own tree form. MarshalDyn in the root package accepts any Valuer.
type Valuer interface {
	AsValue() *ir.Value
}

// ConvError reports a dynamic conversion failure.
type ConvError struct {
	Path    string // element path, e.g. "[2].name"
	Message string
	Err     error
}

func (e *ConvError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("convert error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("convert error: %s", e.Message)
}

func (e *ConvError) Unwrap() error {
	return e.Err
}

// FromGo converts a dynamically-typed Go value to a tree by type switch.
// It covers the shapes produced by the goccy yaml and stdlib json
// decoders (nil, bool, numbers, string, []byte, []any, map[string]any,
// map[any]any) plus Valuer and *ir.Value themselves. Unordered Go maps
// are emitted with keys sorted by their tree order to keep the output
// deterministic.
func FromGo(x any) (*ir.Value, error) {
	switch t := x.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Value:
		return t.Clone(), nil
	case Valuer:
		return t.AsValue(), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int8:
		return ir.FromInt(int64(t)), nil
	case int16:
		return ir.FromInt(int64(t)), nil
	case int32:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint:
		return ir.FromUint(uint64(t)), nil
	case uint8:
		return ir.FromUint(uint64(t)), nil
	case uint16:
		return ir.FromUint(uint64(t)), nil
	case uint32:
		return ir.FromUint(uint64(t)), nil
	case uint64:
		return ir.FromUint(t), nil
	case float32:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case string:
		return ir.FromString(t), nil
	case []byte:
		out := make([]byte, len(t))
		copy(out, t)
		return ir.FromBytes(out), nil
	case []any:
		vals := make([]*ir.Value, len(t))
		for i, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return nil, &ConvError{Path: fmt.Sprintf("[%d]", i), Message: "unsupported element", Err: err}
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		kvs := make([]ir.KeyVal, 0, len(t))
		for k, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return nil, &ConvError{Path: k, Message: "unsupported entry", Err: err}
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(k), Val: v})
		}
		sortPairs(kvs)
		return ir.FromPairs(kvs), nil
	case map[any]any:
		kvs := make([]ir.KeyVal, 0, len(t))
		for k, e := range t {
			kv, err := FromGo(k)
			if err != nil {
				return nil, &ConvError{Message: "unsupported key", Err: err}
			}
			v, err := FromGo(e)
			if err != nil {
				return nil, &ConvError{Message: "unsupported entry", Err: err}
			}
			kvs = append(kvs, ir.KeyVal{Key: kv, Val: v})
		}
		sortPairs(kvs)
		return ir.FromPairs(kvs), nil
	}
	return nil, &ConvError{Message: fmt.Sprintf("unsupported Go type %T", x)}
}

func sortPairs(kvs []ir.KeyVal) {
	sort.SliceStable(kvs, func(i, j int) bool {
		return ir.Compare(kvs[i].Key, kvs[j].Key) < 0
	})
}

// ToGo converts a tree to dynamically-typed Go values: bool, uint64,
// int64, float64, string, []byte, []any and map shapes. Maps with only
// text keys become map[string]any when keys are unique; any other map
// becomes []any of single-entry map[any]any so duplicate and composite
// keys survive the trip.
func ToGo(v *ir.Value) any {
	switch v.Type {
	case ir.UnsignedType:
		return v.Uint64
	case ir.NegativeType:
		return v.Int64
	case ir.ByteStringType:
		out := make([]byte, len(v.Bytes))
		copy(out, v.Bytes)
		return out
	case ir.Utf8StringType:
		return v.String
	case ir.ArrayType:
		out := make([]any, len(v.Values))
		for i, vv := range v.Values {
			out[i] = ToGo(vv)
		}
		return out
	case ir.MapType:
		if m, ok := stringKeyed(v); ok {
			return m
		}
		out := make([]any, len(v.Pairs))
		for i := range v.Pairs {
			out[i] = map[any]any{ToGo(v.Pairs[i].Key): ToGo(v.Pairs[i].Val)}
		}
		return out
	case ir.FloatType:
		return v.Float64
	case ir.SimpleType:
		switch v.Simple {
		case ir.True:
			return true
		case ir.False:
			return false
		default:
			return nil
		}
	}
	return nil
}

func stringKeyed(v *ir.Value) (map[string]any, bool) {
	m := make(map[string]any, len(v.Pairs))
	for i := range v.Pairs {
		k, ok := v.Pairs[i].Key.AsString()
		if !ok {
			return nil, false
		}
		if _, dup := m[k]; dup {
			return nil, false
		}
		m[k] = ToGo(v.Pairs[i].Val)
	}
	return m, true
}
