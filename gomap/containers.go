package gomap

import "github.com/cborg/go-cborg/ir"

// Pair is the Go target for a singleton-map value.
type Pair[K, V any] struct {
	Key K
	Val V
}

// SliceOf builds the sequence capability over elem. The source may be an
// array, or a map for compatibility: each entry is wrapped as a
// one-entry map and converted as the element type, which lets a sequence
// of pairs hydrate directly from a map. Elements that fail to convert
// are dropped; the result keeps the convertible subsequence in order.
func SliceOf[E any](elem Type[E]) Type[[]E] {
	return New(
		func(v *ir.Value) ([]E, bool) { return sliceFrom(v, elem, false) },
		func(v *ir.Value) ([]E, bool) { return sliceFrom(v, elem, true) },
		func(xs []E) *ir.Value {
			vals := make([]*ir.Value, len(xs))
			for i, x := range xs {
				vals[i] = elem.value(x)
			}
			return ir.FromSlice(vals)
		},
	)
}

func sliceFrom[E any](v *ir.Value, elem Type[E], move bool) ([]E, bool) {
	get := elem.conv
	if move {
		get = elem.take
	}
	switch v.Type {
	case ir.ArrayType:
		res := make([]E, 0, len(v.Values))
		for _, item := range v.Values {
			if x, ok := get(item); ok {
				res = append(res, x)
			}
		}
		if move {
			v.Values = nil
		}
		return res, true
	case ir.MapType:
		res := make([]E, 0, len(v.Pairs))
		for i := range v.Pairs {
			single := ir.FromPairs(v.Pairs[i : i+1 : i+1])
			if x, ok := get(single); ok {
				res = append(res, x)
			}
		}
		if move {
			v.Pairs = nil
		}
		return res, true
	}
	return nil, false
}

// MapOf builds the associative capability over key and val. Entries
// convert independently; an entry whose key or value fails is dropped.
// Duplicate keys collapse, later entries winning. The reverse direction
// iterates a Go map, so the produced entry order is unspecified.
func MapOf[K comparable, V any](key Type[K], val Type[V]) Type[map[K]V] {
	return New(
		func(v *ir.Value) (map[K]V, bool) { return mapFrom(v, key, val, false) },
		func(v *ir.Value) (map[K]V, bool) { return mapFrom(v, key, val, true) },
		func(m map[K]V) *ir.Value {
			kvs := make([]ir.KeyVal, 0, len(m))
			for k, x := range m {
				kvs = append(kvs, ir.KeyVal{Key: key.value(k), Val: val.value(x)})
			}
			return ir.FromPairs(kvs)
		},
	)
}

func mapFrom[K comparable, V any](v *ir.Value, key Type[K], val Type[V], move bool) (map[K]V, bool) {
	getKey, getVal := key.conv, val.conv
	if move {
		getKey, getVal = key.take, val.take
	}
	if v.Type != ir.MapType {
		return nil, false
	}
	m := make(map[K]V, len(v.Pairs))
	for i := range v.Pairs {
		k, ok := getKey(v.Pairs[i].Key)
		if !ok {
			continue
		}
		x, ok := getVal(v.Pairs[i].Val)
		if !ok {
			continue
		}
		m[k] = x
	}
	if move {
		v.Pairs = nil
	}
	return m, true
}

// PairOf builds the 2-element pair capability: the source must be a map
// with exactly one entry, and both sides must convert.
func PairOf[K, V any](key Type[K], val Type[V]) Type[Pair[K, V]] {
	return New(
		func(v *ir.Value) (Pair[K, V], bool) { return pairFrom(v, key, val, false) },
		func(v *ir.Value) (Pair[K, V], bool) { return pairFrom(v, key, val, true) },
		func(p Pair[K, V]) *ir.Value {
			return ir.FromPairs([]ir.KeyVal{{Key: key.value(p.Key), Val: val.value(p.Val)}})
		},
	)
}

func pairFrom[K, V any](v *ir.Value, key Type[K], val Type[V], move bool) (Pair[K, V], bool) {
	getKey, getVal := key.conv, val.conv
	if move {
		getKey, getVal = key.take, val.take
	}
	var none Pair[K, V]
	if v.Type != ir.MapType || len(v.Pairs) != 1 {
		return none, false
	}
	k, ok := getKey(v.Pairs[0].Key)
	if !ok {
		return none, false
	}
	x, ok := getVal(v.Pairs[0].Val)
	if !ok {
		return none, false
	}
	if move {
		v.Pairs = nil
	}
	return Pair[K, V]{Key: k, Val: x}, true
}

// PairsOf is the ordered associative target: a slice of pairs hydrated
// from a map (or an array of singleton maps), preserving entry order.
func PairsOf[K, V any](key Type[K], val Type[V]) Type[[]Pair[K, V]] {
	return SliceOf(PairOf(key, val))
}

// Bytes is the byte-buffer capability: byte strings convert directly
// (the fast path), and arrays convert element-wise with each element
// range-checked to a byte, non-fitting elements dropped.
var Bytes = New(
	func(v *ir.Value) ([]byte, bool) { return bytesFrom(v, false) },
	func(v *ir.Value) ([]byte, bool) { return bytesFrom(v, true) },
	func(b []byte) *ir.Value {
		out := make([]byte, len(b))
		copy(out, b)
		return ir.FromBytes(out)
	},
)

func bytesFrom(v *ir.Value, move bool) ([]byte, bool) {
	switch v.Type {
	case ir.ByteStringType:
		if move {
			b := v.Bytes
			v.Bytes = nil
			return b, true
		}
		out := make([]byte, len(v.Bytes))
		copy(out, v.Bytes)
		return out, true
	case ir.ArrayType:
		res := make([]byte, 0, len(v.Values))
		for _, item := range v.Values {
			if x, ok := Uint8.conv(item); ok {
				res = append(res, x)
			}
		}
		if move {
			v.Values = nil
		}
		return res, true
	}
	return nil, false
}
