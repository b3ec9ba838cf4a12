package cborg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cborg/go-cborg/gomap"
	"github.com/cborg/go-cborg/ir"
)

const longString = "This line is greater than 256 characters to test if lengths are encoded correctly after the major. This line is greater than 256 characters to test if lengths are encoded correctly after the major. This line is greater than 256 characters to test if lengths are encoded correctly after the major."

// {555: {"float": 2.5, "bytestring": h'0102030405', "utf8string": ...,
// "long string": ..., "unsigned": 8, "negative": -4}, 777: [11, -22,
// 33.3, "fourty-four"]}, all definite-length with minimal heads.
const testDataDefinite = "a219022ba665666c6f6174fb40040000000000006a62797465737472696e6745" +
	"01020304056a75746638737472696e67781ee4bda0e5a5bdefbc8ce4b896e795" +
	"8c202d2068656c6c6f2c20776f726c646b6c6f6e6720737472696e6779012854" +
	"686973206c696e652069732067726561746572207468616e2032353620636861" +
	"7261637465727320746f2074657374206966206c656e67746873206172652065" +
	"6e636f64656420636f72726563746c7920616674657220746865206d616a6f72" +
	"2e2054686973206c696e652069732067726561746572207468616e2032353620" +
	"6368617261637465727320746f2074657374206966206c656e67746873206172" +
	"6520656e636f64656420636f72726563746c7920616674657220746865206d61" +
	"6a6f722e2054686973206c696e652069732067726561746572207468616e2032" +
	"3536206368617261637465727320746f2074657374206966206c656e67746873" +
	"2061726520656e636f64656420636f72726563746c7920616674657220746865" +
	"206d616a6f722e68756e7369676e656408686e6567617469766523190309840b" +
	"35fb4040a666666666666b666f757274792d666f7572"

// the same document minus the long string, using indefinite-length maps,
// arrays, and a chunked text string
const testDataIndefinite = "bf19022bbf65666c6f6174fb40040000000000006a62797465737472696e6745" +
	"01020304056a75746638737472696e677f6fe4bda0e5a5bdefbc8ce4b896e795" +
	"8c63202d206c68656c6c6f2c20776f726c64ff68756e7369676e656408686e65" +
	"67617469766523ff1903099f0b35fb4040a666666666666b666f757274792d66" +
	"6f7572ffff"

func fixture(t *testing.T, h string) []byte {
	t.Helper()
	b, err := hex.DecodeString(h)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestDecodeFixtures(t *testing.T) {
	for _, tt := range []struct {
		name string
		data string
	}{
		{"definite", testDataDefinite},
		{"indefinite", testDataIndefinite},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(fixture(t, tt.data))
			if err != nil {
				t.Fatal(err)
			}
			m, ok := ir.NewValueMap(v)
			if !ok {
				t.Fatal("top level is not a map")
			}
			if m.Len() != 2 {
				t.Fatalf("top-level entries = %d, want 2", m.Len())
			}

			inner, ok := m.Get(ir.FromUint(555))
			if !ok {
				t.Fatal("no 555 entry")
			}
			im, ok := ir.NewValueMap(inner)
			if !ok {
				t.Fatal("555 entry is not a map")
			}
			if f, _ := im.Get(ir.FromString("float")); f == nil || f.Float64 != 2.5 {
				t.Errorf("float = %+v", f)
			}
			if b, _ := im.Get(ir.FromString("bytestring")); b == nil || !bytes.Equal(b.Bytes, []byte{1, 2, 3, 4, 5}) {
				t.Errorf("bytestring = %+v", b)
			}
			if s, _ := im.Get(ir.FromString("utf8string")); s == nil || s.String != "你好，世界 - hello, world" {
				t.Errorf("utf8string = %+v", s)
			}
			if u, _ := im.Get(ir.FromString("unsigned")); u == nil || u.Uint64 != 8 {
				t.Errorf("unsigned = %+v", u)
			}
			if n, _ := im.Get(ir.FromString("negative")); n == nil || n.Int64 != -4 {
				t.Errorf("negative = %+v", n)
			}
			if tt.name == "definite" {
				if l, _ := im.Get(ir.FromString("long string")); l == nil || l.String != longString {
					t.Errorf("long string missing or wrong")
				}
			}

			arr, ok := m.Get(ir.FromUint(777))
			if !ok || arr.Type != ir.ArrayType {
				t.Fatalf("777 entry = %+v", arr)
			}
			want := ir.FromSlice([]*ir.Value{
				ir.FromUint(11), ir.FromInt(-22), ir.FromFloat(33.3), ir.FromString("fourty-four"),
			})
			if !ir.Equal(arr, want) {
				t.Errorf("777 = %+v, want %+v", arr, want)
			}
		})
	}
}

func TestFixtureFormsAgree(t *testing.T) {
	d, err := Decode(fixture(t, testDataDefinite))
	if err != nil {
		t.Fatal(err)
	}
	i, err := Decode(fixture(t, testDataIndefinite))
	if err != nil {
		t.Fatal(err)
	}
	// drop the entry present only in the definite form
	dm := d.Pairs[0].Val
	kept := dm.Pairs[:0]
	for _, kv := range dm.Pairs {
		if kv.Key.String == "long string" {
			continue
		}
		kept = append(kept, kv)
	}
	dm.Pairs = kept
	if !ir.Equal(d, i) {
		t.Errorf("definite and indefinite forms decode differently")
	}
}

func TestMarshalFixtureByteIdentical(t *testing.T) {
	data := fixture(t, testDataDefinite)
	v, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		for i := range out {
			if i < len(data) && out[i] != data[i] {
				t.Fatalf("re-encode differs at offset %d: %02x vs %02x", i, data[i], out[i])
			}
		}
		t.Fatalf("re-encode length %d, want %d", len(out), len(data))
	}
}

func TestDecodeTo(t *testing.T) {
	shape := gomap.MapOf(gomap.Uint64, gomap.MapOf(gomap.String, gomap.String))
	dict, ok, err := DecodeTo(shape, fixture(t, testDataDefinite))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("top-level shape mismatch")
	}
	// the 777 entry drops (its value is an array); inside 555 only the
	// string-valued entries convert
	if len(dict) != 1 {
		t.Fatalf("len = %d, want 1", len(dict))
	}
	inner := dict[555]
	if len(inner) != 2 {
		t.Fatalf("inner len = %d, want 2", len(inner))
	}
	if inner["utf8string"] != "你好，世界 - hello, world" {
		t.Errorf("utf8string = %q", inner["utf8string"])
	}
	if len(inner["long string"]) <= 256 {
		t.Errorf("long string too short")
	}

	ints, ok, err := DecodeTo(gomap.MapOf(gomap.Int64, gomap.SliceOf(gomap.Int64)), fixture(t, testDataDefinite))
	if err != nil || !ok {
		t.Fatal(err, ok)
	}
	if diff := cmp.Diff([]int64{11, -22}, ints[777]); diff != "" {
		t.Errorf("777 as ints (-want +got):\n%s", diff)
	}

	floats, ok, err := DecodeTo(gomap.MapOf(gomap.Int64, gomap.SliceOf(gomap.Float64)), fixture(t, testDataDefinite))
	if err != nil || !ok {
		t.Fatal(err, ok)
	}
	if diff := cmp.Diff([]float64{11, -22, 33.3}, floats[777]); diff != "" {
		t.Errorf("777 as floats (-want +got):\n%s", diff)
	}

	if _, ok, err := DecodeTo(gomap.SliceOf(gomap.Uint64), fixture(t, testDataDefinite)[:0]); err == nil || ok {
		t.Error("DecodeTo of empty input did not error")
	}
}

func TestMarshalPathsAgree(t *testing.T) {
	shape := gomap.MapOf(gomap.Uint64, gomap.MapOf(gomap.String, gomap.String))
	m := map[uint64]map[string]string{
		555: {"utf8string": "你好，世界 - hello, world", "second": "two"},
		777: {"third": "three"},
	}

	viaShape, err := MarshalGo(shape, m)
	if err != nil {
		t.Fatal(err)
	}
	decoded, ok, err := DecodeTo(shape, viaShape)
	if err != nil || !ok {
		t.Fatal(err, ok)
	}
	if diff := cmp.Diff(m, decoded); diff != "" {
		t.Errorf("MarshalGo round trip (-want +got):\n%s", diff)
	}

	// the dynamic path accepts the same data shaped as any
	dyn := map[any]any{
		uint64(555): map[string]any{"utf8string": "你好，世界 - hello, world", "second": "two"},
		uint64(777): map[string]any{"third": "three"},
	}
	viaAny, err := MarshalAny(dyn)
	if err != nil {
		t.Fatal(err)
	}
	decoded2, ok, err := DecodeTo(shape, viaAny)
	if err != nil || !ok {
		t.Fatal(err, ok)
	}
	if diff := cmp.Diff(m, decoded2); diff != "" {
		t.Errorf("MarshalAny round trip (-want +got):\n%s", diff)
	}
}

func TestMarshalPathsByteIdentical(t *testing.T) {
	// deterministic shapes only: PairsOf and Raw keep entry order, so
	// every marshal path has exactly one legal output
	shape := gomap.PairsOf(gomap.Uint64, gomap.String)
	pairs := []gomap.Pair[uint64, string]{
		{Key: 555, Val: "five"},
		{Key: 777, Val: "seven"},
	}
	tree := ir.FromPairs([]ir.KeyVal{
		{Key: ir.FromUint(555), Val: ir.FromString("five")},
		{Key: ir.FromUint(777), Val: ir.FromString("seven")},
	})

	direct, err := Marshal(tree)
	if err != nil {
		t.Fatal(err)
	}
	shaped, err := MarshalGo(shape, pairs)
	if err != nil {
		t.Fatal(err)
	}
	// the shaped path encodes the []Pair as an array of singleton maps
	wantShaped := ir.FromSlice([]*ir.Value{
		ir.FromPairs([]ir.KeyVal{{Key: ir.FromUint(555), Val: ir.FromString("five")}}),
		ir.FromPairs([]ir.KeyVal{{Key: ir.FromUint(777), Val: ir.FromString("seven")}}),
	})
	wantShapedBytes, err := Marshal(wantShaped)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(shaped, wantShapedBytes) {
		t.Errorf("MarshalGo = %x, want %x", shaped, wantShapedBytes)
	}

	dyn, err := MarshalDyn(treeValuer{tree})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(direct, dyn) {
		t.Errorf("Marshal %x and MarshalDyn %x differ", direct, dyn)
	}

	viaRaw, err := MarshalGo(gomap.Raw, tree)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(direct, viaRaw) {
		t.Errorf("Marshal %x and MarshalGo(Raw) %x differ", direct, viaRaw)
	}
}

type treeValuer struct {
	v *ir.Value
}

func (t treeValuer) AsValue() *ir.Value { return t.v }

type valued struct {
	n uint64
}

func (v valued) AsValue() *ir.Value { return ir.FromUint(v.n) }

func TestMarshalDyn(t *testing.T) {
	out, err := MarshalDyn(valued{n: 24})
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(out) != "1818" {
		t.Errorf("MarshalDyn = %x", out)
	}
}

func TestErrorsExposed(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrInsufficientBytes) {
		t.Errorf("Decode(nil) error = %v, want %v", err, ErrInsufficientBytes)
	}
	if _, err := Decode([]byte{0xFF}); !errors.Is(err, ErrUnexpectedValue) {
		t.Errorf("Decode(break) error = %v, want %v", err, ErrUnexpectedValue)
	}
}
