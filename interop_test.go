package cborg

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/cborg/go-cborg/ir"
)

// Cross-checks against a second CBOR implementation. Cases stick to
// integers, strings, arrays, and single-entry maps: multi-entry Go maps
// encode in nondeterministic order and floats may differ in width.
func TestInteropEncodings(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *ir.Value
	}{
		{"uint", uint64(24), ir.FromUint(24)},
		{"large uint", uint64(1000000), ir.FromUint(1000000)},
		{"negative", int64(-1000), ir.FromInt(-1000)},
		{"string", "streaming", ir.FromString("streaming")},
		{"bytes", []byte{1, 2, 3, 4, 5}, ir.FromBytes([]byte{1, 2, 3, 4, 5})},
		{"bool", true, ir.FromBool(true)},
		{"array", []any{uint64(1), "two", int64(-3)},
			ir.FromSlice([]*ir.Value{ir.FromUint(1), ir.FromString("two"), ir.FromInt(-3)})},
		{"single-entry map", map[string]any{"k": uint64(7)},
			ir.FromPairs([]ir.KeyVal{{Key: ir.FromString("k"), Val: ir.FromUint(7)}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theirs, err := cbor.Marshal(tt.in)
			if err != nil {
				t.Fatalf("cbor.Marshal: %v", err)
			}
			ours, err := MarshalAny(tt.in)
			if err != nil {
				t.Fatalf("MarshalAny: %v", err)
			}
			if !bytes.Equal(theirs, ours) {
				t.Errorf("encodings differ: theirs %x, ours %x", theirs, ours)
			}

			// their bytes decode to the expected tree
			v, err := Decode(theirs)
			if err != nil {
				t.Fatalf("Decode of their bytes: %v", err)
			}
			if !ir.Equal(v, tt.want) {
				t.Errorf("Decode(theirs) = %+v, want %+v", v, tt.want)
			}

			// our bytes are acceptable to their decoder
			var back any
			if err := cbor.Unmarshal(ours, &back); err != nil {
				t.Errorf("cbor.Unmarshal of our bytes: %v", err)
			}
		})
	}
}

func TestInteropIndefinite(t *testing.T) {
	// our decoder accepts indefinite forms their encoder never emits;
	// re-encoding converts to definite form their decoder accepts
	v, err := Decode(fixture(t, testDataIndefinite))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var back any
	if err := cbor.Unmarshal(out, &back); err != nil {
		t.Errorf("cbor.Unmarshal of re-encoded indefinite fixture: %v", err)
	}
}
