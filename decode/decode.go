package decode

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/x448/float16"

	"github.com/cborg/go-cborg/ir"
)

// the break byte terminating indefinite-length aggregates
const breakByte = 0xFF

// Decode reads exactly one CBOR value from data. Trailing bytes after
// the value are ignored; use a Decoder when the tail matters.
func Decode(data []byte, opts ...DecodeOption) (*ir.Value, error) {
	return NewDecoder(data, opts...).Next()
}

// Decoder is a forward-only cursor over one contiguous buffer. It never
// backtracks; each Next call consumes one value.
type Decoder struct {
	data []byte
	off  int
	opts decodeOpts
}

func NewDecoder(data []byte, opts ...DecodeOption) *Decoder {
	d := &Decoder{
		data: data,
		opts: decodeOpts{maxDepth: DefaultMaxDepth},
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Next decodes the next value in the buffer.
func (d *Decoder) Next() (*ir.Value, error) {
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}
	return d.value(b, 0)
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Rest returns the unconsumed tail of the buffer.
func (d *Decoder) Rest() []byte {
	return d.data[d.off:]
}

// readType splits a leading byte into major type (bits 7-5) and the
// additional-information minor field (bits 4-0).
func readType(b byte) (major, minor byte) {
	return b >> 5, b & 31
}

func (d *Decoder) remaining() uint64 {
	return uint64(len(d.data) - d.off)
}

func (d *Decoder) readByte() (byte, error) {
	if d.off >= len(d.data) {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ir.ErrInsufficientBytes, d.off)
	}
	b := d.data[d.off]
	d.off++
	return b, nil
}

// readUint applies the unsigned rule to a minor field: 0-23 is the
// literal value, 24-27 selects 1/2/4/8 following big-endian bytes, and
// anything else is malformed.
func (d *Decoder) readUint(minor byte) (uint64, error) {
	if minor <= 23 {
		return uint64(minor), nil
	}
	var n int
	switch minor {
	case 24:
		n = 1
	case 25:
		n = 2
	case 26:
		n = 4
	case 27:
		n = 8
	default:
		return 0, fmt.Errorf("%w: minor %d in unsigned position at offset %d",
			ir.ErrUnexpectedValue, minor, d.off)
	}
	if d.remaining() < uint64(n) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d", ir.ErrInsufficientBytes, n, d.off)
	}
	var x uint64
	for i := 0; i < n; i++ {
		x = x<<8 | uint64(d.data[d.off])
		d.off++
	}
	return x, nil
}

// readChunk consumes a definite run of length bytes and returns a copy.
// The length is validated against the remaining input before allocating.
func (d *Decoder) readChunk(length uint64) ([]byte, error) {
	if d.remaining() < length {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d", ir.ErrInsufficientBytes, length, d.off)
	}
	out := make([]byte, length)
	copy(out, d.data[d.off:])
	d.off += int(length)
	return out, nil
}

// readBytes reads a byte- or text-string payload. Minor 31 is the
// indefinite form: definite-length chunks until a break byte, payloads
// concatenated.
func (d *Decoder) readBytes(minor byte) ([]byte, error) {
	if minor != 31 {
		length, err := d.readUint(minor)
		if err != nil {
			return nil, err
		}
		return d.readChunk(length)
	}
	out := []byte{}
	for {
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if b == breakByte {
			return out, nil
		}
		_, chunkMinor := readType(b)
		length, err := d.readUint(chunkMinor)
		if err != nil {
			return nil, err
		}
		chunk, err := d.readChunk(length)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
}

func (d *Decoder) readArray(minor byte, depth int) ([]*ir.Value, error) {
	if minor == 31 {
		arr := []*ir.Value{}
		for {
			b, err := d.readByte()
			if err != nil {
				return nil, err
			}
			if b == breakByte {
				return arr, nil
			}
			item, err := d.value(b, depth)
			if err != nil {
				return nil, err
			}
			arr = append(arr, item)
		}
	}
	count, err := d.readUint(minor)
	if err != nil {
		return nil, err
	}
	// every element costs at least one byte, so a count beyond the
	// remaining input can never be satisfied
	if count > d.remaining() {
		return nil, fmt.Errorf("%w: array of %d elements at offset %d", ir.ErrInsufficientBytes, count, d.off)
	}
	arr := make([]*ir.Value, 0, count)
	for i := uint64(0); i < count; i++ {
		item, err := d.element(depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, item)
	}
	return arr, nil
}

func (d *Decoder) readMap(minor byte, depth int) ([]ir.KeyVal, error) {
	if minor == 31 {
		kvs := []ir.KeyVal{}
		for {
			b, err := d.readByte()
			if err != nil {
				return nil, err
			}
			if b == breakByte {
				return kvs, nil
			}
			key, err := d.value(b, depth)
			if err != nil {
				return nil, err
			}
			val, err := d.element(depth)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
	}
	count, err := d.readUint(minor)
	if err != nil {
		return nil, err
	}
	if count > d.remaining() {
		return nil, fmt.Errorf("%w: map of %d entries at offset %d", ir.ErrInsufficientBytes, count, d.off)
	}
	kvs := make([]ir.KeyVal, 0, count)
	for i := uint64(0); i < count; i++ {
		key, err := d.element(depth)
		if err != nil {
			return nil, err
		}
		val, err := d.element(depth)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return kvs, nil
}

func (d *Decoder) readFloat(minor byte) (float64, error) {
	var n int
	switch minor {
	case 25:
		n = 2
	case 26:
		n = 4
	case 27:
		n = 8
	default:
		return 0, fmt.Errorf("%w: minor %d in float position at offset %d",
			ir.ErrUnexpectedValue, minor, d.off)
	}
	if d.remaining() < uint64(n) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d", ir.ErrInsufficientBytes, n, d.off)
	}
	var bits uint64
	for i := 0; i < n; i++ {
		bits = bits<<8 | uint64(d.data[d.off])
		d.off++
	}
	if d.opts.legacyFloats {
		// raw zero-extended bit pattern, whatever the width
		return math.Float64frombits(bits), nil
	}
	switch minor {
	case 25:
		return float64(float16.Frombits(uint16(bits)).Float32()), nil
	case 26:
		return float64(math.Float32frombits(uint32(bits))), nil
	default:
		return math.Float64frombits(bits), nil
	}
}

func (d *Decoder) readSimple(minor byte) (ir.Simple, error) {
	if minor < 24 {
		return ir.Simple(minor), nil
	}
	// minor == 24: one following byte, valid only in 32-255
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if b < 32 {
		return 0, fmt.Errorf("%w: reserved simple value %d at offset %d",
			ir.ErrUnexpectedValue, b, d.off)
	}
	return ir.Simple(b), nil
}

// element reads a leading byte and decodes one value.
func (d *Decoder) element(depth int) (*ir.Value, error) {
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}
	return d.value(b, depth)
}

// value decodes the item whose leading byte is b.
func (d *Decoder) value(b byte, depth int) (*ir.Value, error) {
	if d.opts.maxDepth > 0 && depth > d.opts.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d at offset %d",
			ir.ErrUnexpectedValue, d.opts.maxDepth, d.off)
	}
	major, minor := readType(b)

	// Tags wrap the following item; the tag number is discarded. This
	// loops rather than recursing so tag chains cost no stack.
	for major == 6 {
		if !d.opts.legacyTags {
			if _, err := d.readUint(minor); err != nil {
				return nil, err
			}
		}
		var err error
		b, err = d.readByte()
		if err != nil {
			return nil, err
		}
		major, minor = readType(b)
	}

	switch major {
	case 0:
		u, err := d.readUint(minor)
		if err != nil {
			return nil, err
		}
		return &ir.Value{Type: ir.UnsignedType, Uint64: u}, nil
	case 1:
		u, err := d.readUint(minor)
		if err != nil {
			return nil, err
		}
		// offset encoding; u near the uint64 maximum wraps, see the
		// negative round-trip notes in the package tests
		return &ir.Value{Type: ir.NegativeType, Int64: -1 - int64(u)}, nil
	case 2:
		bs, err := d.readBytes(minor)
		if err != nil {
			return nil, err
		}
		return &ir.Value{Type: ir.ByteStringType, Bytes: bs}, nil
	case 3:
		bs, err := d.readBytes(minor)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(bs) {
			return nil, fmt.Errorf("%w: invalid UTF-8 in text string at offset %d",
				ir.ErrUnexpectedValue, d.off)
		}
		return &ir.Value{Type: ir.Utf8StringType, String: string(bs)}, nil
	case 4:
		arr, err := d.readArray(minor, depth+1)
		if err != nil {
			return nil, err
		}
		return &ir.Value{Type: ir.ArrayType, Values: arr}, nil
	case 5:
		kvs, err := d.readMap(minor, depth+1)
		if err != nil {
			return nil, err
		}
		return &ir.Value{Type: ir.MapType, Pairs: kvs}, nil
	default: // major 7
		if minor <= 24 {
			s, err := d.readSimple(minor)
			if err != nil {
				return nil, err
			}
			return &ir.Value{Type: ir.SimpleType, Simple: s}, nil
		}
		f, err := d.readFloat(minor)
		if err != nil {
			return nil, err
		}
		return &ir.Value{Type: ir.FloatType, Float64: f}, nil
	}
}
