package decode

// DefaultMaxDepth bounds recursive descent into arrays and maps unless
// overridden with WithMaxDepth.
const DefaultMaxDepth = 1000

type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	maxDepth     int
	legacyTags   bool
	legacyFloats bool
}

// WithMaxDepth sets the nesting depth limit. n < 1 means unlimited.
func WithMaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// WithLegacyTags restores the original cborg tag handling for
// byte-compatibility: after a tag head byte, exactly one further byte is
// read and taken as the wrapped content's leading byte, so tag numbers
// with 1/2/4/8 trailing bytes are mis-parsed. The default consumes the
// tag number at its encoded width before decoding the content.
func WithLegacyTags() DecodeOption {
	return func(o *decodeOpts) { o.legacyTags = true }
}

// WithLegacyFloats restores the original cborg float handling for
// byte-compatibility: half- and single-precision payloads are
// zero-extended into a 64-bit pattern and bit-cast, which is numerically
// wrong. The default promotes them to double.
func WithLegacyFloats() DecodeOption {
	return func(o *decodeOpts) { o.legacyFloats = true }
}
