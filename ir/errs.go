package ir

import "errors"

// The two error kinds the codec surfaces. Decode and encode failures wrap
// one of these; callers test with errors.Is.
var (
	// ErrUnexpectedValue marks a structurally invalid type byte, an
	// out-of-range minor field, or otherwise malformed content.
	ErrUnexpectedValue = errors.New("unexpected value")

	// ErrInsufficientBytes marks input that ended before an expected
	// payload was fully consumed.
	ErrInsufficientBytes = errors.New("insufficient bytes")
)
