package ir

import "strconv"

// Simple is a CBOR simple value (major type 7, minor <= 24). The named
// constants cover the assigned codes; every other code is an unassigned
// simple value carried through as its numeric code. Codes 24-31 are
// reserved by the wire format and have no legal encoding.
type Simple uint8

const (
	False      Simple = 20
	True       Simple = 21
	NullSimple Simple = 22
	Undefined  Simple = 23
)

func (s Simple) String() string {
	switch s {
	case False:
		return "false"
	case True:
		return "true"
	case NullSimple:
		return "null"
	case Undefined:
		return "undefined"
	}
	return strconv.FormatUint(uint64(s), 10)
}

// Named reports whether s is one of the four assigned simple values.
func (s Simple) Named() bool {
	return s >= False && s <= Undefined
}
