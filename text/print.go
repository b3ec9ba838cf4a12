package text

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cborg/go-cborg/ir"
)

const indentUnit = "   "

type PrintOption func(*printState)

type printState struct {
	color func(ir.Type, string) string
}

// PrintColors renders scalar payloads through the given color table.
func PrintColors(c *Colors) PrintOption {
	return func(ps *printState) { ps.color = c.Color }
}

// Fprint writes the indented rendering of v to w.
func Fprint(w io.Writer, v *ir.Value, opts ...PrintOption) error {
	ps := &printState{color: func(_ ir.Type, s string) string { return s }}
	for _, opt := range opts {
		opt(ps)
	}
	return fprint(w, v, 0, ps)
}

// Print writes the rendering of v to stdout with a trailing newline.
func Print(v *ir.Value, opts ...PrintOption) error {
	if err := Fprint(os.Stdout, v, opts...); err != nil {
		return err
	}
	_, err := os.Stdout.WriteString("\n")
	return err
}

// Sprint returns the rendering of v as a string.
func Sprint(v *ir.Value, opts ...PrintOption) string {
	var sb strings.Builder
	Fprint(&sb, v, opts...)
	return sb.String()
}

func fprint(w io.Writer, v *ir.Value, indent int, ps *printState) error {
	switch v.Type {
	case ir.UnsignedType:
		return writeString(w, ps.color(v.Type, strconv.FormatUint(v.Uint64, 10)))
	case ir.NegativeType:
		return writeString(w, ps.color(v.Type, strconv.FormatInt(v.Int64, 10)))
	case ir.FloatType:
		return writeString(w, ps.color(v.Type, strconv.FormatFloat(v.Float64, 'g', -1, 64)))
	case ir.SimpleType:
		return writeString(w, ps.color(v.Type, v.Simple.String()))
	case ir.Utf8StringType:
		return writeString(w, ps.color(v.Type, `"`+v.String+`"`))
	case ir.ByteStringType:
		return writeString(w, ps.color(v.Type, byteString(v.Bytes)))
	case ir.ArrayType:
		if err := writeString(w, "[\n"); err != nil {
			return err
		}
		for _, vv := range v.Values {
			if err := writeString(w, strings.Repeat(indentUnit, indent+1)); err != nil {
				return err
			}
			if err := fprint(w, vv, indent, ps); err != nil {
				return err
			}
			if err := writeString(w, ",\n"); err != nil {
				return err
			}
		}
		if err := writeString(w, strings.Repeat(indentUnit, indent)); err != nil {
			return err
		}
		return writeString(w, "]")
	case ir.MapType:
		if err := writeString(w, "{\n"); err != nil {
			return err
		}
		for i := range v.Pairs {
			if err := writeString(w, strings.Repeat(indentUnit, indent+1)); err != nil {
				return err
			}
			if err := fprint(w, v.Pairs[i].Key, indent+1, ps); err != nil {
				return err
			}
			if err := writeString(w, ": "); err != nil {
				return err
			}
			if err := fprint(w, v.Pairs[i].Val, indent+1, ps); err != nil {
				return err
			}
			if err := writeString(w, ",\n"); err != nil {
				return err
			}
		}
		if err := writeString(w, strings.Repeat(indentUnit, indent)); err != nil {
			return err
		}
		return writeString(w, "}")
	}
	return nil
}

// byte strings render inline as decimal lists
func byteString(b []byte) string {
	switch len(b) {
	case 0:
		return "[]"
	case 1:
		return "[ " + strconv.Itoa(int(b[0])) + " ]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(int(b[0])))
	for _, x := range b[1:] {
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(int(x)))
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
