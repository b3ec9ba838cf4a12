package text

import (
	"strings"

	"github.com/fatih/color"

	"github.com/cborg/go-cborg/ir"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ir.Type]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ir.Type]func(string, ...any) string{},
	}
	colors.Map[ir.UnsignedType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ir.NegativeType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ir.FloatType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ir.Utf8StringType] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ir.ByteStringType] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ir.SimpleType] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, s string) string {
	return c.Get(t)(s)
}

func (c *Colors) Get(t ir.Type) func(string, ...any) string {
	f := c.Map[t]
	if f == nil {
		return c.Default
	}
	return f
}
