package cssom

import (
	"fmt"
	"strconv"

	"github.com/mazznoer/csscolorparser"
)

// Value is a CSS property value: one of Length, ColorValue or Keyword.
type Value interface {
	String() string
	isValue()
}

// Unit is a CSS length unit.
type Unit uint8

// Px is the only supported unit, an absolute CSS pixel.
const Px Unit = iota

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Length is a numeric value with a unit, e.g. "12.5px".
type Length struct {
	Value float32
	Unit  Unit
}

// ColorValue is a color given in hex notation, e.g. "#ff0000".
type ColorValue struct {
	Color Color
}

// Keyword is any other value, kept as an opaque identifier.
type Keyword string

func (Length) isValue()     {}
func (ColorValue) isValue() {}
func (Keyword) isValue()    {}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Value), 'f', -1, 32) + l.Unit.String()
}

func (c ColorValue) String() string {
	return c.Color.String()
}

func (k Keyword) String() string {
	return string(k)
}

// PxValue returns the size of a length in pixels, or 0 for all other values.
func PxValue(v Value) float32 {
	if l, ok := v.(Length); ok && l.Unit == Px {
		return l.Value
	}
	return 0
}

// Color is an RGBA color with 8 bits per channel, not alpha-premultiplied.
type Color struct {
	R, G, B, A uint8
}

// RGBA is part of interface image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	r |= r << 8
	g |= g << 8
	b |= b << 8
	a |= a << 8
	return
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ToColor interprets a value as a color. Hex colors are returned as they
// are, keywords are resolved as named CSS colors ("red", "rebeccapurple",
// "transparent", …). Lengths and unknown keywords are an error.
func ToColor(v Value) (Color, error) {
	switch x := v.(type) {
	case ColorValue:
		return x.Color, nil
	case Keyword:
		c, err := csscolorparser.Parse(string(x))
		if err != nil {
			return Color{}, fmt.Errorf("not a color: %q: %w", string(x), err)
		}
		r, g, b, a := c.RGBA255()
		return Color{R: r, G: g, B: b, A: a}, nil
	case Length:
		return Color{}, fmt.Errorf("not a color: %s", x)
	}
	panic(fmt.Sprintf("cssom: unknown value type %T", v))
}
