package calc

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor is a colour with an alpha channel. Components lie in [0, 1].
type RGBAColor struct {
	colorful.Color
	A float64
}

// RGBCalculator animates colorful.Color values component-wise in RGB space.
type RGBCalculator struct {
	vector
}

// NewRGBCalculator creates an instance of an RGBCalculator.
func NewRGBCalculator() *RGBCalculator {
	c := new(RGBCalculator)
	c.vector = vector{name: "rgb", codec: rgbCodec{}}
	return c
}

// Parse accepts a number (grey), [r, g, b], {r, g, b} with optional relative
// components, a relative string and hex colours such as "#ff8800".
func (c *RGBCalculator) Parse(raw interface{}, defaultValue Value) Value {
	return c.parse(raw, defaultValue, func(s string, _ components) (Value, bool) {
		col, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		return col, true
	})
}

// Interpolate blends the colours in RGB space.
func (c *RGBCalculator) Interpolate(out, start, end Value, delta float64) Value {
	return toColor(start).BlendRgb(toColor(end), delta)
}

// Random picks a colour between min and max.
func (c *RGBCalculator) Random(out, min, max Value, rnd *rand.Rand) Value {
	return toColor(min).BlendRgb(toColor(max), random(rnd))
}

// RGBACalculator animates RGBAColor values.
type RGBACalculator struct {
	vector
}

// NewRGBACalculator creates an instance of an RGBACalculator.
func NewRGBACalculator() *RGBACalculator {
	c := new(RGBACalculator)
	c.vector = vector{name: "rgba", codec: rgbaCodec{}}
	return c
}

// Parse accepts the same input as RGBCalculator plus an alpha component.
// Hex colours are opaque.
func (c *RGBACalculator) Parse(raw interface{}, defaultValue Value) Value {
	return c.parse(raw, defaultValue, func(s string, _ components) (Value, bool) {
		col, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		return RGBAColor{Color: col, A: 1}, true
	})
}

func toColor(v Value) colorful.Color {
	switch c := v.(type) {
	case colorful.Color:
		return c
	case *colorful.Color:
		return *c
	case RGBAColor:
		return c.Color
	}
	return colorful.Color{}
}

type rgbCodec struct{}

func (rgbCodec) size() int {
	return 3
}

func (rgbCodec) keys() []string {
	return []string{"r", "g", "b"}
}

func (rgbCodec) split(v Value) components {
	c := toColor(v)
	return components{c.R, c.G, c.B}
}

func (rgbCodec) join(c components) Value {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

func (rgbCodec) valid(v Value) bool {
	switch v.(type) {
	case colorful.Color, *colorful.Color:
		return true
	}
	return false
}

func (rgbCodec) uniform(n float64) components {
	return components{n, n, n}
}

func (rgbCodec) relative(n float64) (components, components, bool) {
	return components{n, n, n}, components{}, false
}

type rgbaCodec struct{}

func (rgbaCodec) size() int {
	return 4
}

func (rgbaCodec) keys() []string {
	return []string{"r", "g", "b", "a"}
}

func (rgbaCodec) split(v Value) components {
	switch c := v.(type) {
	case RGBAColor:
		return components{c.R, c.G, c.B, c.A}
	case *RGBAColor:
		return components{c.R, c.G, c.B, c.A}
	case colorful.Color:
		return components{c.R, c.G, c.B, 1}
	}
	return components{}
}

func (rgbaCodec) join(c components) Value {
	return RGBAColor{Color: colorful.Color{R: c[0], G: c[1], B: c[2]}, A: c[3]}
}

func (rgbaCodec) valid(v Value) bool {
	switch v.(type) {
	case RGBAColor, *RGBAColor:
		return true
	}
	return false
}

func (rgbaCodec) uniform(n float64) components {
	return components{n, n, n, 1}
}

func (rgbaCodec) relative(n float64) (components, components, bool) {
	return components{n, n, n, 0}, components{}, false
}
