package calc

import (
	"strings"
)

// Vec2 is a value with x and y components.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Vec3 is a value with x, y and z components.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Aliases understood by the 2d calculator, in percent.
var Aliases2d = map[string]float64{
	"left":   0,
	"right":  100,
	"middle": 50,
	"center": 50,
	"top":    0,
	"bottom": 100,
}

// Calculator2d animates Vec2 values.
type Calculator2d struct {
	vector
}

// NewCalculator2d creates an instance of a Calculator2d.
func NewCalculator2d() *Calculator2d {
	c := new(Calculator2d)
	c.vector = vector{name: "2d", codec: vec2Codec{}}
	return c
}

// Parse accepts a number (uniform x and y), [x, y], {x, y} with optional
// relative components, a relative string and "x y" pairs of numbers or
// aliases such as "center top".
func (c *Calculator2d) Parse(raw interface{}, defaultValue Value) Value {
	return c.parse(raw, defaultValue, parsePair)
}

func parsePair(s string, def components) (Value, bool) {
	pair := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '|'
	})
	if len(pair) == 0 {
		return nil, false
	}
	if len(pair) == 1 {
		pair = append(pair, pair[0])
	}
	x, okx := parseAlias(pair[0])
	y, oky := parseAlias(pair[1])
	if !okx && !oky {
		return nil, false
	}
	if !okx {
		x = def[0]
	}
	if !oky {
		y = def[1]
	}
	return Vec2{X: x, Y: y}, true
}

func parseAlias(s string) (float64, bool) {
	if n, ok := Aliases2d[s]; ok {
		return n, true
	}
	return toFloat(s)
}

// Calculator3d animates Vec3 values.
type Calculator3d struct {
	vector
}

// NewCalculator3d creates an instance of a Calculator3d.
func NewCalculator3d() *Calculator3d {
	c := new(Calculator3d)
	c.vector = vector{name: "3d", codec: vec3Codec{}}
	return c
}

// Parse accepts a number (uniform x, y and z), [x, y, z], {x, y, z} with
// optional relative components and a relative string.
func (c *Calculator3d) Parse(raw interface{}, defaultValue Value) Value {
	return c.parse(raw, defaultValue, nil)
}

type vec2Codec struct{}

func (vec2Codec) size() int {
	return 2
}

func (vec2Codec) keys() []string {
	return []string{"x", "y"}
}

func (vec2Codec) split(v Value) components {
	switch p := v.(type) {
	case Vec2:
		return components{p.X, p.Y}
	case *Vec2:
		return components{p.X, p.Y}
	}
	return components{}
}

func (vec2Codec) join(c components) Value {
	return Vec2{X: c[0], Y: c[1]}
}

func (vec2Codec) valid(v Value) bool {
	switch v.(type) {
	case Vec2, *Vec2:
		return true
	}
	return false
}

func (vec2Codec) uniform(n float64) components {
	return components{n, n}
}

func (vec2Codec) relative(n float64) (components, components, bool) {
	return components{n, n}, components{}, false
}

type vec3Codec struct{}

func (vec3Codec) size() int {
	return 3
}

func (vec3Codec) keys() []string {
	return []string{"x", "y", "z"}
}

func (vec3Codec) split(v Value) components {
	switch p := v.(type) {
	case Vec3:
		return components{p.X, p.Y, p.Z}
	case *Vec3:
		return components{p.X, p.Y, p.Z}
	}
	return components{}
}

func (vec3Codec) join(c components) Value {
	return Vec3{X: c[0], Y: c[1], Z: c[2]}
}

func (vec3Codec) valid(v Value) bool {
	switch v.(type) {
	case Vec3, *Vec3:
		return true
	}
	return false
}

func (vec3Codec) uniform(n float64) components {
	return components{n, n, n}
}

func (vec3Codec) relative(n float64) (components, components, bool) {
	return components{n, n, n}, components{}, false
}
