// Package calc implements the arithmetic strategies used to animate values of
// different types. A Calculator is stateless and shared: one instance exists
// per kind of value (number, 2d, 3d, quaternion, rgb and rgba).
package calc

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Value is an animatable value. Its concrete type depends on the Calculator
// that produced it.
type Value interface{}

// A Calculator performs the math for one kind of animatable value.
//
// Operations that produce a value take an out argument and return the
// result. Values are Go values, so callers must always use the returned
// value; out is the value being modified where the operation reads it
// (Adds, Scale, Sub, Mul, Clamp, SetLength) and is otherwise ignored.
type Calculator interface {
	Name() string
	Create() Value
	Zero(out Value) Value
	Copy(out, copy Value) Value
	Clone(v Value) Value
	Adds(out, amount Value, amountScale float64) Value
	Add(out, amount Value) Value
	Sub(out, amount Value) Value
	Scale(out Value, scale float64) Value
	Mul(out, scale Value) Value
	Interpolate(out, start, end Value, delta float64) Value
	Random(out, min, max Value, rnd *rand.Rand) Value
	Distance(a, b Value) float64
	DistanceSq(a, b Value) float64
	Length(a Value) float64
	LengthSq(a Value) float64
	IsValid(a Value) bool
	IsNaN(a Value) bool
	IsZero(a Value, epsilon float64) bool
	IsEqual(a, b Value, epsilon float64) bool
	Min(out, a, b Value) Value
	Max(out, a, b Value) Value
	Dot(a, b Value) float64
	Clamp(out Value, min, max float64) Value
	SetLength(out Value, length float64) Value

	// Parse interprets raw input as a literal Value, a Computed descriptor or
	// a Live value. When nothing can be parsed a clone of defaultValue is
	// returned, or nil when there is no default.
	Parse(raw interface{}, defaultValue Value) Value

	// Components returns the numeric components of a value in a fixed order.
	Components(v Value) []float64
	FromComponents(c []float64) Value
}

// UnknownKindError is returned when a calculator, path or spring kind is
// requested by a name that is not registered.
type UnknownKindError struct {
	Kind string
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown %s kind %q", e.Kind, e.Name)
}

// The shared calculator instances.
var (
	Number  = NewNumberCalculator()
	Point2d = NewCalculator2d()
	Point3d = NewCalculator3d()
	Quat    = NewQuaternionCalculator()
	RGB     = NewRGBCalculator()
	RGBA    = NewRGBACalculator()
)

// Default is the calculator used when none is specified.
var Default Calculator = Number

var registry = map[string]Calculator{
	"number":     Number,
	"default":    Number,
	"2d":         Point2d,
	"3d":         Point3d,
	"quaternion": Quat,
	"rgb":        RGB,
	"rgba":       RGBA,
}

// Lookup returns the calculator registered under name.
func Lookup(name string) (Calculator, error) {
	if c, ok := registry[name]; ok {
		return c, nil
	}
	return nil, &UnknownKindError{Kind: "calculator", Name: name}
}

// Register adds or replaces a named calculator.
func Register(name string, c Calculator) {
	registry[name] = c
}

// Names lists the registered calculator names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// components is the fixed size storage every calculator works on.
type components [4]float64

// A codec maps one value kind to and from components.
type codec interface {
	size() int
	keys() []string
	split(v Value) components
	join(c components) Value
	valid(v Value) bool
	uniform(n float64) components
	relative(n float64) (amount components, mask components, masked bool)
}

// vector implements the arithmetic shared by every kind on top of a codec.
type vector struct {
	name  string
	codec codec
}

func (v vector) Name() string {
	return v.name
}

func (v vector) Create() Value {
	return v.codec.join(components{})
}

func (v vector) Zero(out Value) Value {
	return v.Create()
}

func (v vector) Copy(out, copy Value) Value {
	return v.codec.join(v.codec.split(copy))
}

func (v vector) Clone(x Value) Value {
	return v.Copy(v.Create(), x)
}

func (v vector) Adds(out, amount Value, amountScale float64) Value {
	o, a := v.codec.split(out), v.codec.split(amount)
	for i := 0; i < v.codec.size(); i++ {
		o[i] += a[i] * amountScale
	}
	return v.codec.join(o)
}

func (v vector) Add(out, amount Value) Value {
	return v.Adds(out, amount, 1)
}

func (v vector) Sub(out, amount Value) Value {
	return v.Adds(out, amount, -1)
}

func (v vector) Scale(out Value, scale float64) Value {
	o := v.codec.split(out)
	for i := 0; i < v.codec.size(); i++ {
		o[i] *= scale
	}
	return v.codec.join(o)
}

func (v vector) Mul(out, scale Value) Value {
	o, s := v.codec.split(out), v.codec.split(scale)
	for i := 0; i < v.codec.size(); i++ {
		o[i] *= s[i]
	}
	return v.codec.join(o)
}

func (v vector) Interpolate(out, start, end Value, delta float64) Value {
	s, e := v.codec.split(start), v.codec.split(end)
	var o components
	for i := 0; i < v.codec.size(); i++ {
		o[i] = (e[i]-s[i])*delta + s[i]
	}
	return v.codec.join(o)
}

func (v vector) Random(out, min, max Value, rnd *rand.Rand) Value {
	lo, hi := v.codec.split(min), v.codec.split(max)
	var o components
	for i := 0; i < v.codec.size(); i++ {
		o[i] = (hi[i]-lo[i])*random(rnd) + lo[i]
	}
	return v.codec.join(o)
}

func (v vector) Distance(a, b Value) float64 {
	return math.Sqrt(v.DistanceSq(a, b))
}

func (v vector) DistanceSq(a, b Value) float64 {
	x, y := v.codec.split(a), v.codec.split(b)
	sum := 0.0
	for i := 0; i < v.codec.size(); i++ {
		d := x[i] - y[i]
		sum += d * d
	}
	return sum
}

func (v vector) Length(a Value) float64 {
	return math.Sqrt(v.LengthSq(a))
}

func (v vector) LengthSq(a Value) float64 {
	return v.DistanceSq(a, v.Create())
}

func (v vector) IsValid(a Value) bool {
	return v.codec.valid(a)
}

func (v vector) IsNaN(a Value) bool {
	x := v.codec.split(a)
	for i := 0; i < v.codec.size(); i++ {
		if math.IsNaN(x[i]) {
			return true
		}
	}
	return false
}

func (v vector) IsZero(a Value, epsilon float64) bool {
	x := v.codec.split(a)
	for i := 0; i < v.codec.size(); i++ {
		if math.Abs(x[i]) >= epsilon {
			return false
		}
	}
	return true
}

func (v vector) IsEqual(a, b Value, epsilon float64) bool {
	x, y := v.codec.split(a), v.codec.split(b)
	for i := 0; i < v.codec.size(); i++ {
		if math.Abs(x[i]-y[i]) >= epsilon {
			return false
		}
	}
	return true
}

func (v vector) Min(out, a, b Value) Value {
	x, y := v.codec.split(a), v.codec.split(b)
	var o components
	for i := 0; i < v.codec.size(); i++ {
		o[i] = math.Min(x[i], y[i])
	}
	return v.codec.join(o)
}

func (v vector) Max(out, a, b Value) Value {
	x, y := v.codec.split(a), v.codec.split(b)
	var o components
	for i := 0; i < v.codec.size(); i++ {
		o[i] = math.Max(x[i], y[i])
	}
	return v.codec.join(o)
}

func (v vector) Dot(a, b Value) float64 {
	x, y := v.codec.split(a), v.codec.split(b)
	sum := 0.0
	for i := 0; i < v.codec.size(); i++ {
		sum += x[i] * y[i]
	}
	return sum
}

// Clamp scales out so its magnitude lies within [min, max]. A zero value is
// returned unchanged since it has no direction to scale along.
func (v vector) Clamp(out Value, min, max float64) Value {
	distSq := v.LengthSq(out)
	if distSq == 0 {
		return out
	}
	if distSq < min*min {
		return v.Scale(out, min/math.Sqrt(distSq))
	}
	if distSq > max*max {
		return v.Scale(out, max/math.Sqrt(distSq))
	}
	return out
}

func (v vector) SetLength(out Value, length float64) Value {
	lengthSq := v.LengthSq(out)
	if lengthSq == 0 {
		return out
	}
	return v.Scale(out, length/math.Sqrt(lengthSq))
}

func (v vector) Components(x Value) []float64 {
	c := v.codec.split(x)
	out := make([]float64, v.codec.size())
	copy(out, c[:v.codec.size()])
	return out
}

func (v vector) FromComponents(c []float64) Value {
	var x components
	copy(x[:v.codec.size()], c)
	return v.codec.join(x)
}

func random(rnd *rand.Rand) float64 {
	if rnd == nil {
		return rand.Float64()
	}
	return rnd.Float64()
}
