package path

import (
	"github.com/matt-g-everett/anim8/calc"
)

// Quadratic is a quadratic Bézier curve through p0 and p2 pulled towards p1.
type Quadratic struct {
	base
}

// NewQuadratic creates an instance of a Quadratic.
func NewQuadratic(name string, calculator calc.Calculator, p0, p1, p2 calc.Value) *Quadratic {
	q := new(Quadratic)
	q.reset(name, calculator, []calc.Value{p0, p1, p2})
	return q
}

func (q *Quadratic) Compute(out calc.Value, d1 float64) calc.Value {
	c := q.calculator
	d2 := d1 * d1
	i1 := 1 - d1
	i2 := i1 * i1

	out = c.Copy(out, q.ResolvePoint(0))
	out = c.Scale(out, i2)
	out = c.Adds(out, q.ResolvePoint(1), 2*i1*d1)
	out = c.Adds(out, q.ResolvePoint(2), d2)
	return out
}

func (q *Quadratic) IsLinear() bool {
	return false
}

func (q *Quadratic) Length(granularity int) float64 {
	return length(q, granularity)
}

func (q *Quadratic) Copy() Path {
	return NewQuadratic(q.name, q.calculator, q.points[0], q.points[1], q.points[2])
}

func (q *Quadratic) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(q, resolve)
}

// Cubic is a cubic Bézier curve through p0 and p3 with control points p1 and
// p2.
type Cubic struct {
	base
}

// NewCubic creates an instance of a Cubic.
func NewCubic(name string, calculator calc.Calculator, p0, p1, p2, p3 calc.Value) *Cubic {
	cb := new(Cubic)
	cb.reset(name, calculator, []calc.Value{p0, p1, p2, p3})
	return cb
}

func (cb *Cubic) Compute(out calc.Value, d1 float64) calc.Value {
	c := cb.calculator
	d2 := d1 * d1
	d3 := d1 * d2
	i1 := 1 - d1
	i2 := i1 * i1
	i3 := i1 * i2

	out = c.Copy(out, cb.ResolvePoint(0))
	out = c.Scale(out, i3)
	out = c.Adds(out, cb.ResolvePoint(1), 3*i2*d1)
	out = c.Adds(out, cb.ResolvePoint(2), 3*i1*d2)
	out = c.Adds(out, cb.ResolvePoint(3), d3)
	return out
}

func (cb *Cubic) IsLinear() bool {
	return false
}

func (cb *Cubic) Length(granularity int) float64 {
	return length(cb, granularity)
}

func (cb *Cubic) Copy() Path {
	return NewCubic(cb.name, cb.calculator, cb.points[0], cb.points[1], cb.points[2], cb.points[3])
}

func (cb *Cubic) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(cb, resolve)
}
