package path

import (
	"github.com/matt-g-everett/anim8/calc"
)

// Tween interpolates linearly between two points.
type Tween struct {
	base
}

// NewTween creates an instance of a Tween.
func NewTween(name string, calculator calc.Calculator, start, end calc.Value) *Tween {
	t := new(Tween)
	t.reset(name, calculator, []calc.Value{start, end})
	return t
}

func (t *Tween) Compute(out calc.Value, delta float64) calc.Value {
	return t.calculator.Interpolate(out, t.ResolvePoint(0), t.ResolvePoint(1), delta)
}

func (t *Tween) Length(granularity int) float64 {
	return length(t, granularity)
}

func (t *Tween) Copy() Path {
	return NewTween(t.name, t.calculator, t.points[0], t.points[1])
}

func (t *Tween) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(t, resolve)
}

// Point is a constant path.
type Point struct {
	base
}

// NewPoint creates an instance of a Point.
func NewPoint(name string, calculator calc.Calculator, point calc.Value) *Point {
	p := new(Point)
	p.reset(name, calculator, []calc.Value{point})
	return p
}

func (p *Point) Compute(out calc.Value, delta float64) calc.Value {
	return p.calculator.Copy(out, p.ResolvePoint(0))
}

func (p *Point) Length(granularity int) float64 {
	return 0
}

func (p *Point) Copy() Path {
	return NewPoint(p.name, p.calculator, p.points[0])
}

func (p *Point) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(p, resolve)
}
