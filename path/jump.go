package path

import (
	"math"

	"github.com/matt-g-everett/anim8/calc"
)

// Jump steps through its points without interpolating. Each point holds for an
// equal share of the delta range.
type Jump struct {
	base
}

// NewJump creates an instance of a Jump.
func NewJump(name string, calculator calc.Calculator, points []calc.Value) *Jump {
	j := new(Jump)
	j.reset(name, calculator, points)
	return j
}

func (j *Jump) Compute(out calc.Value, delta float64) calc.Value {
	if len(j.points) == 0 {
		return nil
	}
	return j.calculator.Copy(out, j.ResolvePoint(jumpIndex(delta, len(j.points))))
}

func (j *Jump) Length(granularity int) float64 {
	return length(j, granularity)
}

func (j *Jump) Copy() Path {
	return NewJump(j.name, j.calculator, copyPoints(j.points))
}

func (j *Jump) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(j, resolve)
}

// Compiled is another path sampled into a fixed number of points. Computing a
// compiled path is a lookup, which suits expensive or live source paths that
// only need to be evaluated once.
type Compiled struct {
	base
}

// NewCompiled samples source at pointCount evenly spaced deltas.
func NewCompiled(name string, source Path, pointCount int) *Compiled {
	c := new(Compiled)
	calculator := source.Calculator()
	if pointCount < 0 {
		pointCount = 0
	}
	points := make([]calc.Value, pointCount)
	for i := range points {
		d := 0.0
		if pointCount > 1 {
			d = float64(i) / float64(pointCount-1)
		}
		points[i] = source.Compute(calculator.Create(), d)
	}
	c.reset(name, calculator, points)
	return c
}

func (c *Compiled) Compute(out calc.Value, delta float64) calc.Value {
	if len(c.points) == 0 {
		return nil
	}
	return c.calculator.Copy(out, c.ResolvePoint(jumpIndex(delta, len(c.points))))
}

func (c *Compiled) Length(granularity int) float64 {
	return length(c, granularity)
}

func (c *Compiled) Copy() Path {
	cc := new(Compiled)
	cc.reset(c.name, c.calculator, copyPoints(c.points))
	return cc
}

func (c *Compiled) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(c, resolve)
}

func jumpIndex(delta float64, n int) int {
	i := int(math.Floor(delta * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
