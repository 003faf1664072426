// Package path implements curves which map progress between 0 and 1 to a
// value of some calculator's type.
package path

import (
	"github.com/matt-g-everett/anim8/calc"
)

// A Path computes a value for a progress (delta) between 0 and 1.
//
// Points may be literals, Live values which are read on every compute, or
// Computed values which must be replaced before the path is computed.
type Path interface {
	// Compute returns the value at delta. Keyframe paths return nil when
	// delta lies before their first key.
	Compute(out calc.Value, delta float64) calc.Value
	Name() string
	Calculator() calc.Calculator
	Points() []calc.Value
	ResolvePoint(i int) calc.Value
	IsLinear() bool
	Length(granularity int) float64
	Copy() Path
	HasComputed() bool
	ReplaceComputed(resolve func(calc.Value) calc.Value) Path
}

type base struct {
	name       string
	calculator calc.Calculator
	points     []calc.Value
}

func (b *base) reset(name string, calculator calc.Calculator, points []calc.Value) {
	if calculator == nil {
		calculator = calc.Default
	}
	b.name = name
	b.calculator = calculator
	b.points = points
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Calculator() calc.Calculator {
	return b.calculator
}

func (b *base) Points() []calc.Value {
	return b.points
}

func (b *base) ResolvePoint(i int) calc.Value {
	return calc.ResolveLive(b.points[i])
}

func (b *base) IsLinear() bool {
	return true
}

func (b *base) HasComputed() bool {
	for _, p := range b.points {
		if calc.IsComputed(p) {
			return true
		}
	}
	return false
}

func copyPoints(points []calc.Value) []calc.Value {
	out := make([]calc.Value, len(points))
	copy(out, points)
	return out
}

// length measures p exactly through its points when it is linear, otherwise
// by summing granularity sampled segments.
func length(p Path, granularity int) float64 {
	c := p.Calculator()
	points := p.Points()
	distance := 0.0
	if len(points) == 0 {
		return 0
	}

	if p.IsLinear() {
		prev := p.ResolvePoint(0)
		for i := 1; i < len(points); i++ {
			next := p.ResolvePoint(i)
			distance += c.Distance(prev, next)
			prev = next
		}
		return distance
	}

	if granularity < 1 {
		granularity = 1
	}
	prev := p.Compute(c.Create(), 0)
	for i := 1; i <= granularity; i++ {
		next := p.Compute(c.Create(), float64(i)/float64(granularity))
		distance += c.Distance(prev, next)
		prev = next
	}
	return distance
}

// replaceComputed copies p and resolves each of its computed points.
func replaceComputed(p Path, resolve func(calc.Value) calc.Value) Path {
	clone := p.Copy()
	points := clone.Points()
	for i, point := range points {
		if calc.IsComputed(point) {
			points[i] = resolve(point)
		}
	}
	return clone
}
