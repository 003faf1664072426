package path

import (
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
)

// Delta interpolates linearly between points placed at the given deltas.
// Deltas are ascending and there is one per point.
type Delta struct {
	base
	deltas []float64
}

// NewDelta creates an instance of a Delta. When there is not one delta per
// point the points are spread evenly.
func NewDelta(name string, calculator calc.Calculator, points []calc.Value, deltas []float64) *Delta {
	d := new(Delta)
	d.reset(name, calculator, points)
	if len(deltas) != len(points) {
		deltas = EvenDeltas(len(points))
	}
	d.deltas = deltas
	return d
}

// Deltas returns the delta each point is placed at.
func (d *Delta) Deltas() []float64 {
	return d.deltas
}

// Compute returns nil for a delta path without points.
func (d *Delta) Compute(out calc.Value, delta float64) calc.Value {
	if len(d.points) == 0 {
		return nil
	}
	if len(d.points) == 1 {
		return d.calculator.Copy(out, d.ResolvePoint(0))
	}
	i, pd := segment(d.deltas, delta)
	return d.calculator.Interpolate(out, d.ResolvePoint(i), d.ResolvePoint(i+1), pd)
}

func (d *Delta) Length(granularity int) float64 {
	return length(d, granularity)
}

func (d *Delta) Copy() Path {
	return NewDelta(d.name, d.calculator, copyPoints(d.points), copyDeltas(d.deltas))
}

func (d *Delta) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(d, resolve)
}

// Keyframe is a Delta path with an easing per segment. It has no value before
// its first delta and holds its last point after its last delta.
type Keyframe struct {
	base
	deltas  []float64
	easings []easing.Func
}

// NewKeyframe creates an instance of a Keyframe. Deltas are spread evenly
// unless there is one per point, and missing easings are linear.
func NewKeyframe(name string, calculator calc.Calculator, points []calc.Value, deltas []float64, easings []easing.Func) *Keyframe {
	k := new(Keyframe)
	k.reset(name, calculator, points)
	if len(deltas) != len(points) {
		deltas = EvenDeltas(len(points))
	}
	for len(easings) < len(points) {
		easings = append(easings, easing.Linear)
	}
	k.deltas = deltas
	k.easings = easings
	return k
}

func (k *Keyframe) Compute(out calc.Value, delta float64) calc.Value {
	ds := k.deltas
	last := len(ds) - 1
	if last < 0 || delta < ds[0] {
		return nil
	}
	if delta > ds[last] || last == 0 {
		return k.calculator.Copy(out, k.ResolvePoint(last))
	}
	i, pd := segment(ds, delta)
	return k.calculator.Interpolate(out, k.ResolvePoint(i), k.ResolvePoint(i+1), k.easings[i](pd))
}

func (k *Keyframe) Length(granularity int) float64 {
	return length(k, granularity)
}

func (k *Keyframe) Copy() Path {
	easings := make([]easing.Func, len(k.easings))
	copy(easings, k.easings)
	return NewKeyframe(k.name, k.calculator, copyPoints(k.points), copyDeltas(k.deltas), easings)
}

func (k *Keyframe) ReplaceComputed(resolve func(calc.Value) calc.Value) Path {
	return replaceComputed(k, resolve)
}

// EvenDeltas returns n deltas spread evenly from 0 to 1.
func EvenDeltas(n int) []float64 {
	deltas := make([]float64, n)
	if n == 1 {
		return deltas
	}
	for i := range deltas {
		deltas[i] = float64(i) / float64(n-1)
	}
	return deltas
}

// segment finds the pair of deltas surrounding delta and the progress between
// them. Progress is not clamped, so deltas outside the range extrapolate the
// first or last segment.
func segment(ds []float64, delta float64) (int, float64) {
	end := len(ds) - 2
	i := 0
	for i < end && ds[i+1] < delta {
		i++
	}
	d0, d1 := ds[i], ds[i+1]
	if d1 == d0 {
		return i, 1
	}
	return i, (delta - d0) / (d1 - d0)
}

func copyDeltas(deltas []float64) []float64 {
	out := make([]float64, len(deltas))
	copy(out, deltas)
	return out
}
