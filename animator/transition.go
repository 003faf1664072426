package animator

import (
	"math"

	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
	"github.com/matt-g-everett/anim8/path"
)

// Transition configures how an animator hands an attribute over from the
// attrimator running on it to a new one.
//
// The handover is a curve from the current value to the new attrimator's
// first value. Outro and Intro add control points that many milliseconds
// into the old and new attrimators to carry their direction through the
// curve. A negative Intro looks into the new attrimator's past, projected
// from its first Lookup milliseconds. With Granularity above 2 the curve is
// retimed so its speed changes evenly from the old attrimator's exit speed
// to the new one's entry speed, measured over Lookup milliseconds.
type Transition struct {
	Time        float64     `yaml:"time"`
	Outro       float64     `yaml:"outro"`
	Intro       float64     `yaml:"intro"`
	Granularity int         `yaml:"granularity"`
	Lookup      float64     `yaml:"lookup"`
	Easing      easing.Func `yaml:"-"`
}

// DefaultTransition returns the transition used when none is given.
func DefaultTransition() Transition {
	return Transition{
		Time:   500,
		Outro:  100,
		Intro:  100,
		Lookup: 10,
		Easing: easing.Linear,
	}
}

// Transition plays the attrimators in m, moving each attribute already
// being animated onto its new attrimator along a transition curve.
// Attributes with nothing running start once the transition time has
// passed. With all set, attributes not in m stop after the transition time.
func (a *Animator) Transition(t Transition, m *attrimator.Map, all bool) {
	a.newCycle(m)
	if all {
		a.finishNotPresent(m, t.Time)
	}

	values := m.Values()
	if !a.attrimators.HasOverlap(m) {
		for i := len(values) - 1; i >= 0; i-- {
			a.place(values[i])
		}
		a.activate()
		return
	}

	for i := len(values) - 1; i >= 0; i-- {
		next := values[i]
		attr := next.Attribute()
		curr := a.attrimators.Get(attr)
		current, ok := a.frame[attr]
		if curr == nil || !ok {
			next.SetDelay(next.Delay() + t.Time)
			a.place(next)
			continue
		}

		if r, ok := next.(attrimator.Resolver); ok && next.HasComputed() {
			r.ResolveComputed(a)
		}
		p, duration, ok := t.Path(a.Calculator(attr), attr, current, curr, next)
		if !ok {
			curr.StopIn(t.Time + next.Delay())
			curr.Queue(next)
			next.SetDelay(0)
			continue
		}

		e := attrimator.NewEvent(attr, p, Options{
			Duration: duration,
			Easing:   t.easingFunc(),
			Repeat:   1,
			Scale:    1,
		})
		e.SetNext(next)
		e.SetCycle(next.Cycle())
		next.SetOffset(math.Max(0, t.Intro))
		a.place(e)
	}
	a.activate()
}

func (t Transition) easingFunc() easing.Func {
	if t.Easing == nil {
		return easing.Linear
	}
	return t.Easing
}

// Path builds the transition curve from current, the value of attr, into
// next while curr is running. It returns the curve and how long it should
// take, or false when next has no starting value to aim for.
func (t Transition) Path(c calc.Calculator, attr string, current calc.Value, curr, next attrimator.Attrimator) (path.Path, float64, bool) {
	p2, ok := next.ValueAt(0)
	if !ok {
		return nil, 0, false
	}
	p0 := c.Clone(current)

	var p1, p3 calc.Value
	if t.Outro != 0 {
		if v, ok := curr.ValueAt(curr.Elapsed() + t.Outro); ok {
			p1 = v
		}
	}
	if t.Intro != 0 {
		if v, ok := next.ValueAt(t.Intro); ok {
			p3 = v
		}
	}

	// Project backwards from the first Lookup milliseconds of next, aiming
	// for a point before it starts and passing through its start.
	if p3 != nil && t.Intro < 0 && t.Lookup > 0 {
		if ahead, ok := next.ValueAt(t.Lookup); ok {
			velocity := c.Sub(c.Clone(ahead), p2)
			past := c.Add(c.Scale(velocity, t.Intro/t.Lookup), p2)
			p3 = p2
			p2 = past
		}
	}

	var p path.Path
	switch {
	case p1 == nil && p3 == nil:
		p = path.NewTween(attr, c, p0, p2)
	case p1 == nil:
		p = path.NewQuadratic(attr, c, p0, p2, p3)
	case p3 == nil:
		p = path.NewQuadratic(attr, c, p0, p1, p2)
	default:
		p = path.NewCubic(attr, c, p0, p1, p2, p3)
	}

	duration := t.Time
	if t.Granularity > 2 && t.Lookup > 0 {
		outTime, outPoint := curr.Elapsed(), p0
		if p1 != nil {
			outTime, outPoint = outTime+t.Outro, p1
		}
		inTime, inPoint := 0.0, p2
		if p3 != nil {
			inTime, inPoint = t.Intro, p3
		}
		outNext, okOut := curr.ValueAt(outTime + t.Lookup)
		inNext, okIn := next.ValueAt(inTime + t.Lookup)
		if okOut && okIn {
			vOut := c.Distance(outNext, outPoint) / t.Lookup
			vIn := c.Distance(inNext, inPoint) / t.Lookup
			if smooth, required, ok := retime(c, attr, p, t.Granularity, vOut, vIn); ok {
				p, duration = smooth, required
			}
		}
	}

	return p, duration, true
}

// retime samples p into granularity points and places them in time so that
// speed changes at a constant rate from vOut to vIn. It fails when the
// speeds or the length of p give no usable time.
func retime(c calc.Calculator, attr string, p path.Path, granularity int, vOut, vIn float64) (path.Path, float64, bool) {
	speed := vOut + vIn
	if speed == 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, 0, false
	}

	points := path.NewCompiled(attr, p, granularity).Points()
	last := len(points) - 1
	total := 0.0
	for k := 0; k < last; k++ {
		total += c.Distance(points[k], points[k+1])
	}

	required := 2 * total / speed
	if !(required > 0) || math.IsInf(required, 0) {
		return nil, 0, false
	}
	acceleration := 0.5 * (vIn - vOut) / required

	deltas := make([]float64, len(points))
	for k := 0; k < last; k++ {
		time := float64(k) * required / float64(last)
		deltas[k] = (vOut*time + acceleration*time*time) / total
	}
	deltas[last] = 1

	return path.NewDelta(attr, c, points, deltas), required, true
}
