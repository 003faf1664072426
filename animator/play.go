package animator

import (
	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/path"
)

// Options controls the timing of the events an animator creates.
type Options = attrimator.Options

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return attrimator.DefaultOptions()
}

// Play starts the attrimators in m now, replacing anything running on the
// same attributes. With all set, attributes not in m are stopped as well.
func (a *Animator) Play(m *attrimator.Map, all bool) {
	a.newCycle(m)
	if all {
		a.finishNotPresent(m, 0)
	}
	values := m.Values()
	for i := len(values) - 1; i >= 0; i-- {
		a.place(values[i])
	}
	a.activate()
}

// Queue starts the attrimators in m together once everything finite already
// running has finished.
func (a *Animator) Queue(m *attrimator.Map) {
	a.newCycle(m)
	a.attrimators.QueueMap(m, func(at attrimator.Attrimator) {
		a.place(at)
	})
	a.activate()
}

// Add plays a single attrimator, such as a spring or physics attrimator, in a
// cycle of its own.
func (a *Animator) Add(at attrimator.Attrimator) {
	a.cycleNext++
	at.SetCycle(a.cycleNext)
	a.place(at)
	a.activate()
}

// Spring plays a spring on the animator.
func (a *Animator) Spring(s *attrimator.Spring) {
	a.Add(s)
}

// Physics plays a physics attrimator on the animator.
func (a *Animator) Physics(p *attrimator.Physics) {
	a.Add(p)
}

// finishNotPresent stops attrimators for attributes missing from m after
// delay milliseconds.
func (a *Animator) finishNotPresent(m *attrimator.Map, delay float64) {
	for _, at := range a.attrimators.Values() {
		if !m.Has(at.Attribute()) {
			at.StopIn(delay)
		}
	}
}

// event creates an event along a tween from start to end.
func (a *Animator) event(attr string, start, end calc.Value, o Options) *attrimator.Event {
	at := a.Attribute(attr)
	return attrimator.NewEvent(attr, path.NewTween(attr, at.Calculator, start, end), o)
}

// Tween animates attr between two values.
func (a *Animator) Tween(attr string, start, end interface{}, o Options) *attrimator.Event {
	at := a.Attribute(attr)
	e := a.event(attr, at.Parse(start), at.Parse(end), o)
	a.Add(e)
	return e
}

// TweenTo animates attr from its current value to target.
func (a *Animator) TweenTo(attr string, target interface{}, o Options) *attrimator.Event {
	e := a.event(attr, calc.Current{}, a.Attribute(attr).Parse(target), o)
	a.Add(e)
	return e
}

// TweenFrom animates attr from start to its current value.
func (a *Animator) TweenFrom(attr string, start interface{}, o Options) *attrimator.Event {
	e := a.event(attr, a.Attribute(attr).Parse(start), calc.Current{}, o)
	a.Add(e)
	return e
}

// Move animates attr by a relative amount.
func (a *Animator) Move(attr string, amount interface{}, o Options) *attrimator.Event {
	e := a.event(attr, calc.Current{}, a.relative(attr, amount), o)
	a.Add(e)
	return e
}

func (a *Animator) relative(attr string, amount interface{}) calc.Value {
	v := a.Attribute(attr).Parse(amount)
	if calc.IsComputed(v) {
		return v
	}
	return calc.Relative{Amount: v}
}

// TweenMany tweens several attributes in one cycle. Attributes in starts
// without an end are ignored.
func (a *Animator) TweenMany(starts, ends map[string]interface{}, o Options) {
	a.many(starts, o, func(attr string, raw interface{}) (calc.Value, calc.Value, bool) {
		end, ok := ends[attr]
		at := a.Attribute(attr)
		return at.Parse(raw), at.Parse(end), ok
	})
}

// TweenManyTo tweens several attributes to targets in one cycle.
func (a *Animator) TweenManyTo(targets map[string]interface{}, o Options) {
	a.many(targets, o, func(attr string, raw interface{}) (calc.Value, calc.Value, bool) {
		return calc.Current{}, a.Attribute(attr).Parse(raw), true
	})
}

// TweenManyFrom tweens several attributes from starting values in one cycle.
func (a *Animator) TweenManyFrom(starts map[string]interface{}, o Options) {
	a.many(starts, o, func(attr string, raw interface{}) (calc.Value, calc.Value, bool) {
		return a.Attribute(attr).Parse(raw), calc.Current{}, true
	})
}

// MoveMany moves several attributes by relative amounts in one cycle.
func (a *Animator) MoveMany(amounts map[string]interface{}, o Options) {
	a.many(amounts, o, func(attr string, raw interface{}) (calc.Value, calc.Value, bool) {
		return calc.Current{}, a.relative(attr, raw), true
	})
}

func (a *Animator) many(values map[string]interface{}, o Options, points func(attr string, raw interface{}) (calc.Value, calc.Value, bool)) {
	a.cycleNext++
	for attr, raw := range values {
		start, end, ok := points(attr, raw)
		if !ok {
			continue
		}
		e := a.event(attr, start, end, o)
		e.SetCycle(a.cycleNext)
		a.place(e)
	}
	a.activate()
}

// Follow animates attr along a path.
func (a *Animator) Follow(attr string, p path.Path, o Options) *attrimator.Event {
	e := attrimator.NewEvent(attr, p, o)
	a.Add(e)
	return e
}

// Ref returns a live value which reads attr from the animator, for use as a
// point of another animation.
func (a *Animator) Ref(attr string) calc.Live {
	return func() calc.Value {
		if v, ok := a.frame[attr]; ok {
			return v
		}
		if v, ok := a.subject.Get(attr); ok && v != nil {
			return v
		}
		return a.Attribute(attr).Default
	}
}

// heads returns the running attrimators for attrs, or all of them when attrs
// is empty.
func (a *Animator) heads(attrs []string) []attrimator.Attrimator {
	if len(attrs) == 0 {
		values := a.attrimators.Values()
		out := make([]attrimator.Attrimator, len(values))
		copy(out, values)
		return out
	}
	var out []attrimator.Attrimator
	for _, attr := range attrs {
		if at := a.attrimators.Get(attr); at != nil {
			out = append(out, at)
		}
	}
	return out
}

// Stop removes the attrimators for attrs, leaving the attributes where they
// are.
func (a *Animator) Stop(attrs ...string) {
	for _, at := range a.heads(attrs) {
		a.attrimators.Remove(at.Attribute())
	}
}

// End finishes the last attrimator queued for each of attrs, so the queue
// runs to its end value.
func (a *Animator) End(attrs ...string) {
	for _, at := range a.heads(attrs) {
		head := at
		for at.Next() != nil {
			at = at.Next()
		}
		if at != head {
			at.Start(0, a)
		}
		a.updated[at.Attribute()] = at.Finish(a.frame) || a.updated[at.Attribute()]
		if at != head {
			a.attrimators.Put(at.Attribute(), at)
		}
	}
}

// Finish finishes the running attrimator for each of attrs. Anything queued
// behind it starts next frame.
func (a *Animator) Finish(attrs ...string) {
	for _, at := range a.heads(attrs) {
		a.updated[at.Attribute()] = at.Finish(a.frame) || a.updated[at.Attribute()]
	}
}

// Nopeat lets the running attrimators for attrs finish their current
// iteration without repeating.
func (a *Animator) Nopeat(attrs ...string) {
	for _, at := range a.heads(attrs) {
		at.Nopeat()
	}
}

// Pause holds the attrimators for attrs at now.
func (a *Animator) Pause(now float64, attrs ...string) {
	for _, at := range a.heads(attrs) {
		at.Pause(now)
	}
}

// Resume continues paused attrimators for attrs from now.
func (a *Animator) Resume(now float64, attrs ...string) {
	for _, at := range a.heads(attrs) {
		at.Resume(now)
	}
}

// Set writes values straight to the subject.
func (a *Animator) Set(values map[string]calc.Value) {
	for attr, v := range values {
		a.frame[attr] = v
		a.updated[attr] = true
	}
	a.Apply()
}

// Unset stops animating attrs and forgets their working values.
func (a *Animator) Unset(attrs ...string) {
	for _, attr := range attrs {
		a.attrimators.Remove(attr)
		delete(a.frame, attr)
		delete(a.updated, attr)
	}
}

// Get returns the working values of attrs.
func (a *Animator) Get(attrs ...string) map[string]calc.Value {
	out := make(map[string]calc.Value, len(attrs))
	for _, attr := range attrs {
		out[attr] = a.frame[attr]
	}
	return out
}
