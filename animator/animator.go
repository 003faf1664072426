// Package animator runs the attrimators animating a subject and hands the
// results to it once per frame.
package animator

import (
	"math/rand"

	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
)

// Animator animates the attributes of one subject. Each frame is driven in
// three phases with the same time: Preupdate starts anything newly added,
// Update moves every attrimator forward into the frame and Apply writes the
// changed attributes to the subject.
//
// Attrimators added in one call share a cycle. Cycle callbacks fire as the
// oldest cycle still running changes.
type Animator struct {
	subject     Subject
	factory     Factory
	attrimators *attrimator.Map
	added       []attrimator.Attrimator
	frame       attrimator.Frame
	updated     map[string]bool
	rnd         *rand.Rand
	scheduler   *Scheduler

	finished     bool
	wasFinished  bool
	active       bool
	cycleCurrent int
	cycleNext    int
	cycleEnded   int

	cycleStart   map[int][]func(cycle int)
	cycleEnd     map[int][]func(cycle int)
	onFinished   []func(a *Animator)
	onDeactivate []func(a *Animator)
}

// New creates an instance of an Animator.
func New(subject Subject, factory Factory) *Animator {
	a := new(Animator)
	a.subject = subject
	a.factory = factory
	a.attrimators = attrimator.NewMap()
	a.frame = make(attrimator.Frame)
	a.updated = make(map[string]bool)
	a.rnd = rand.New(rand.NewSource(rand.Int63()))
	a.cycleStart = make(map[int][]func(int))
	a.cycleEnd = make(map[int][]func(int))
	return a
}

// SetRand replaces the source used to resolve random values.
func (a *Animator) SetRand(rnd *rand.Rand) {
	a.rnd = rnd
}

// Subject returns the subject being animated.
func (a *Animator) Subject() Subject {
	return a.subject
}

// Attrimators returns the queues running on the animator.
func (a *Animator) Attrimators() *attrimator.Map {
	return a.attrimators
}

// Attribute returns the description of attr, using the default calculator
// when the factory does not know it.
func (a *Animator) Attribute(attr string) *Attribute {
	if a.factory != nil {
		if at := a.factory.Attribute(attr); at != nil {
			return at
		}
	}
	return NewAttribute(attr, nil, nil)
}

func (a *Animator) Current(attr string) calc.Value {
	if v, ok := a.frame[attr]; ok {
		return v
	}
	return a.Attribute(attr).CloneDefault()
}

func (a *Animator) Calculator(attr string) calc.Calculator {
	return a.Attribute(attr).Calculator
}

func (a *Animator) Default(attr string) calc.Value {
	return a.Attribute(attr).CloneDefault()
}

func (a *Animator) Rand() *rand.Rand {
	return a.rnd
}

// Preupdate starts attrimators added since the last frame, seeding the frame
// with the subject's current value of their attribute.
func (a *Animator) Preupdate(now float64) {
	for _, at := range a.added {
		attr := at.Attribute()
		if v, ok := a.subject.Get(attr); ok && v != nil {
			a.frame[attr] = v
		} else if _, ok := a.frame[attr]; !ok {
			a.frame[attr] = a.Attribute(attr).CloneDefault()
		}
		at.Start(now, a)
	}
	a.added = a.added[:0]
}

// Update moves every attrimator to now and fires cycle callbacks when the
// oldest running cycle advances.
func (a *Animator) Update(now float64) {
	a.wasFinished = a.finished
	a.finished = true

	values := a.attrimators.Values()
	minCycle := a.cycleNext
	for i := len(values) - 1; i >= 0; i-- {
		at := values[i]
		attr := at.Attribute()
		a.updated[attr] = at.SetTime(now, a.frame) || a.updated[attr]
		a.finished = a.finished && at.IsFinished()
		if at.Cycle() < minCycle {
			minCycle = at.Cycle()
		}
	}

	if a.cycleCurrent < minCycle {
		for a.cycleCurrent < minCycle {
			a.endCurrentCycle()
			a.cycleCurrent++
		}
		a.applyCurrentCycle()
		a.fire(a.cycleStart, a.cycleCurrent)
	}

	if !a.wasFinished && a.finished {
		a.endCurrentCycle()
	}
}

// applyCurrentCycle writes the initial state of every head in the current
// cycle before the cycle start is announced.
func (a *Animator) applyCurrentCycle() {
	values := a.attrimators.Values()
	for i := len(values) - 1; i >= 0; i-- {
		at := values[i]
		if at.Cycle() == a.cycleCurrent {
			attr := at.Attribute()
			a.updated[attr] = at.StartCycle(a.frame) || a.updated[attr]
		}
	}
}

func (a *Animator) endCurrentCycle() {
	if a.cycleCurrent > a.cycleEnded {
		a.cycleEnded = a.cycleCurrent
		a.fire(a.cycleEnd, a.cycleCurrent)
	}
}

func (a *Animator) fire(callbacks map[int][]func(int), cycle int) {
	fns := callbacks[cycle]
	delete(callbacks, cycle)
	for _, fn := range fns {
		fn(cycle)
	}
}

// Apply writes updated attributes to the subject, then replaces finished
// attrimators with whatever is queued behind them.
func (a *Animator) Apply() {
	for attr, value := range a.frame {
		if a.updated[attr] {
			a.subject.Set(attr, value)
			a.updated[attr] = false
		}
	}
	a.trim()
}

func (a *Animator) trim() {
	values := a.attrimators.Values()
	for i := len(values) - 1; i >= 0; i-- {
		at := values[i]
		if !at.IsFinished() {
			continue
		}
		if next := at.Next(); next != nil {
			a.placeAt(i, next)
		} else {
			a.attrimators.RemoveAt(i)
		}
	}

	if !a.wasFinished && a.finished {
		a.wasFinished = true
		for _, fn := range a.onFinished {
			fn(a)
		}
	}
}

// ApplyInitialState runs a whole frame at now, which puts anything just
// played into its starting state.
func (a *Animator) ApplyInitialState(now float64) {
	a.Preupdate(now)
	a.Update(now)
	a.Apply()
}

// Deactivate is called by the scheduler when it stops running the animator.
func (a *Animator) Deactivate() {
	a.active = false
	for _, fn := range a.onDeactivate {
		fn(a)
	}
}

// place makes at the head for its attribute, to be started next frame. The
// previous head is returned.
func (a *Animator) place(at attrimator.Attrimator) attrimator.Attrimator {
	attr := at.Attribute()
	existing := a.attrimators.Get(attr)
	a.attrimators.Put(attr, at)
	a.added = append(a.added, at)
	a.finished = false
	return existing
}

// placeAt makes at the head in slot i, which holds the head for the same
// attribute.
func (a *Animator) placeAt(i int, at attrimator.Attrimator) {
	a.attrimators.SetAt(i, at)
	a.added = append(a.added, at)
	a.finished = false
}

// newCycle gives the attrimators of m new cycles.
func (a *Animator) newCycle(m *attrimator.Map) {
	a.cycleNext++
	if m != nil {
		a.cycleNext = m.ApplyCycle(a.cycleNext)
	}
}

func (a *Animator) activate() {
	if a.scheduler != nil && !a.active {
		a.scheduler.activate(a)
	}
}

// TimeRemaining is the time left on the longest finite queue.
func (a *Animator) TimeRemaining() float64 {
	return a.attrimators.TimeRemaining()
}

func (a *Animator) HasAttrimators() bool {
	return a.attrimators.Len() > 0
}

// Finished reports whether every attrimator finished in the last update.
func (a *Animator) Finished() bool {
	return a.finished
}

// Active reports whether the animator is being run by a scheduler.
func (a *Animator) Active() bool {
	return a.active
}

// Value returns the working value of attr.
func (a *Animator) Value(attr string) calc.Value {
	return a.frame[attr]
}

// OnCycleStart calls fn once, when the most recently added cycle starts.
func (a *Animator) OnCycleStart(fn func(cycle int)) {
	a.cycleStart[a.cycleNext] = append(a.cycleStart[a.cycleNext], fn)
}

// OnCycleEnd calls fn once, when the most recently added cycle ends.
func (a *Animator) OnCycleEnd(fn func(cycle int)) {
	a.cycleEnd[a.cycleNext] = append(a.cycleEnd[a.cycleNext], fn)
}

// OnFinished calls fn each time the animator finishes.
func (a *Animator) OnFinished(fn func(a *Animator)) {
	a.onFinished = append(a.onFinished, fn)
}

// OnDeactivate calls fn each time the animator is deactivated.
func (a *Animator) OnDeactivate(fn func(a *Animator)) {
	a.onDeactivate = append(a.onDeactivate, fn)
}
