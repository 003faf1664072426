package attrimator

import (
	"math"

	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
	"github.com/matt-g-everett/anim8/path"
)

// EventState is the phase an Event is in.
type EventState int

// The states of an Event.
const (
	Delayed EventState = 1 << iota
	Animating
	Sleeping
	Finished
)

func (s EventState) String() string {
	switch s {
	case Delayed:
		return "delayed"
	case Animating:
		return "animating"
	case Sleeping:
		return "sleeping"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Options controls the timing of an Event.
type Options struct {
	Duration float64
	Easing   easing.Func
	Delay    float64
	Sleep    float64
	Offset   float64
	// Repeat is the number of times the path plays; math.Inf(1) repeats
	// forever.
	Repeat float64
	// Scale stretches the computed value away from ScaleBase.
	Scale     float64
	ScaleBase calc.Value
	// NoInitialState stops the event from writing its starting value when
	// its cycle begins, so nothing is written until its delay has passed.
	NoInitialState bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Duration: 1000,
		Easing:   easing.Ease,
		Repeat:   1,
		Scale:    1,
	}
}

// Event plays a path over a duration, optionally repeating with a sleep
// between each play.
type Event struct {
	base
	path            path.Path
	easing          easing.Func
	duration        float64
	sleep           float64
	repeat          float64
	scale           float64
	scaleBase       calc.Value
	hasInitialState bool
	state           EventState
}

// NewEvent creates an instance of an Event.
func NewEvent(attribute string, p path.Path, o Options) *Event {
	e := new(Event)
	e.reset(attribute)
	e.path = p
	e.easing = o.Easing
	if e.easing == nil {
		e.easing = easing.Ease
	}
	e.duration = o.Duration
	e.sleep = o.Sleep
	e.repeat = o.Repeat
	e.scale = o.Scale
	e.scaleBase = o.ScaleBase
	if e.scaleBase == nil {
		e.scaleBase = p.Calculator().Create()
	}
	e.hasInitialState = !o.NoInitialState
	e.delay = o.Delay
	e.offset = o.Offset
	e.state = Delayed
	return e
}

// Path returns the path being played.
func (e *Event) Path() path.Path {
	return e.path
}

// State returns the phase the event was in at its last update.
func (e *Event) State() EventState {
	return e.state
}

func (e *Event) Duration() float64 {
	return e.duration
}

func (e *Event) Repeat() float64 {
	return e.repeat
}

// computeValue returns the path value at eased progress delta, scaled about
// the scale base. It is nil when the path has no value there.
func (e *Event) computeValue(delta float64) calc.Value {
	c := e.path.Calculator()
	value := e.path.Compute(c.Create(), e.easing(delta))
	if value != nil && e.scale != 1 {
		distance := c.Sub(c.Clone(e.scaleBase), value)
		value = c.Adds(value, distance, 1-e.scale)
	}
	return value
}

func (e *Event) applyValue(frame Frame, delta float64) bool {
	value := e.computeValue(delta)
	if value == nil {
		return false
	}
	frame[e.attribute] = value
	return true
}

// progress returns the state and uneased delta at t milliseconds after
// the delay.
func (e *Event) progress(t float64) (EventState, float64) {
	cycle := e.duration + e.sleep
	if cycle <= 0 {
		return Finished, 1
	}
	iteration := math.Floor((t + e.sleep) / cycle)
	if iteration >= e.repeat {
		return Finished, 1
	}
	within := math.Mod(t, cycle)
	if within > e.duration {
		return Sleeping, 1
	}
	if e.duration == 0 {
		return Animating, 1
	}
	return Animating, within / e.duration
}

func (e *Event) Start(now float64, ctx Context) {
	e.start(now)
	if e.delay > 0 {
		e.state = Delayed
	} else {
		e.state = Animating
	}
	e.ResolveComputed(ctx)
}

// ResolveComputed replaces the computed values in the path against the
// attribute's current value in ctx. Start resolves anything still computed.
func (e *Event) ResolveComputed(ctx Context) {
	if !e.path.HasComputed() {
		return
	}
	c := e.path.Calculator()
	current := ctx.Current(e.attribute)
	e.path = e.path.ReplaceComputed(func(v calc.Value) calc.Value {
		return calc.Resolve(c, v, current, ctx.Rand())
	})
}

func (e *Event) StartCycle(frame Frame) bool {
	if e.hasInitialState && e.state != Finished {
		return e.applyValue(frame, 0)
	}
	return false
}

// SetTime does nothing once the event has finished, including when it was
// finished early.
func (e *Event) SetTime(now float64, frame Frame) bool {
	if e.state == Finished {
		return false
	}
	return e.setTime(now, frame, e.update, e.Finish)
}

// update writes the frame while animating and once more when leaving the
// animating state, so sleeping and finished events hold their last value.
func (e *Event) update(elapsed float64, frame Frame) bool {
	old := e.state
	state, delta := e.progress(elapsed - e.delay)
	updated := false
	if state == Animating || old == Animating || (old == Delayed && state != Delayed) {
		updated = e.applyValue(frame, delta)
	}
	e.state = state
	return updated
}

// ValueAt has no answer until computed values in the path have been
// resolved by Start or ResolveComputed.
func (e *Event) ValueAt(time float64) (calc.Value, bool) {
	if e.path.HasComputed() || (time < e.delay && !e.hasInitialState) {
		return nil, false
	}
	delta := 0.0
	if time >= e.delay {
		_, delta = e.progress(time - e.delay)
	}
	value := e.computeValue(delta)
	return value, value != nil
}

// Nopeat lets the current iteration complete and cancels the rest.
func (e *Event) Nopeat() {
	cycle := e.duration + e.sleep
	if cycle <= 0 {
		return
	}
	repeat := math.Ceil((e.elapsed - e.delay) / cycle)
	e.repeat = math.Max(0, math.Min(repeat, e.repeat))
}

func (e *Event) Finish(frame Frame) bool {
	updated := e.applyValue(frame, 1)
	e.state = Finished
	return updated
}

func (e *Event) TotalTime() float64 {
	if math.IsInf(e.repeat, 1) {
		return e.stopTime
	}
	total := e.delay + e.repeat*e.duration + math.Max(0, e.repeat-1)*e.sleep
	return math.Min(e.stopTime, total)
}

func (e *Event) TimeRemaining() float64 {
	return timeRemaining(e)
}

func (e *Event) Clone() Attrimator {
	c := new(Event)
	*c = *e
	c.base = e.cloneBase()
	c.state = Delayed
	return c
}

func (e *Event) HasComputed() bool {
	return e.path.HasComputed()
}

func (e *Event) IsInfinite() bool {
	return math.IsInf(e.repeat, 1) && math.IsInf(e.stopTime, 1)
}

func (e *Event) IsFinished() bool {
	return e.state == Finished
}
