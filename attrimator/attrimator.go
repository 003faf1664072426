// Package attrimator implements the time driven value generators which
// animate a single attribute, and the map an animator keeps them in.
package attrimator

import (
	"math"
	"math/rand"

	"github.com/matt-g-everett/anim8/calc"
)

// Frame holds the working value of each animated attribute between updates.
type Frame map[string]calc.Value

// Context gives an attrimator access to the animator it is starting on, so
// computed values can be resolved against the attribute's present state.
type Context interface {
	// Current is the attribute's value in the animator's frame.
	Current(attr string) calc.Value
	Calculator(attr string) calc.Calculator
	Default(attr string) calc.Value
	Rand() *rand.Rand
}

// An Attrimator animates one attribute over time. Queued attrimators for the
// same attribute hang off Next and run once it finishes.
//
// Times are in milliseconds. Elapsed time is measured from Start and includes
// the delay.
type Attrimator interface {
	Attribute() string
	Next() Attrimator
	SetNext(next Attrimator)
	Queue(next Attrimator)
	Cycle() int
	SetCycle(cycle int)
	Delay() float64
	SetDelay(delay float64)
	Offset() float64
	SetOffset(offset float64)

	// Start resets timing at now and resolves computed values.
	Start(now float64, ctx Context)
	// StartCycle writes the initial state into frame when the attrimator's
	// cycle begins, reporting whether it wrote anything.
	StartCycle(frame Frame) bool
	// SetTime advances to now and reports whether frame was written.
	SetTime(now float64, frame Frame) bool
	// ValueAt returns the value at the given elapsed time without changing
	// any state. It reports false when there is no answer.
	ValueAt(time float64) (calc.Value, bool)

	Elapsed() float64
	StopIn(ms float64)
	Nopeat()
	TotalTime() float64
	TimeRemaining() float64
	Clone() Attrimator
	HasComputed() bool
	IsInfinite() bool
	IsFinished() bool
	Finish(frame Frame) bool
	Pause(now float64)
	Resume(now float64)
	IsPaused() bool
}

// A Resolver can resolve its computed values before it starts, so that its
// values are known ahead of time.
type Resolver interface {
	ResolveComputed(ctx Context)
}

// base holds the timing state every attrimator shares.
type base struct {
	attribute string
	next      Attrimator
	startTime float64
	pauseTime float64
	elapsed   float64
	stopTime  float64
	paused    bool
	cycle     int
	delay     float64
	offset    float64
}

func (b *base) reset(attribute string) {
	b.attribute = attribute
	b.stopTime = math.Inf(1)
}

// cloneBase returns an unstarted copy with the queue cloned as well.
func (b *base) cloneBase() base {
	c := base{
		attribute: b.attribute,
		stopTime:  math.Inf(1),
		delay:     b.delay,
		offset:    b.offset,
	}
	if b.next != nil {
		c.next = b.next.Clone()
	}
	return c
}

func (b *base) Attribute() string {
	return b.attribute
}

func (b *base) Next() Attrimator {
	return b.next
}

func (b *base) SetNext(next Attrimator) {
	b.next = next
}

func (b *base) Queue(next Attrimator) {
	if b.next != nil {
		b.next.Queue(next)
	} else {
		b.next = next
	}
}

func (b *base) Cycle() int {
	return b.cycle
}

func (b *base) SetCycle(cycle int) {
	b.cycle = cycle
}

func (b *base) Delay() float64 {
	return b.delay
}

func (b *base) SetDelay(delay float64) {
	b.delay = delay
}

func (b *base) Offset() float64 {
	return b.offset
}

func (b *base) SetOffset(offset float64) {
	b.offset = offset
}

func (b *base) start(now float64) {
	b.startTime = now - b.offset
	b.elapsed = b.offset
}

// setTime moves the clock to now, finishing once the stop time has passed
// and updating once the delay is over.
func (b *base) setTime(now float64, frame Frame, update func(elapsed float64, frame Frame) bool, finish func(frame Frame) bool) bool {
	if b.paused {
		return false
	}
	updated := false
	elapsed := now - b.startTime
	if elapsed > b.stopTime {
		updated = finish(frame)
	} else if elapsed >= b.delay {
		updated = update(elapsed, frame)
	}
	b.elapsed = elapsed
	return updated
}

func (b *base) Elapsed() float64 {
	return b.elapsed
}

func (b *base) StopIn(ms float64) {
	b.stopTime = b.elapsed + ms
}

func (b *base) Nopeat() {}

func (b *base) TotalTime() float64 {
	return b.stopTime
}

func (b *base) StartCycle(frame Frame) bool {
	return false
}

func (b *base) ValueAt(time float64) (calc.Value, bool) {
	return nil, false
}

func (b *base) HasComputed() bool {
	return false
}

func (b *base) IsInfinite() bool {
	return math.IsInf(b.stopTime, 1)
}

func (b *base) Pause(now float64) {
	if !b.paused {
		b.pauseTime = now
		b.paused = true
	}
}

func (b *base) Resume(now float64) {
	if b.paused {
		b.startTime += now - b.pauseTime
		b.paused = false
	}
}

func (b *base) IsPaused() bool {
	return b.paused
}

// timeRemaining is the time left on a and everything queued after it.
func timeRemaining(a Attrimator) float64 {
	remaining := a.TotalTime() - a.Elapsed()
	if next := a.Next(); next != nil {
		remaining += next.TimeRemaining()
	}
	return remaining
}

// resolve parses raw with c and replaces computed results using ctx.
func resolve(ctx Context, c calc.Calculator, attr string, raw interface{}, def calc.Value) calc.Value {
	v := c.Parse(raw, def)
	if calc.IsComputed(v) {
		v = calc.Resolve(c, v, ctx.Current(attr), ctx.Rand())
	}
	if v == nil {
		v = c.Create()
	}
	return v
}

// calculatorFor returns c, or the attribute's calculator when c is nil.
func calculatorFor(ctx Context, c calc.Calculator, attr string) calc.Calculator {
	if c != nil {
		return c
	}
	if c = ctx.Calculator(attr); c != nil {
		return c
	}
	return calc.Default
}
