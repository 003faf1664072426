package attrimator

import (
	"math"

	"github.com/matt-g-everett/anim8/calc"
)

// PhysicsOptions configures a Physics attrimator. The values are raw input
// parsed when it starts. Velocity and Acceleration may be live values.
type PhysicsOptions struct {
	Calculator   calc.Calculator
	Position     interface{}
	Velocity     interface{}
	Acceleration interface{}
	// Terminal caps the magnitude of the velocity. Zero means no cap.
	Terminal float64
	// StopTime ends the attrimator after this many milliseconds. Zero
	// means it runs until stopped.
	StopTime float64
}

// Physics moves an attribute with a velocity and an acceleration.
type Physics struct {
	base
	options      PhysicsOptions
	calculator   calc.Calculator
	position     calc.Value
	initial      calc.Value
	velocity     calc.Value
	acceleration calc.Value
	terminal     float64
	finished     bool
}

// NewPhysics creates an instance of a Physics attrimator.
func NewPhysics(attribute string, o PhysicsOptions) *Physics {
	p := new(Physics)
	p.reset(attribute)
	p.options = o
	p.terminal = o.Terminal
	if p.terminal <= 0 {
		p.terminal = math.Inf(1)
	}
	if o.StopTime > 0 {
		p.stopTime = o.StopTime
	}
	return p
}

// Position returns the position as of the last update.
func (p *Physics) Position() calc.Value {
	return p.position
}

func (p *Physics) Start(now float64, ctx Context) {
	p.start(now)
	p.finished = false
	attr := p.attribute
	c := calculatorFor(ctx, p.options.Calculator, attr)
	p.calculator = c

	position := p.options.Position
	if position == nil {
		position = calc.Current{}
	}
	p.position = calc.ResolveLive(resolve(ctx, c, attr, position, ctx.Default(attr)))
	p.initial = c.Clone(p.position)
	p.velocity = resolve(ctx, c, attr, p.options.Velocity, c.Create())
	p.acceleration = resolve(ctx, c, attr, p.options.Acceleration, c.Create())
}

func (p *Physics) SetTime(now float64, frame Frame) bool {
	return p.setTime(now, frame, p.update, p.Finish)
}

func (p *Physics) update(elapsed float64, frame Frame) bool {
	if value, ok := p.ValueAt(elapsed); ok {
		p.position = value
		frame[p.attribute] = value
		return true
	}

	c := p.calculator
	dt := math.Min((elapsed-p.elapsed)*0.001, MaxDT)
	velocity := c.Adds(c.Clone(calc.ResolveLive(p.velocity)), calc.ResolveLive(p.acceleration), dt)
	if !math.IsInf(p.terminal, 1) {
		velocity = c.Clamp(velocity, 0, p.terminal)
	}
	p.position = c.Adds(p.position, velocity, dt)
	if !calc.IsLive(p.velocity) {
		p.velocity = velocity
	}
	frame[p.attribute] = p.position
	return true
}

// ValueAt has an answer only when the motion has a closed form: the velocity
// and acceleration are constant and the velocity is not capped.
func (p *Physics) ValueAt(time float64) (calc.Value, bool) {
	if p.initial == nil || calc.IsLive(p.velocity) || calc.IsLive(p.acceleration) || !math.IsInf(p.terminal, 1) {
		return nil, false
	}
	t := (time - p.delay) * 0.001
	c := p.calculator
	value := c.Clone(p.initial)
	value = c.Adds(value, p.velocity, t)
	value = c.Adds(value, p.acceleration, 0.5*t*t)
	return value, true
}

func (p *Physics) Finish(frame Frame) bool {
	p.finished = true
	return true
}

func (p *Physics) TimeRemaining() float64 {
	return timeRemaining(p)
}

func (p *Physics) Clone() Attrimator {
	c := NewPhysics(p.attribute, p.options)
	stopTime := c.stopTime
	c.base = p.cloneBase()
	c.stopTime = stopTime
	return c
}

func (p *Physics) HasComputed() bool {
	o := p.options
	return o.Position == nil || calc.IsComputed(o.Position) || calc.IsComputed(o.Velocity) || calc.IsComputed(o.Acceleration)
}

func (p *Physics) IsFinished() bool {
	return p.finished
}
