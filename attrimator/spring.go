package attrimator

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/matt-g-everett/anim8/calc"
)

const (
	// MaxDT is the largest step in seconds a spring or physics attrimator
	// takes, however long the frame was.
	MaxDT = 0.1
	// Epsilon is how close values must be to count as equal or at rest.
	Epsilon = 0.0001
)

// A Model moves a spring's position and velocity forward by dt seconds.
type Model interface {
	Name() string
	Step(c calc.Calculator, position, velocity, rest calc.Value, dt float64) (calc.Value, calc.Value)
}

// Linear pulls the position towards rest with a force proportional to the
// displacement in each component. Damping and Stiffness are values of the
// spring's calculator type; nil is zero.
//
// The force is stiffness·(rest−position), so a positive stiffness restores
// and an undamped spring oscillates with constant amplitude. Written as
// stiffness·(position−rest), the same step would need a negative stiffness
// and with a positive one the displacement grows without bound.
type Linear struct {
	Damping   calc.Value
	Stiffness calc.Value
}

func (m Linear) Name() string {
	return "linear"
}

func (m Linear) Step(c calc.Calculator, position, velocity, rest calc.Value, dt float64) (calc.Value, calc.Value) {
	force := c.Sub(c.Clone(rest), position)
	force = c.Mul(force, orZero(c, m.Stiffness))
	force = c.Sub(force, c.Mul(c.Clone(orZero(c, m.Damping)), velocity))
	velocity = c.Adds(velocity, force, dt)
	return c.Adds(position, velocity, dt), velocity
}

// Distance pulls the position towards a point Distance away from rest along
// the line between them. As with Linear the force points from position
// towards rest, so a positive Stiffness restores.
type Distance struct {
	Distance  float64
	Damping   float64
	Stiffness float64
}

func (m Distance) Name() string {
	return "distance"
}

func (m Distance) Step(c calc.Calculator, position, velocity, rest calc.Value, dt float64) (calc.Value, calc.Value) {
	d := c.Distance(position, rest)
	force := c.Create()
	if d != 0 {
		force = c.Sub(c.Clone(rest), position)
		force = c.Scale(force, (d-m.Distance)*m.Stiffness/d)
	}
	force = c.Adds(force, velocity, -m.Damping)
	velocity = c.Adds(velocity, force, dt)
	return c.Adds(position, velocity, dt), velocity
}

// Harmonic is a damped harmonic oscillator solved analytically per
// component, which stays stable for any step size. Frequency is the angular
// frequency and Damping the damping ratio, where 1 is critically damped.
type Harmonic struct {
	Frequency float64
	Damping   float64
}

func (m Harmonic) Name() string {
	return "harmonic"
}

func (m Harmonic) Step(c calc.Calculator, position, velocity, rest calc.Value, dt float64) (calc.Value, calc.Value) {
	spring := harmonica.NewSpring(dt, m.Frequency, m.Damping)
	pos, vel, target := c.Components(position), c.Components(velocity), c.Components(rest)
	for i := range pos {
		pos[i], vel[i] = spring.Update(pos[i], vel[i], target[i])
	}
	return c.FromComponents(pos), c.FromComponents(vel)
}

func orZero(c calc.Calculator, v calc.Value) calc.Value {
	if v == nil {
		return c.Create()
	}
	return calc.ResolveLive(v)
}

// LookupModel returns a model by name with its zero configuration.
func LookupModel(name string) (Model, error) {
	switch name {
	case "linear":
		return Linear{}, nil
	case "distance":
		return Distance{}, nil
	case "harmonic":
		return Harmonic{}, nil
	}
	return nil, &calc.UnknownKindError{Kind: "spring", Name: name}
}

// SpringOptions configures a Spring. The values are raw input parsed by the
// spring's calculator when it starts, so they may be computed values. A nil
// Position or Rest means the attribute's current value.
type SpringOptions struct {
	Calculator   calc.Calculator
	Model        Model
	Position     interface{}
	Rest         interface{}
	Velocity     interface{}
	Gravity      interface{}
	FinishOnRest bool
}

// Spring moves an attribute towards a rest value which may be live, such as
// another animator's attribute. It runs until stopped unless FinishOnRest is
// set, in which case it finishes once it comes to rest.
type Spring struct {
	base
	options    SpringOptions
	calculator calc.Calculator
	position   calc.Value
	rest       calc.Value
	velocity   calc.Value
	gravity    calc.Value
	finished   bool
}

// NewSpring creates an instance of a Spring.
func NewSpring(attribute string, o SpringOptions) (*Spring, error) {
	if o.Model == nil {
		return nil, fmt.Errorf("spring %s: no model", attribute)
	}
	s := new(Spring)
	s.reset(attribute)
	s.options = o
	return s, nil
}

// Model returns the force model of the spring.
func (s *Spring) Model() Model {
	return s.options.Model
}

// Position returns the position of the spring.
func (s *Spring) Position() calc.Value {
	return s.position
}

// Velocity returns the velocity of the spring.
func (s *Spring) Velocity() calc.Value {
	return s.velocity
}

func (s *Spring) Start(now float64, ctx Context) {
	s.start(now)
	s.finished = false
	attr := s.attribute
	c := calculatorFor(ctx, s.options.Calculator, attr)
	s.calculator = c

	position, rest := s.options.Position, s.options.Rest
	if position == nil {
		position = calc.Current{}
	}
	if rest == nil {
		rest = calc.Current{}
	}
	s.position = calc.ResolveLive(resolve(ctx, c, attr, position, ctx.Default(attr)))
	s.rest = resolve(ctx, c, attr, rest, ctx.Default(attr))
	s.velocity = calc.ResolveLive(resolve(ctx, c, attr, s.options.Velocity, c.Create()))
	s.gravity = resolve(ctx, c, attr, s.options.Gravity, c.Create())
}

func (s *Spring) SetTime(now float64, frame Frame) bool {
	return s.setTime(now, frame, s.update, s.Finish)
}

func (s *Spring) update(elapsed float64, frame Frame) bool {
	c := s.calculator
	dt := math.Min((elapsed-s.elapsed)*0.001, MaxDT)
	if dt <= 0 {
		return false
	}
	starting := c.Clone(s.position)

	position, velocity := s.options.Model.Step(c, s.position, s.velocity, calc.ResolveLive(s.rest), dt)
	velocity = c.Adds(velocity, calc.ResolveLive(s.gravity), dt)
	position = c.Adds(position, calc.ResolveLive(s.gravity), dt*dt)
	s.position, s.velocity = position, velocity

	updated := !c.IsEqual(starting, position, Epsilon)
	if updated {
		frame[s.attribute] = position
	} else if s.options.FinishOnRest && c.IsZero(velocity, Epsilon) {
		s.finished = true
	}
	return updated
}

func (s *Spring) Finish(frame Frame) bool {
	s.finished = true
	return true
}

func (s *Spring) TimeRemaining() float64 {
	return timeRemaining(s)
}

func (s *Spring) Clone() Attrimator {
	c := new(Spring)
	c.base = s.cloneBase()
	c.options = s.options
	return c
}

func (s *Spring) HasComputed() bool {
	o := s.options
	if o.Position == nil || o.Rest == nil {
		return true
	}
	for _, raw := range []interface{}{o.Position, o.Rest, o.Velocity, o.Gravity} {
		if calc.IsComputed(raw) {
			return true
		}
	}
	return false
}

func (s *Spring) IsFinished() bool {
	return s.finished
}
