package stream

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/matt-g-everett/anim8/animator"
	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/path"
)

// Controller that manages the animations played on a strip.
type Controller struct {
	strip      *Strip
	animator   *animator.Animator
	transition animator.Transition
	animations []*Animation
	palettes   map[*Animation]*Palette
	rnd        *rand.Rand
	current    int
	now        func() float64
}

// NewController creates an instance of a Controller. now gives the time
// pauses and resumes happen at, which must be the clock frames are run on.
func NewController(strip *Strip, a *animator.Animator, transition animator.Transition,
	animations []*Animation, now func() float64) *Controller {

	c := new(Controller)
	c.strip = strip
	c.animator = a
	c.transition = transition
	c.animations = animations
	c.palettes = make(map[*Animation]*Palette)
	c.rnd = a.Rand()
	c.current = -1
	c.now = now
	return c
}

// Current returns the animation playing, or nil before Start.
func (c *Controller) Current() *Animation {
	if c.current < 0 {
		return nil
	}
	return c.animations[c.current]
}

// Start plays the first animation without a transition.
func (c *Controller) Start() error {
	if len(c.animations) == 0 {
		return nil
	}
	m, err := c.build(c.animations[0])
	if err != nil {
		return err
	}
	c.animator.Play(m, true)
	c.current = 0
	log.Printf("Playing %s", c.animations[0].Name)
	return nil
}

// Next transitions to the following animation, wrapping around.
func (c *Controller) Next() error {
	if len(c.animations) < 2 {
		return nil
	}
	return c.transitionTo((c.current + 1) % len(c.animations))
}

// PlayNamed transitions to the animation called name.
func (c *Controller) PlayNamed(name string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("no animation called %q", name)
	}
	return c.transitionTo(i)
}

// QueueNamed plays the animation called name once the current one has
// finished the iteration it is on. Springs hold the queue until they come
// to rest.
func (c *Controller) QueueNamed(name string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("no animation called %q", name)
	}
	m, err := c.build(c.animations[i])
	if err != nil {
		return err
	}
	if !c.animator.HasAttrimators() {
		c.animator.Play(m, true)
		c.current = i
		return nil
	}
	c.animator.Nopeat()
	c.animator.Defer(animator.DeferFinished).Play(m, true).Do(func(*animator.Animator) {
		c.current = i
		log.Printf("Playing %s", c.animations[i].Name)
	})
	log.Printf("Queued %s", name)
	return nil
}

func (c *Controller) index(name string) int {
	for i, a := range c.animations {
		if a.Name == name {
			return i
		}
	}
	return -1
}

func (c *Controller) transitionTo(i int) error {
	m, err := c.build(c.animations[i])
	if err != nil {
		return err
	}
	c.animator.Transition(c.transition, m, true)
	c.current = i
	log.Printf("Transitioning to %s", c.animations[i].Name)
	return nil
}

// build creates the attrimators for anim, picking its colour when it has a
// palette.
func (c *Controller) build(anim *Animation) (*attrimator.Map, error) {
	m, err := anim.Build(c.strip)
	if err != nil || !anim.UsesPalette() {
		return m, err
	}

	p, ok := c.palettes[anim]
	if !ok {
		if p, err = NewPalette(anim.Palette, c.rnd); err != nil {
			return nil, err
		}
		c.palettes[anim] = p
	}
	o, err := anim.Options()
	if err != nil {
		return nil, err
	}
	// The colour change plays once even when the animation repeats.
	o.Repeat = 1
	o.Sleep = 0
	colour := path.NewTween(AttrColor, calc.RGB, calc.Current{}, p.Next())
	m.Put(AttrColor, attrimator.NewEvent(AttrColor, colour, o))
	return m, nil
}

// Handle applies a control message.
func (c *Controller) Handle(msg ControlMessage) error {
	switch msg.Type {
	case ControlNext:
		return c.Next()
	case ControlPlay:
		return c.PlayNamed(msg.Animation)
	case ControlQueue:
		return c.QueueNamed(msg.Animation)
	case ControlPause:
		c.animator.Pause(c.now(), msg.Attributes...)
	case ControlResume:
		c.animator.Resume(c.now(), msg.Attributes...)
	case ControlFinish:
		c.animator.Finish(msg.Attributes...)
	case ControlStop:
		c.animator.Stop(msg.Attributes...)
	case ControlSet:
		values, err := c.parseValues(msg.Values)
		if err != nil {
			return err
		}
		c.animator.Set(values)
	default:
		return fmt.Errorf("unknown control message %q", msg.Type)
	}
	return nil
}

// parseValues reads raw values for strip attributes. Relative and random
// values are resolved against the attribute's working value.
func (c *Controller) parseValues(raw map[string]interface{}) (map[string]calc.Value, error) {
	values := make(map[string]calc.Value, len(raw))
	for attr, r := range raw {
		at := c.strip.Attribute(attr)
		if at == nil {
			return nil, fmt.Errorf("unknown attribute %q", attr)
		}
		v := at.Parse(r)
		if calc.IsComputed(v) {
			v = calc.Resolve(at.Calculator, v, c.animator.Current(attr), c.animator.Rand())
		}
		values[attr] = v
	}
	return values, nil
}
