package stream

import (
	"fmt"
	"math"
	"sort"

	"github.com/matt-g-everett/anim8/animator"
	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
	"github.com/matt-g-everett/anim8/path"
)

// An Animation describes what to play on each attribute of a strip. Every
// attribute follows its path with the animation's timing, except those with
// a spring.
type Animation struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Easing   string  `yaml:"easing"`
	Delay    float64 `yaml:"delay"`
	Sleep    float64 `yaml:"sleep"`
	// Repeat is the number of plays. Zero plays once and a negative count
	// repeats forever.
	Repeat     float64                     `yaml:"repeat"`
	Attributes map[string]*path.Definition `yaml:"attributes"`
	// Palette, when the animation has no color path, tweens the color to
	// a colour picked from it. RandomColor picks a random hue instead.
	Palette     []string                     `yaml:"palette"`
	RandomColor bool                         `yaml:"randomColor"`
	Springs     map[string]*SpringDefinition `yaml:"springs"`
}

// SpringDefinition describes a spring in configuration. Which constants are
// read depends on Model.
type SpringDefinition struct {
	Model        string      `yaml:"model"`
	Stiffness    float64     `yaml:"stiffness"`
	Damping      float64     `yaml:"damping"`
	Distance     float64     `yaml:"distance"`
	Frequency    float64     `yaml:"frequency"`
	Position     interface{} `yaml:"position"`
	Rest         interface{} `yaml:"rest"`
	Velocity     interface{} `yaml:"velocity"`
	Gravity      interface{} `yaml:"gravity"`
	FinishOnRest bool        `yaml:"finishOnRest"`
}

// Options returns the event timing of the animation.
func (a *Animation) Options() (attrimator.Options, error) {
	o := attrimator.DefaultOptions()
	if a.Duration > 0 {
		o.Duration = a.Duration
	}
	fn, err := easing.Lookup(a.Easing)
	if err != nil {
		return o, fmt.Errorf("animation %q: %w", a.Name, err)
	}
	o.Easing = fn
	o.Delay = a.Delay
	o.Sleep = a.Sleep
	switch {
	case a.Repeat < 0:
		o.Repeat = math.Inf(1)
	case a.Repeat > 0:
		o.Repeat = a.Repeat
	}
	return o, nil
}

// Build creates the attrimators for the animation. Paths without a
// calculator use the attribute's.
func (a *Animation) Build(factory animator.Factory) (*attrimator.Map, error) {
	o, err := a.Options()
	if err != nil {
		return nil, err
	}

	m := attrimator.NewMap()
	for _, attr := range sortedKeys(a.Attributes) {
		at := factory.Attribute(attr)
		if at == nil {
			return nil, fmt.Errorf("animation %q: unknown attribute %q", a.Name, attr)
		}
		def := *a.Attributes[attr]
		if def.Calculator == "" {
			def.Calculator = at.Calculator.Name()
		}
		if def.Name == "" {
			def.Name = attr
		}
		p, err := path.FromDefinition(&def)
		if err != nil {
			return nil, fmt.Errorf("animation %q attribute %q: %w", a.Name, attr, err)
		}
		m.Put(attr, attrimator.NewEvent(attr, p, o))
	}

	for _, attr := range sortedKeys(a.Springs) {
		at := factory.Attribute(attr)
		if at == nil {
			return nil, fmt.Errorf("animation %q: unknown attribute %q", a.Name, attr)
		}
		s, err := a.Springs[attr].Build(attr, at.Calculator)
		if err != nil {
			return nil, fmt.Errorf("animation %q attribute %q: %w", a.Name, attr, err)
		}
		m.Put(attr, s)
	}

	if _, err := NewPalette(a.Palette, nil); err != nil {
		return nil, fmt.Errorf("animation %q: %w", a.Name, err)
	}

	return m, nil
}

// UsesPalette reports whether the color is picked when the animation is
// played.
func (a *Animation) UsesPalette() bool {
	if _, ok := a.Attributes[AttrColor]; ok {
		return false
	}
	return len(a.Palette) > 0 || a.RandomColor
}

// Build creates the spring for attr.
func (d *SpringDefinition) Build(attr string, c calc.Calculator) (*attrimator.Spring, error) {
	model, err := attrimator.LookupModel(d.Model)
	if err != nil {
		return nil, err
	}
	switch model.(type) {
	case attrimator.Linear:
		model = attrimator.Linear{
			Stiffness: c.Parse(d.Stiffness, nil),
			Damping:   c.Parse(d.Damping, nil),
		}
	case attrimator.Distance:
		model = attrimator.Distance{Distance: d.Distance, Stiffness: d.Stiffness, Damping: d.Damping}
	case attrimator.Harmonic:
		model = attrimator.Harmonic{Frequency: d.Frequency, Damping: d.Damping}
	}
	return attrimator.NewSpring(attr, attrimator.SpringOptions{
		Calculator:   c,
		Model:        model,
		Position:     d.Position,
		Rest:         d.Rest,
		Velocity:     d.Velocity,
		Gravity:      d.Gravity,
		FinishOnRest: d.FinishOnRest,
	})
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
