package animator

import (
	"github.com/matt-g-everett/anim8/calc"
)

// Attribute describes one animatable attribute of a subject.
type Attribute struct {
	Name       string
	Calculator calc.Calculator
	Default    calc.Value
}

// NewAttribute creates an instance of an Attribute. A nil calculator is the
// default calculator and a nil default value is its zero value.
func NewAttribute(name string, c calc.Calculator, def calc.Value) *Attribute {
	if c == nil {
		c = calc.Default
	}
	if def == nil {
		def = c.Create()
	}
	return &Attribute{Name: name, Calculator: c, Default: def}
}

// Parse interprets raw input for this attribute, falling back to the default
// value.
func (a *Attribute) Parse(raw interface{}) calc.Value {
	return a.Calculator.Parse(raw, a.Default)
}

func (a *Attribute) CloneDefault() calc.Value {
	return a.Calculator.Clone(a.Default)
}

// A Factory describes the attributes of a kind of subject. It returns nil
// for attributes it does not know.
type Factory interface {
	Attribute(name string) *Attribute
}

// A Subject is the thing being animated. Values are only written to it when
// an animator applies its frame.
type Subject interface {
	Get(attr string) (calc.Value, bool)
	Set(attr string, value calc.Value)
}

// Attributes is a Factory backed by a map.
type Attributes map[string]*Attribute

func (as Attributes) Attribute(name string) *Attribute {
	return as[name]
}

// Values is a Subject backed by a map.
type Values map[string]calc.Value

func (v Values) Get(attr string) (calc.Value, bool) {
	value, ok := v[attr]
	return value, ok
}

func (v Values) Set(attr string, value calc.Value) {
	v[attr] = value
}
