package calc

import (
	"math/rand"
)

// Computed is a value resolved once, when the attrimator holding it starts,
// against the current state of the animated attribute.
type Computed interface {
	computed()
}

// Current resolves to the attribute's current value.
type Current struct{}

// Relative resolves to Amount added to the current value. When Mask is set the
// current value is multiplied by it first, so a zero mask component makes that
// component of Amount absolute.
type Relative struct {
	Amount Value
	Mask   Value
}

// RandomRange resolves to a random value between Min and Max. The bounds are
// raw inputs parsed by the attribute's calculator.
type RandomRange struct {
	Min interface{}
	Max interface{}
}

// RandomChoice resolves to one of Choices picked at random.
type RandomChoice struct {
	Choices []interface{}
}

// A Curve can be sampled at a progress between 0 and 1.
type Curve interface {
	Compute(out Value, delta float64) Value
}

// RandomPath resolves to a random point along a curve.
type RandomPath struct {
	Path Curve
}

func (Current) computed()      {}
func (Relative) computed()     {}
func (RandomRange) computed()  {}
func (RandomChoice) computed() {}
func (RandomPath) computed()   {}

// Live is a value read each time it is used, such as another animator's
// attribute. Live values are never replaced at start.
type Live func() Value

// IsComputed reports whether v must be resolved before use.
func IsComputed(v interface{}) bool {
	_, ok := v.(Computed)
	return ok
}

// IsLive reports whether v is read on every use.
func IsLive(v interface{}) bool {
	_, ok := v.(Live)
	return ok
}

// ResolveLive returns the current value of a Live value, or v itself.
func ResolveLive(v Value) Value {
	if live, ok := v.(Live); ok {
		return live()
	}
	return v
}

// Resolve replaces a Computed value with a literal. current is the attribute's
// present value. Values that are not Computed are returned as is.
func Resolve(c Calculator, v Value, current Value, rnd *rand.Rand) Value {
	switch x := v.(type) {
	case Current:
		return c.Clone(current)
	case Relative:
		out := c.Clone(current)
		if x.Mask != nil {
			out = c.Mul(out, x.Mask)
		}
		return c.Add(out, ResolveLive(x.Amount))
	case RandomRange:
		min := c.Parse(x.Min, c.Create())
		max := c.Parse(x.Max, c.Create())
		return c.Random(c.Create(), ResolveLive(min), ResolveLive(max), rnd)
	case RandomChoice:
		if len(x.Choices) == 0 {
			return c.Clone(current)
		}
		var i int
		if rnd == nil {
			i = rand.Intn(len(x.Choices))
		} else {
			i = rnd.Intn(len(x.Choices))
		}
		return Resolve(c, c.Parse(x.Choices[i], c.Create()), current, rnd)
	case RandomPath:
		return x.Path.Compute(c.Create(), random(rnd))
	}
	return v
}
