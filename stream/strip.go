package stream

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/anim8/animator"
	"github.com/matt-g-everett/anim8/calc"
)

// The attributes of a Strip.
const (
	// AttrColor is the colour of the lit section.
	AttrColor = "color"
	// AttrBackground is the colour of everything else.
	AttrBackground = "background"
	// AttrHead is the pixel the lit section is centred on.
	AttrHead = "head"
	// AttrWidth is the width of the lit section in pixels. Zero or less
	// lights the whole strip.
	AttrWidth = "width"
	// AttrGradient mixes the gradient into the lit colour, from 0 to 1.
	AttrGradient = "gradient"
	// AttrOffset shifts the gradient along the strip, 1 being a full turn.
	AttrOffset = "offset"
	// AttrBrightness scales every pixel, from 0 to 1.
	AttrBrightness = "brightness"
)

// A Strip is an LED strip as an animation subject. It knows its own
// attributes and draws a Frame from their values.
type Strip struct {
	numPixels  int
	gradient   GradientTable
	chroma     float64
	luminance  float64
	attributes animator.Attributes
	values     animator.Values
}

// NewStrip creates an instance of a Strip.
func NewStrip(numPixels int, gradient GradientTable) *Strip {
	s := new(Strip)
	s.numPixels = numPixels
	s.gradient = gradient
	s.chroma = 1.0
	s.luminance = 0.05

	backColour, _ := colorful.Hex("#000005")
	foreColour, _ := colorful.Hex("#808080")
	s.attributes = animator.Attributes{
		AttrColor:      animator.NewAttribute(AttrColor, calc.RGB, foreColour),
		AttrBackground: animator.NewAttribute(AttrBackground, calc.RGB, backColour),
		AttrHead:       animator.NewAttribute(AttrHead, calc.Number, 0.0),
		AttrWidth:      animator.NewAttribute(AttrWidth, calc.Number, 0.0),
		AttrGradient:   animator.NewAttribute(AttrGradient, calc.Number, 0.0),
		AttrOffset:     animator.NewAttribute(AttrOffset, calc.Number, 0.0),
		AttrBrightness: animator.NewAttribute(AttrBrightness, calc.Number, 1.0),
	}
	s.values = make(animator.Values)
	for name, at := range s.attributes {
		s.values[name] = at.CloneDefault()
	}
	return s
}

// SetGradientColor sets the chroma and luminance the gradient is drawn with.
func (s *Strip) SetGradientColor(chroma, luminance float64) {
	s.chroma = chroma
	s.luminance = luminance
}

func (s *Strip) NumPixels() int {
	return s.numPixels
}

// Attribute returns the description of a strip attribute, or nil.
func (s *Strip) Attribute(name string) *animator.Attribute {
	return s.attributes.Attribute(name)
}

func (s *Strip) Get(attr string) (calc.Value, bool) {
	return s.values.Get(attr)
}

func (s *Strip) Set(attr string, value calc.Value) {
	s.values.Set(attr, value)
}

func (s *Strip) color(attr string) colorful.Color {
	if c, ok := s.values[attr].(colorful.Color); ok {
		return c
	}
	return s.attributes[attr].Default.(colorful.Color)
}

func (s *Strip) number(attr string) float64 {
	if n, ok := s.values[attr].(float64); ok {
		return n
	}
	return s.attributes[attr].Default.(float64)
}

// Render draws the strip as it currently is.
func (s *Strip) Render() *Frame {
	n := s.numPixels
	background := s.color(AttrBackground)
	head := s.number(AttrHead)
	width := s.number(AttrWidth)
	brightness := clamp01(s.number(AttrBrightness))
	colours := s.colours()

	f := NewFrame(n)
	for i := 0; i < n; i++ {
		c := background
		switch coverage := s.coverage(float64(i), head, width); {
		case coverage >= 1:
			c = colours.pixels[i]
		case coverage > 0:
			c = background.BlendHcl(colours.pixels[i], coverage)
		}
		f.pixels[i] = colorful.Color{R: c.R * brightness, G: c.G * brightness, B: c.B * brightness}
	}
	return f
}

// colours returns the lit colour of each pixel, with the gradient mixed in.
func (s *Strip) colours() *Frame {
	n := s.numPixels
	solid := NewFrame(n)
	solid.Fill(s.color(AttrColor))

	mix := clamp01(s.number(AttrGradient))
	if mix == 0 || n == 0 {
		return solid
	}
	offset := s.number(AttrOffset)
	gradient := NewFrame(n)
	for i := 0; i < n; i++ {
		t := wrap(float64(i)/float64(n) - offset)
		gradient.pixels[i] = s.gradient.GetColor(t, s.chroma, s.luminance)
	}
	return solid.InterpolateFrame(gradient, mix)
}

// coverage is how lit pixel i is by a section of width centred on head. The
// section wraps around the ends of the strip and fades out towards its edges.
func (s *Strip) coverage(i, head, width float64) float64 {
	if width <= 0 {
		return 1
	}
	n := float64(s.numPixels)
	d := math.Abs(i - head)
	if n > 0 {
		d = math.Mod(d, n)
		d = math.Min(d, n-d)
	}
	half := width / 2
	if d >= half {
		return 0
	}
	return ease.InOutQuad(1 - d/half)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// wrap returns x modulo 1 in [0, 1).
func wrap(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}
