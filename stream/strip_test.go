package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/anim8/animator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
)

func TestStripDefaults(t *testing.T) {
	s := NewStrip(10, DefaultGradient())
	for _, attr := range []string{AttrColor, AttrBackground, AttrHead, AttrWidth, AttrGradient, AttrOffset, AttrBrightness} {
		at := s.Attribute(attr)
		if at == nil {
			t.Fatalf("missing attribute %s", attr)
		}
		v, ok := s.Get(attr)
		if !ok {
			t.Fatalf("no value for %s", attr)
		}
		diff(t, at.Default, v)
	}
	if s.Attribute("size") != nil {
		t.Error("unknown attribute was described")
	}
	if s.Attribute(AttrColor).Calculator != calc.RGB {
		t.Error("color is not an rgb attribute")
	}
}

func TestStripRenderFill(t *testing.T) {
	s := NewStrip(5, DefaultGradient())
	red := colorful.Color{R: 1}
	s.Set(AttrColor, red)

	f := s.Render()
	for i := 0; i < f.Len(); i++ {
		diff(t, red, f.Pixel(i))
	}

	s.Set(AttrBrightness, 0.5)
	diff(t, colorful.Color{R: 0.5}, s.Render().Pixel(2))

	s.Set(AttrBrightness, 2.0)
	diff(t, red, s.Render().Pixel(2))
}

func TestStripRenderSection(t *testing.T) {
	s := NewStrip(20, DefaultGradient())
	red, blue := colorful.Color{R: 1}, colorful.Color{B: 1}
	s.Set(AttrColor, red)
	s.Set(AttrBackground, blue)
	s.Set(AttrHead, 10.0)
	s.Set(AttrWidth, 4.0)

	f := s.Render()
	diff(t, red, f.Pixel(10))
	diff(t, blue, f.Pixel(12))
	diff(t, blue, f.Pixel(0))
	if p := f.Pixel(11); p == red || p == blue {
		t.Errorf("edge of the section is not blended: %v", p)
	}

	// The section wraps around the end of the strip.
	s.Set(AttrHead, 0.0)
	f = s.Render()
	diff(t, red, f.Pixel(0))
	if f.Pixel(19) == blue {
		t.Error("section did not wrap around")
	}
}

func TestStripRenderGradient(t *testing.T) {
	s := NewStrip(10, DefaultGradient())
	s.Set(AttrGradient, 1.0)
	f := s.Render()
	if f.Pixel(0) == f.Pixel(3) {
		t.Error("gradient did not vary along the strip")
	}

	s.Set(AttrOffset, 0.5)
	shifted := s.Render()
	diff(t, f.Pixel(5), shifted.Pixel(0))
	diff(t, f.Pixel(0), shifted.Pixel(5))
}

func TestStripGradientColor(t *testing.T) {
	s := NewStrip(10, DefaultGradient())
	s.Set(AttrGradient, 1.0)
	s.SetGradientColor(0.1, 0.2)
	dim := s.Render()

	s.SetGradientColor(0.1, 0.6)
	bright := s.Render()
	_, _, l1 := dim.Pixel(0).Hcl()
	_, _, l2 := bright.Pixel(0).Hcl()
	if l2 <= l1 {
		t.Errorf("luminance %g did not rise above %g", l2, l1)
	}
}

func TestStripAnimated(t *testing.T) {
	s := NewStrip(10, DefaultGradient())
	a := animator.New(s, s)
	sched := animator.NewScheduler()
	sched.Add(a)

	o := animator.Options{Duration: 100, Easing: easing.Linear, Repeat: 1, Scale: 1}
	a.TweenTo(AttrHead, 8, o)
	a.TweenTo(AttrColor, "#ff0000", o)
	for now := 0.0; now <= 50; now += 10 {
		sched.Tick(now)
	}
	head, _ := s.Get(AttrHead)
	diff(t, 4.0, head)

	for now := 60.0; now <= 200; now += 10 {
		sched.Tick(now)
	}
	color, _ := s.Get(AttrColor)
	diff(t, colorful.Color{R: 1}, color, approx)
}
