package attrimator

import (
	"errors"
	"math"
	"testing"

	"github.com/matt-g-everett/anim8/calc"
)

func newTestSpring(t *testing.T, c calc.Calculator, o SpringOptions) (*Spring, Frame) {
	t.Helper()
	o.Calculator = c
	s, err := NewSpring("x", o)
	if err != nil {
		t.Fatal(err)
	}
	frame := Frame{}
	s.Start(0, newTestContext(frame, c))
	return s, frame
}

func TestSpringUndampedAmplitude(t *testing.T) {
	s, frame := newTestSpring(t, calc.Number, SpringOptions{
		Model:    Linear{Damping: 0.0, Stiffness: 10.0},
		Position: 1.0,
		Rest:     0.0,
	})

	peak := 0.0
	for i := 1; i <= 1000; i++ {
		s.SetTime(float64(i)*16, frame)
		if i > 800 {
			peak = math.Max(peak, math.Abs(s.Position().(float64)))
		}
	}
	if math.Abs(peak-1) > 0.01 {
		t.Errorf("got amplitude %g after 1000 steps, want 1", peak)
	}
	if s.IsFinished() {
		t.Error("spring without finishOnRest finished")
	}
}

func TestSpringFinishOnRest(t *testing.T) {
	s, frame := newTestSpring(t, calc.Number, SpringOptions{
		Model:        Linear{Damping: 6.3, Stiffness: 10.0},
		Position:     1.0,
		Rest:         0.0,
		FinishOnRest: true,
	})
	for i := 1; i <= 3000 && !s.IsFinished(); i++ {
		s.SetTime(float64(i)*16, frame)
	}
	if !s.IsFinished() {
		t.Fatal("damped spring never came to rest")
	}
	if math.Abs(s.Position().(float64)) > 1e-3 {
		t.Errorf("got rest position %v, want 0", s.Position())
	}
}

func TestSpringDistance(t *testing.T) {
	s, frame := newTestSpring(t, calc.Point2d, SpringOptions{
		Model:    Distance{Distance: 5, Damping: 4, Stiffness: 20},
		Position: calc.Vec2{X: 10},
		Rest:     calc.Vec2{},
	})
	for i := 1; i <= 1000; i++ {
		s.SetTime(float64(i)*16, frame)
	}
	if d := calc.Point2d.Distance(s.Position(), calc.Vec2{}); math.Abs(d-5) > 0.01 {
		t.Errorf("got distance %g from rest, want 5", d)
	}
}

func TestSpringHarmonic(t *testing.T) {
	s, frame := newTestSpring(t, calc.Point2d, SpringOptions{
		Model:    Harmonic{Frequency: 6, Damping: 1},
		Position: calc.Vec2{X: 10, Y: 10},
		Rest:     calc.Vec2{},
	})
	for i := 1; i <= 200; i++ {
		s.SetTime(float64(i)*16, frame)
	}
	if !calc.Point2d.IsZero(frame["x"], 0.01) {
		t.Errorf("got %v, want the spring at rest", frame["x"])
	}
}

func TestSpringFollowsLiveRest(t *testing.T) {
	target := 10.0
	s, frame := newTestSpring(t, calc.Number, SpringOptions{
		Model:    Harmonic{Frequency: 8, Damping: 1},
		Position: 0.0,
		Rest:     calc.Live(func() calc.Value { return target }),
	})
	now := 0.0
	step := func(n int) {
		for i := 0; i < n; i++ {
			now += 16
			s.SetTime(now, frame)
		}
	}
	step(300)
	diff(t, 10.0, math.Round(frame["x"].(float64)*100)/100)
	target = -5
	step(300)
	diff(t, -5.0, math.Round(frame["x"].(float64)*100)/100)
}

func TestSpringCurrentPosition(t *testing.T) {
	frame := Frame{"x": 3.0}
	s, err := NewSpring("x", SpringOptions{Model: Linear{}, Calculator: calc.Number})
	if err != nil {
		t.Fatal(err)
	}
	if !s.HasComputed() {
		t.Error("spring without a position uses the current value")
	}
	s.Start(0, newTestContext(frame, calc.Number))
	diff(t, 3.0, s.Position())
}

func TestSpringMaxDT(t *testing.T) {
	s, frame := newTestSpring(t, calc.Number, SpringOptions{
		Model:    Linear{},
		Position: 0.0,
		Velocity: 1.0,
	})
	s.SetTime(5000, frame)
	diff(t, MaxDT, s.Position())
}

func TestSpringClone(t *testing.T) {
	s, frame := newTestSpring(t, calc.Number, SpringOptions{Model: Linear{}, Position: 0.0, Velocity: 1.0})
	s.SetTime(100, frame)
	c := s.Clone().(*Spring)
	c.Start(0, newTestContext(frame, calc.Number))
	diff(t, 0.0, c.Position())
}

func TestLookupModel(t *testing.T) {
	for _, name := range []string{"linear", "distance", "harmonic"} {
		m, err := LookupModel(name)
		if err != nil {
			t.Fatal(err)
		}
		if m.Name() != name {
			t.Errorf("got %s, want %s", m.Name(), name)
		}
	}
	_, err := LookupModel("rubber")
	var unknown *calc.UnknownKindError
	if !errors.As(err, &unknown) || unknown.Kind != "spring" {
		t.Errorf("got %v, want unknown spring error", err)
	}
	if _, err := NewSpring("x", SpringOptions{}); err == nil {
		t.Error("expected an error for a spring without a model")
	}
}
