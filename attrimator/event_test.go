package attrimator

import (
	"math"
	"testing"

	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
	"github.com/matt-g-everett/anim8/path"
)

func TestEventSinglePlay(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 1000})
	e.Start(0, newTestContext(frame, calc.Number))

	if !e.SetTime(500, frame) {
		t.Fatal("expected an update at 500")
	}
	diff(t, 0.5, frame["x"])
	if e.State() != Animating {
		t.Errorf("got state %s at 500, want animating", e.State())
	}

	e.SetTime(1000, frame)
	diff(t, 1.0, frame["x"])

	e.SetTime(1500, frame)
	if !e.IsFinished() {
		t.Errorf("got state %s after the end, want finished", e.State())
	}
	diff(t, 1.0, frame["x"])
}

func TestEventRepeatWithSleep(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 100, Sleep: 50, Repeat: 3})
	e.Start(0, newTestContext(frame, calc.Number))

	diff(t, 400.0, e.TotalTime())

	tests := []struct {
		time  float64
		state EventState
		value float64
	}{
		{50, Animating, 0.5},
		{100, Animating, 1},
		{125, Sleeping, 1},
		{175, Animating, 0.25},
		{260, Sleeping, 1},
		{300, Animating, 0},
		{350, Animating, 0.5},
		{400, Finished, 1},
	}
	for _, tt := range tests {
		e.SetTime(tt.time, frame)
		if e.State() != tt.state {
			t.Errorf("at %g got state %s, want %s", tt.time, e.State(), tt.state)
		}
		diff(t, tt.value, frame["x"])

		value, ok := e.ValueAt(tt.time)
		if !ok {
			t.Errorf("no value at %g", tt.time)
		}
		diff(t, tt.value, value)
	}
}

func TestEventSleepingHoldsFrame(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 100, Sleep: 50, Repeat: 2})
	e.Start(0, newTestContext(frame, calc.Number))

	e.SetTime(90, frame)
	if !e.SetTime(110, frame) {
		t.Error("leaving the animating state should write the frame")
	}
	if e.SetTime(120, frame) {
		t.Error("sleeping should not write the frame again")
	}
}

func TestEventDelay(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 100, Delay: 100})
	e.Start(0, newTestContext(frame, calc.Number))

	if e.SetTime(50, frame) {
		t.Error("delayed event wrote the frame")
	}
	if e.State() != Delayed {
		t.Errorf("got state %s, want delayed", e.State())
	}
	e.SetTime(150, frame)
	diff(t, 0.5, frame["x"])

	v, ok := e.ValueAt(50)
	if !ok {
		t.Fatal("event with initial state has a value during its delay")
	}
	diff(t, 0.0, v)

	noInitial := linearEvent("x", Options{Duration: 100, Delay: 100, NoInitialState: true})
	if _, ok := noInitial.ValueAt(50); ok {
		t.Error("event without initial state has a value during its delay")
	}
	if noInitial.StartCycle(frame) {
		t.Error("event without initial state wrote its initial state")
	}
}

func TestEventStartCycle(t *testing.T) {
	frame := Frame{"x": 7.0}
	e := linearEvent("x", Options{Duration: 100, Delay: 500})
	e.Start(0, newTestContext(frame, calc.Number))
	if !e.StartCycle(frame) {
		t.Fatal("expected the initial state to be written")
	}
	diff(t, 0.0, frame["x"])
}

func TestEventStopIn(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 1000})
	e.Start(0, newTestContext(frame, calc.Number))
	e.SetTime(100, frame)
	e.StopIn(200)

	diff(t, 300.0, e.TotalTime())
	e.SetTime(301, frame)
	if !e.IsFinished() {
		t.Error("event did not finish after its stop time")
	}
	diff(t, 1.0, frame["x"])
}

func TestEventScale(t *testing.T) {
	e := linearEvent("x", Options{Duration: 100, Scale: 2, ScaleBase: 0.5})
	v, _ := e.ValueAt(100)
	diff(t, 1.5, v)
	v, _ = e.ValueAt(0)
	diff(t, -0.5, v)
}

func TestEventNopeat(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 100, Repeat: math.Inf(1)})
	e.Start(0, newTestContext(frame, calc.Number))
	if !e.IsInfinite() {
		t.Fatal("expected an infinite event")
	}
	e.SetTime(150, frame)
	e.Nopeat()
	if e.IsInfinite() {
		t.Error("event is still infinite")
	}
	diff(t, 2.0, e.Repeat())
	diff(t, 200.0, e.TotalTime())
}

func TestEventPauseResume(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 1000})
	e.Start(0, newTestContext(frame, calc.Number))
	e.SetTime(100, frame)
	e.Pause(100)
	if e.SetTime(500, frame) {
		t.Error("paused event wrote the frame")
	}
	e.Resume(600)
	e.SetTime(700, frame)
	diff(t, 0.2, frame["x"])
}

func TestEventOffset(t *testing.T) {
	frame := Frame{}
	e := linearEvent("x", Options{Duration: 1000, Offset: 250})
	e.Start(0, newTestContext(frame, calc.Number))
	diff(t, 250.0, e.Elapsed())
	e.SetTime(0, frame)
	diff(t, 0.25, frame["x"])
}

func TestEventResolvesComputed(t *testing.T) {
	frame := Frame{"x": 10.0}
	p := path.NewTween("x", calc.Number, calc.Current{}, calc.Relative{Amount: 5.0})
	e := NewEvent("x", p, Options{Duration: 100, Easing: easing.Linear, Repeat: 1, Scale: 1})
	if !e.HasComputed() {
		t.Fatal("expected computed values")
	}
	if _, ok := e.ValueAt(0); ok {
		t.Error("unresolved event has a value")
	}
	e.Start(0, newTestContext(frame, calc.Number))
	if e.HasComputed() {
		t.Error("computed values were not resolved at start")
	}
	e.SetTime(50, frame)
	diff(t, 12.5, frame["x"])
}

func TestEventResolveComputedAhead(t *testing.T) {
	frame := Frame{"x": 10.0}
	p := path.NewTween("x", calc.Number, calc.Current{}, calc.Relative{Amount: 5.0})
	e := NewEvent("x", p, Options{Duration: 100, Easing: easing.Linear, Repeat: 1, Scale: 1})
	e.ResolveComputed(newTestContext(frame, calc.Number))
	v, ok := e.ValueAt(0)
	if !ok {
		t.Fatal("resolved event has no value")
	}
	diff(t, 10.0, v)

	// Start keeps the values resolved ahead of it.
	frame["x"] = 100.0
	e.Start(0, newTestContext(frame, calc.Number))
	e.SetTime(100, frame)
	diff(t, 15.0, frame["x"])
}

func TestEventClone(t *testing.T) {
	a, b := linearEvent("x", Options{Duration: 100, Delay: 20}), linearEvent("x", Options{Duration: 200})
	a.Queue(b)
	c := a.Clone().(*Event)
	if c == a || c.Next() == nil || c.Next() == Attrimator(b) {
		t.Fatal("clone did not copy the queue")
	}
	diff(t, 20.0, c.Delay())
	diff(t, 200.0, c.Next().(*Event).Duration())
}

func TestEventTimeRemaining(t *testing.T) {
	frame := Frame{}
	a, b := linearEvent("x", Options{Duration: 100}), linearEvent("x", Options{Duration: 200})
	a.Queue(b)
	a.Start(0, newTestContext(frame, calc.Number))
	a.SetTime(40, frame)
	diff(t, 260.0, a.TimeRemaining())
}
