package animator

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSchedulerRun(t *testing.T) {
	subject := Values{"x": 0.0}
	a, s := newAnimator(subject)
	a.TweenTo("x", 10, opts(20))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := s.Run(ctx, 5*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want deadline exceeded", err)
	}
	diff(t, 10.0, subject["x"])
	if s.Running() {
		t.Error("finished animator still active")
	}
}

func TestSchedulerTicksTogether(t *testing.T) {
	s := NewScheduler()
	var values []float64
	leader := Values{"x": 0.0}
	a := New(leader, nil)
	s.Add(a)
	b := New(Values{}, nil)
	s.Add(b)
	b.OnFinished(func(*Animator) {
		values = append(values, leader["x"].(float64))
	})

	a.Tween("x", 0, 100, opts(100))
	b.Tween("y", 0, 1, opts(50))
	run(s, 0, 100)
	diff(t, []float64{50}, values)
	diff(t, 0, s.Len())
}

func TestSchedulerReactivateOnDeactivate(t *testing.T) {
	s := NewScheduler()
	subject := Values{"x": 0.0}
	a := New(subject, nil)
	s.Add(a)

	loops := 0
	a.OnDeactivate(func(a *Animator) {
		if loops < 2 {
			loops++
			a.Tween("x", 0, 1, opts(10))
		}
	})
	a.Tween("x", 0, 1, opts(10))
	run(s, 0, 200)
	diff(t, 2, loops)
	if s.Running() {
		t.Error("animator should have stopped after two loops")
	}
}
