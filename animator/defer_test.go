package animator

import (
	"testing"

	"github.com/matt-g-everett/anim8/calc"
)

func TestDeferFinished(t *testing.T) {
	subject := Values{"x": 0.0}
	a, s := newAnimator(subject)
	a.Play(mapOf(linear("x", 0, 10, Options{Duration: 100})), false)

	calls := 0
	d := a.Defer(DeferFinished).
		Play(mapOf(linear("x", 10, 20, Options{Duration: 100})), false).
		Do(func(*Animator) { calls++ })
	run(s, 0, 90)
	if d.Done() {
		t.Fatal("deferred calls ran before the animator finished")
	}
	run(s, 100, 300)
	diff(t, 20.0, subject["x"])
	if !d.Done() || calls != 1 {
		t.Errorf("got %d deferred calls, want 1", calls)
	}
	if s.Running() {
		t.Error("animator still running after the deferred play")
	}
}

func TestDeferCycles(t *testing.T) {
	subject := Values{"x": 0.0}
	a, s := newAnimator(subject)
	a.Play(mapOf(linear("x", 0, 10, Options{Duration: 100})), false)

	var order []string
	a.Defer(DeferCycleStart).Do(func(*Animator) { order = append(order, "start") })
	a.Defer(DeferCycleEnd).Set(map[string]calc.Value{"x": 50.0}).Do(func(*Animator) { order = append(order, "end") })
	a.Defer(DeferDeactivate).Do(func(*Animator) { order = append(order, "deactivate") })
	run(s, 0, 200)

	diff(t, []string{"start", "end", "deactivate"}, order)
	diff(t, 50.0, subject["x"])
}

func TestDeferRunsOnce(t *testing.T) {
	subject := Values{"x": 0.0}
	a, s := newAnimator(subject)
	calls := 0
	a.Defer(DeferDeactivate).Do(func(*Animator) { calls++ })

	for i := 0; i < 2; i++ {
		a.Tween("x", 0, 1, opts(50))
		start := float64(i) * 100
		run(s, start, start+90)
	}
	diff(t, 1, calls)
}
