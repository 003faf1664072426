package animator

import (
	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
)

// DeferEvent is the animator event deferred calls wait for.
type DeferEvent int

const (
	// DeferFinished waits until the animator next finishes.
	DeferFinished DeferEvent = iota
	// DeferCycleStart waits until the most recently added cycle starts.
	DeferCycleStart
	// DeferCycleEnd waits until the most recently added cycle ends.
	DeferCycleEnd
	// DeferDeactivate waits until the scheduler next stops running the
	// animator.
	DeferDeactivate
)

// Deferred records calls to make on an animator when an event occurs. The
// calls are made once, in the order they were recorded.
type Deferred struct {
	calls []func(a *Animator)
	done  bool
}

// Defer returns a Deferred whose calls run when event next occurs.
func (a *Animator) Defer(event DeferEvent) *Deferred {
	d := new(Deferred)
	switch event {
	case DeferFinished:
		a.OnFinished(d.run)
	case DeferCycleStart:
		a.OnCycleStart(func(int) { d.run(a) })
	case DeferCycleEnd:
		a.OnCycleEnd(func(int) { d.run(a) })
	case DeferDeactivate:
		a.OnDeactivate(d.run)
	}
	return d
}

func (d *Deferred) run(a *Animator) {
	if d.done {
		return
	}
	d.done = true
	for _, call := range d.calls {
		call(a)
	}
}

// Done reports whether the deferred calls have been made.
func (d *Deferred) Done() bool {
	return d.done
}

// Do defers fn.
func (d *Deferred) Do(fn func(a *Animator)) *Deferred {
	d.calls = append(d.calls, fn)
	return d
}

func (d *Deferred) Play(m *attrimator.Map, all bool) *Deferred {
	return d.Do(func(a *Animator) { a.Play(m, all) })
}

func (d *Deferred) Queue(m *attrimator.Map) *Deferred {
	return d.Do(func(a *Animator) { a.Queue(m) })
}

func (d *Deferred) Transition(t Transition, m *attrimator.Map, all bool) *Deferred {
	return d.Do(func(a *Animator) { a.Transition(t, m, all) })
}

func (d *Deferred) Add(at attrimator.Attrimator) *Deferred {
	return d.Do(func(a *Animator) { a.Add(at) })
}

func (d *Deferred) Stop(attrs ...string) *Deferred {
	return d.Do(func(a *Animator) { a.Stop(attrs...) })
}

func (d *Deferred) End(attrs ...string) *Deferred {
	return d.Do(func(a *Animator) { a.End(attrs...) })
}

func (d *Deferred) Finish(attrs ...string) *Deferred {
	return d.Do(func(a *Animator) { a.Finish(attrs...) })
}

func (d *Deferred) Nopeat(attrs ...string) *Deferred {
	return d.Do(func(a *Animator) { a.Nopeat(attrs...) })
}

func (d *Deferred) Set(values map[string]calc.Value) *Deferred {
	return d.Do(func(a *Animator) { a.Set(values) })
}

func (d *Deferred) Unset(attrs ...string) *Deferred {
	return d.Do(func(a *Animator) { a.Unset(attrs...) })
}
