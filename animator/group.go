package animator

import (
	"math"

	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
)

// Animators is a group of animators controlled together. Every animator
// plays its own copy of the attrimators given to the group.
type Animators []*Animator

// Play plays a copy of m on every animator.
func (as Animators) Play(m *attrimator.Map, all bool) {
	for _, a := range as {
		a.Play(m.Clone(), all)
	}
}

// Queue queues a copy of m on every animator.
func (as Animators) Queue(m *attrimator.Map) {
	for _, a := range as {
		a.Queue(m.Clone())
	}
}

// Transition transitions every animator into a copy of m.
func (as Animators) Transition(t Transition, m *attrimator.Map, all bool) {
	for _, a := range as {
		a.Transition(t, m.Clone(), all)
	}
}

func (as Animators) Stop(attrs ...string) {
	for _, a := range as {
		a.Stop(attrs...)
	}
}

func (as Animators) End(attrs ...string) {
	for _, a := range as {
		a.End(attrs...)
	}
}

func (as Animators) Finish(attrs ...string) {
	for _, a := range as {
		a.Finish(attrs...)
	}
}

func (as Animators) Nopeat(attrs ...string) {
	for _, a := range as {
		a.Nopeat(attrs...)
	}
}

func (as Animators) Pause(now float64, attrs ...string) {
	for _, a := range as {
		a.Pause(now, attrs...)
	}
}

func (as Animators) Resume(now float64, attrs ...string) {
	for _, a := range as {
		a.Resume(now, attrs...)
	}
}

func (as Animators) Set(values map[string]calc.Value) {
	for _, a := range as {
		a.Set(values)
	}
}

func (as Animators) Unset(attrs ...string) {
	for _, a := range as {
		a.Unset(attrs...)
	}
}

// TimeRemaining is the longest time remaining on any animator.
func (as Animators) TimeRemaining() float64 {
	remaining := 0.0
	for _, a := range as {
		remaining = math.Max(remaining, a.TimeRemaining())
	}
	return remaining
}

// Finished reports whether every animator has finished.
func (as Animators) Finished() bool {
	for _, a := range as {
		if !a.Finished() {
			return false
		}
	}
	return true
}

// Sequence returns a sequence over the group which staggers the start of
// each animator by delay.
func (as Animators) Sequence(delay float64, fn easing.Func) *Sequence {
	return NewSequence(as, delay, fn)
}

// A Sequence plays the same attrimators across a group of animators, each
// starting a little after the one before. The stagger runs from nothing on
// the first animator to Delay times the number of gaps on the last, spaced
// by the easing.
type Sequence struct {
	animators Animators
	delay     float64
	easing    easing.Func
}

// NewSequence creates an instance of a Sequence. A nil easing spaces the
// animators evenly.
func NewSequence(animators Animators, delay float64, fn easing.Func) *Sequence {
	s := new(Sequence)
	s.animators = make(Animators, len(animators))
	copy(s.animators, animators)
	s.delay = delay
	s.easing = fn
	if s.easing == nil {
		s.easing = easing.Linear
	}
	return s
}

// Animators returns the animators in sequence order.
func (s *Sequence) Animators() Animators {
	return s.animators
}

// MaxDelay is the stagger of the last animator.
func (s *Sequence) MaxDelay() float64 {
	if len(s.animators) < 2 {
		return 0
	}
	return s.delay * float64(len(s.animators)-1)
}

// Stagger is the extra delay for the animator at index i.
func (s *Sequence) Stagger(i int) float64 {
	if len(s.animators) < 2 {
		return 0
	}
	delta := float64(i) / float64(len(s.animators)-1)
	return s.easing(delta) * s.MaxDelay()
}

// Reverse flips the order the animators start in.
func (s *Sequence) Reverse() *Sequence {
	for i, j := 0, len(s.animators)-1; i < j; i, j = i+1, j-1 {
		s.animators[i], s.animators[j] = s.animators[j], s.animators[i]
	}
	return s
}

// attrimators copies m for the animator at index i, delayed by extra on top
// of its stagger.
func (s *Sequence) attrimators(m *attrimator.Map, i int, extra float64) *attrimator.Map {
	c := m.Clone()
	offset := s.Stagger(i) + extra
	for _, at := range c.Values() {
		at.SetDelay(at.Delay() + offset)
	}
	return c
}

// Play plays m across the sequence.
func (s *Sequence) Play(m *attrimator.Map, all bool) {
	for i, a := range s.animators {
		a.Play(s.attrimators(m, i, 0), all)
	}
}

// Queue queues m across the sequence. The stagger is measured from when the
// animator with the most time remaining is done, so the sequence keeps its
// shape whatever each animator was doing.
func (s *Sequence) Queue(m *attrimator.Map) {
	remaining := make([]float64, len(s.animators))
	maxRemaining := 0.0
	for i, a := range s.animators {
		remaining[i] = a.TimeRemaining()
		maxRemaining = math.Max(maxRemaining, remaining[i])
	}
	for i, a := range s.animators {
		a.Queue(s.attrimators(m, i, maxRemaining-remaining[i]))
	}
}

// Transition transitions into m across the sequence.
func (s *Sequence) Transition(t Transition, m *attrimator.Map, all bool) {
	for i, a := range s.animators {
		a.Transition(t, s.attrimators(m, i, 0), all)
	}
}
