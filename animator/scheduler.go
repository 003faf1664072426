package animator

import (
	"context"
	"time"
)

// Scheduler runs a set of animators frame by frame. Every active animator is
// taken through each phase with the same time before the next phase starts.
type Scheduler struct {
	// Now returns the current time in milliseconds.
	Now func() float64

	active []*Animator
}

// NewScheduler creates an instance of a Scheduler timing frames from when
// it was created.
func NewScheduler() *Scheduler {
	s := new(Scheduler)
	epoch := time.Now()
	s.Now = func() float64 {
		return float64(time.Since(epoch)) / float64(time.Millisecond)
	}
	return s
}

// Add attaches a to the scheduler and activates it. Animators are
// deactivated once they finish; playing anything on them reactivates them.
func (s *Scheduler) Add(a *Animator) {
	a.scheduler = s
	s.activate(a)
}

func (s *Scheduler) activate(a *Animator) {
	if a.active {
		return
	}
	a.active = true
	s.active = append(s.active, a)
}

// Tick runs one frame at now, then deactivates the animators which have
// finished.
func (s *Scheduler) Tick(now float64) {
	animators := s.active
	for _, a := range animators {
		a.Preupdate(now)
	}
	for _, a := range animators {
		a.Update(now)
	}
	for _, a := range animators {
		a.Apply()
	}

	var done []*Animator
	running := make([]*Animator, 0, len(s.active))
	for _, a := range s.active {
		if a.Finished() && len(a.added) == 0 {
			done = append(done, a)
		} else {
			running = append(running, a)
		}
	}
	s.active = running
	for _, a := range done {
		a.Deactivate()
	}
}

// Len returns the number of active animators.
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Running reports whether any animator is active.
func (s *Scheduler) Running() bool {
	return len(s.active) > 0
}

// Run ticks the scheduler every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick(s.Now())
		}
	}
}
