package stream

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/anim8/animator"
)

type controllerFixture struct {
	strip      *Strip
	animator   *animator.Animator
	scheduler  *animator.Scheduler
	controller *Controller
	now        float64
}

func newControllerFixture(t *testing.T, animations []*Animation) *controllerFixture {
	t.Helper()
	f := new(controllerFixture)
	f.strip = NewStrip(60, DefaultGradient())
	f.animator = animator.New(f.strip, f.strip)
	f.scheduler = animator.NewScheduler()
	f.scheduler.Add(f.animator)
	f.controller = NewController(f.strip, f.animator, animator.Transition{Time: 100}, animations,
		func() float64 { return f.now })
	if err := f.controller.Start(); err != nil {
		t.Fatal(err)
	}
	return f
}

// run ticks the scheduler every 10ms until end.
func (f *controllerFixture) run(end float64) {
	for ; f.now <= end; f.now += 10 {
		f.scheduler.Tick(f.now)
	}
}

func (f *controllerFixture) value(attr string) interface{} {
	v, _ := f.strip.Get(attr)
	return v
}

func testAnimations(t *testing.T) []*Animation {
	t.Helper()
	c, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	return c.Animation.Animations
}

func TestControllerCycles(t *testing.T) {
	f := newControllerFixture(t, testAnimations(t))
	diff(t, "sweep", f.controller.Current().Name)

	f.run(1000)
	diff(t, 29.5, f.value(AttrHead), approx)

	if err := f.controller.Next(); err != nil {
		t.Fatal(err)
	}
	diff(t, "bounce", f.controller.Current().Name)
	f.run(5000)

	width := f.value(AttrWidth).(float64)
	if math.Abs(width-20) > 0.01 {
		t.Errorf("got width %g, want the spring to settle at 20", width)
	}
	color := f.value(AttrColor).(colorful.Color)
	red, green := colorful.Color{R: 1}, colorful.Color{G: 1}
	if color.DistanceRgb(red) > 1e-6 && color.DistanceRgb(green) > 1e-6 {
		t.Errorf("got color %v, want one from the palette", color)
	}
	if f.animator.Attrimators().Has(AttrHead) {
		t.Error("head is still being animated after leaving the sweep")
	}

	if err := f.controller.Next(); err != nil {
		t.Fatal(err)
	}
	diff(t, "sweep", f.controller.Current().Name)
}

func TestControllerPaletteTransitionCurves(t *testing.T) {
	f := newControllerFixture(t, testAnimations(t))
	f.run(500)
	sweep := f.animator.Attrimators().Get(AttrColor)

	if err := f.controller.Next(); err != nil {
		t.Fatal(err)
	}
	head := f.animator.Attrimators().Get(AttrColor)
	if head == sweep {
		t.Fatal("palette colour was queued instead of transitioned into")
	}
	if head.Next() == nil || head.Next().HasComputed() {
		t.Error("transition does not lead into the resolved palette tween")
	}
	if !math.IsInf(sweep.TotalTime(), 1) {
		t.Error("running colour was stopped for a queue")
	}
}

func TestControllerPlayNamed(t *testing.T) {
	f := newControllerFixture(t, testAnimations(t))
	if err := f.controller.PlayNamed("bounce"); err != nil {
		t.Fatal(err)
	}
	diff(t, "bounce", f.controller.Current().Name)
	if err := f.controller.PlayNamed("missing"); err == nil {
		t.Error("expected an error for an unknown animation")
	}
}

func TestControllerWithoutAnimations(t *testing.T) {
	f := newControllerFixture(t, nil)
	if f.controller.Current() != nil {
		t.Error("nothing should be playing")
	}
	if err := f.controller.Next(); err != nil {
		t.Error(err)
	}
}

func TestControllerHandle(t *testing.T) {
	f := newControllerFixture(t, testAnimations(t))
	f.run(100)

	if err := f.controller.Handle(ControlMessage{Type: ControlPause, Attributes: []string{AttrHead}}); err != nil {
		t.Fatal(err)
	}
	if !f.animator.Attrimators().Get(AttrHead).IsPaused() {
		t.Error("head was not paused")
	}
	if f.animator.Attrimators().Get(AttrColor).IsPaused() {
		t.Error("color was paused")
	}
	if err := f.controller.Handle(ControlMessage{Type: ControlResume}); err != nil {
		t.Fatal(err)
	}
	if f.animator.Attrimators().Get(AttrHead).IsPaused() {
		t.Error("head was not resumed")
	}

	if err := f.controller.Handle(ControlMessage{Type: ControlStop}); err != nil {
		t.Fatal(err)
	}
	if f.animator.HasAttrimators() {
		t.Error("stop left attrimators running")
	}

	err := f.controller.Handle(ControlMessage{Type: ControlSet, Values: map[string]interface{}{
		AttrBrightness: 0.25,
		AttrWidth:      "+5",
	}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.25, f.value(AttrBrightness))
	diff(t, 5.0, f.value(AttrWidth))

	if err := f.controller.Handle(ControlMessage{Type: ControlSet, Values: map[string]interface{}{"size": 1}}); err == nil {
		t.Error("expected an error for an unknown attribute")
	}
	if err := f.controller.Handle(ControlMessage{Type: "explode"}); err == nil {
		t.Error("expected an error for an unknown message")
	}
	if err := f.controller.Handle(ControlMessage{Type: ControlPlay, Animation: "bounce"}); err != nil {
		t.Error(err)
	}
}

func TestControllerQueueNamed(t *testing.T) {
	f := newControllerFixture(t, testAnimations(t))
	f.run(500)

	if err := f.controller.Handle(ControlMessage{Type: ControlQueue, Animation: "bounce"}); err != nil {
		t.Fatal(err)
	}

	f.run(1900)
	diff(t, "sweep", f.controller.Current().Name)
	f.run(2100)
	diff(t, "bounce", f.controller.Current().Name)
	if f.animator.Attrimators().Get(AttrWidth) == nil {
		t.Error("bounce did not play")
	}

	if err := f.controller.QueueNamed("missing"); err == nil {
		t.Error("expected an error for an unknown animation")
	}
}

func TestControllerQueueWhenIdle(t *testing.T) {
	f := newControllerFixture(t, testAnimations(t))
	f.run(100)
	f.animator.Stop()
	if err := f.controller.QueueNamed("bounce"); err != nil {
		t.Fatal(err)
	}
	diff(t, "bounce", f.controller.Current().Name)
}
