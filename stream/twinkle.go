package stream

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/anim8/animator"
	"github.com/matt-g-everett/anim8/attrimator"
	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
	"github.com/matt-g-everett/anim8/path"
)

const (
	levelAttr = "level"
	lutSize   = 64
)

// TwinkleConfig controls the particles a Twinkle draws.
type TwinkleConfig struct {
	Particles   int      `yaml:"particles"`
	Palette     []string `yaml:"palette"`
	MinDuration float64  `yaml:"minDuration"`
	MaxDuration float64  `yaml:"maxDuration"`
	MaxSleep    float64  `yaml:"maxSleep"`
	Easing      string   `yaml:"easing"`
	// A burst lights the particles one after another along the strip,
	// BurstDelay apart, with BurstEasing spacing the starts.
	BurstDuration float64 `yaml:"burstDuration"`
	BurstDelay    float64 `yaml:"burstDelay"`
	BurstEasing   string  `yaml:"burstEasing"`
}

type particle struct {
	pixel    int
	colour   colorful.Color
	level    animator.Values
	animator *animator.Animator
}

// A Twinkle is a layer of particles which brighten and fade out on random
// pixels. Every particle has its own animator, and moves to a new pixel and
// colour each time it finishes a twinkle.
type Twinkle struct {
	numPixels   int
	palette     []colorful.Color
	minDuration float64
	maxDuration float64
	maxSleep    float64
	pulse       easing.Func
	rnd         *rand.Rand
	particles   []*particle
	animators   animator.Animators

	burstDuration float64
	burstDelay    float64
	burstEasing   easing.Func
}

// NewTwinkle creates an instance of a Twinkle with its particles running on
// scheduler.
func NewTwinkle(config TwinkleConfig, numPixels int, scheduler *animator.Scheduler, rnd *rand.Rand) (*Twinkle, error) {
	t := new(Twinkle)
	t.numPixels = numPixels
	t.minDuration = config.MinDuration
	t.maxDuration = config.MaxDuration
	if t.maxDuration < t.minDuration {
		t.maxDuration = t.minDuration
	}
	t.maxSleep = config.MaxSleep
	t.rnd = rnd

	fn, err := easing.Lookup(config.Easing)
	if err != nil {
		return nil, fmt.Errorf("twinkle: %w", err)
	}
	t.pulse = easing.PulseLut(fn, lutSize)

	t.burstDuration = config.BurstDuration
	t.burstDelay = config.BurstDelay
	t.burstEasing = easing.Linear
	if config.BurstEasing != "" {
		if t.burstEasing, err = easing.Lookup(config.BurstEasing); err != nil {
			return nil, fmt.Errorf("twinkle burst: %w", err)
		}
	}

	for _, hex := range config.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("twinkle palette: %w", err)
		}
		t.palette = append(t.palette, c)
	}
	if len(t.palette) == 0 {
		c, _ := colorful.Hex("#404040")
		t.palette = []colorful.Color{c}
	}

	if numPixels <= 0 {
		return t, nil
	}
	for i := 0; i < config.Particles; i++ {
		p := new(particle)
		p.level = animator.Values{levelAttr: 0.0}
		p.animator = animator.New(p.level, nil)
		p.animator.OnFinished(func(*animator.Animator) {
			t.twinkle(p)
		})
		scheduler.Add(p.animator)
		t.particles = append(t.particles, p)
		t.animators = append(t.animators, p.animator)
		t.twinkle(p)
	}

	return t, nil
}

// twinkle moves p somewhere new and plays its next twinkle after a random
// sleep.
func (t *Twinkle) twinkle(p *particle) {
	p.pixel = t.rnd.Intn(t.numPixels)
	p.colour = t.palette[t.rnd.Intn(len(t.palette))]
	o := animator.Options{
		Duration: t.minDuration + t.rnd.Float64()*(t.maxDuration-t.minDuration),
		Easing:   t.pulse,
		Delay:    t.rnd.Float64() * t.maxSleep,
		Repeat:   1,
		Scale:    1,
	}
	p.animator.Tween(levelAttr, 0.0, 1.0, o)
}

// Burst lights every particle in turn, spread evenly along the strip.
// Particles go back to twinkling once their part of the burst is over.
func (t *Twinkle) Burst() {
	if len(t.particles) == 0 {
		return
	}
	for i, p := range t.particles {
		p.pixel = i * t.numPixels / len(t.particles)
	}
	level := path.NewTween(levelAttr, calc.Number, 0.0, 1.0)
	m := attrimator.NewMap()
	m.Put(levelAttr, attrimator.NewEvent(levelAttr, level, animator.Options{
		Duration: t.burstDuration,
		Easing:   t.pulse,
		Repeat:   1,
		Scale:    1,
	}))
	t.animators.Sequence(t.burstDelay, t.burstEasing).Play(m, true)
}

// Animators returns the particles' animators.
func (t *Twinkle) Animators() animator.Animators {
	return t.animators
}

// Render draws the particles over f.
func (t *Twinkle) Render(f *Frame) {
	for _, p := range t.particles {
		level, _ := p.level[levelAttr].(float64)
		if level <= 0 || p.pixel >= f.Len() {
			continue
		}
		f.pixels[p.pixel] = f.pixels[p.pixel].BlendHcl(p.colour, clamp01(level))
	}
}

func (t *Twinkle) Len() int {
	return len(t.particles)
}
