package stream

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/anim8/animator"
	"github.com/matt-g-everett/anim8/easing"
)

// Config is the streamer's configuration, read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Animation struct {
		FrameRate     float64          `yaml:"frameRate"`
		PixelCount    int              `yaml:"pixelCount"`
		CycleTime     time.Duration    `yaml:"cycleTime"`
		Transition    TransitionConfig `yaml:"transition"`
		Gradient      GradientTable    `yaml:"gradient"`
		GradientColor GradientColor    `yaml:"gradientColor"`
		Twinkle       TwinkleConfig    `yaml:"twinkle"`
		Animations    []*Animation     `yaml:"animations"`
	} `yaml:"animation"`
}

// TransitionConfig is an animator.Transition with its easing named.
type TransitionConfig struct {
	animator.Transition `yaml:",inline"`
	EasingName          string `yaml:"easing"`
}

// Build returns the transition with its easing looked up.
func (t TransitionConfig) Build() (animator.Transition, error) {
	tr := t.Transition
	name := t.EasingName
	if name == "" {
		name = "linear"
	}
	fn, err := easing.Lookup(name)
	if err != nil {
		return tr, fmt.Errorf("transition: %w", err)
	}
	tr.Easing = fn
	return tr, nil
}

// DefaultConfig returns the configuration values used for anything a
// config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "anim8"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.Control = "home/xmastree/control"
	c.Animation.FrameRate = 30
	c.Animation.PixelCount = 500
	c.Animation.CycleTime = time.Minute
	c.Animation.Transition.Transition = animator.DefaultTransition()
	c.Animation.Gradient = DefaultGradient()
	c.Animation.GradientColor = GradientColor{Chroma: 1.0, Luminance: 0.05}
	c.Animation.Twinkle = TwinkleConfig{
		MinDuration: 400,
		MaxDuration: 1200,
		MaxSleep:    3000,
		Easing:      "quad-inout",

		BurstDuration: 600,
		BurstDelay:    10,
		BurstEasing:   "sine-inout",
	}
	return c
}

// ParseConfig reads a YAML configuration over the defaults and checks it.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks the values which would stop the streamer from running.
// Animations are checked when they are built.
func (c *Config) Validate() error {
	a := &c.Animation
	if a.FrameRate <= 0 {
		return fmt.Errorf("config: frame rate must be positive, got %g", a.FrameRate)
	}
	if a.PixelCount <= 0 {
		return fmt.Errorf("config: pixel count must be positive, got %d", a.PixelCount)
	}
	if a.CycleTime <= 0 {
		return fmt.Errorf("config: cycle time must be positive, got %v", a.CycleTime)
	}
	if a.GradientColor.Chroma < 0 || a.GradientColor.Luminance < 0 || a.GradientColor.Luminance > 1 {
		return fmt.Errorf("config: gradient colour out of range, got %+v", a.GradientColor)
	}
	if _, err := a.Transition.Build(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FrameInterval is the time between frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Animation.FrameRate)
}
