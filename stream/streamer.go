package stream

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/anim8/animator"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client        mqtt.Client
	topic         string
	frameInterval time.Duration
	cycleTime     time.Duration

	scheduler  *animator.Scheduler
	strip      *Strip
	twinkle    *Twinkle
	controller *Controller
	control    *Control
}

// NewStreamer creates an instance of a Streamer. Every configured animation
// is built once to check it before the first one is played.
func NewStreamer(config Config, client mqtt.Client) (*Streamer, error) {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.frameInterval = config.FrameInterval()
	s.cycleTime = config.Animation.CycleTime

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.scheduler = animator.NewScheduler()
	s.strip = NewStrip(config.Animation.PixelCount, config.Animation.Gradient)
	s.strip.SetGradientColor(config.Animation.GradientColor.Chroma, config.Animation.GradientColor.Luminance)

	a := animator.New(s.strip, s.strip)
	a.SetRand(rnd)
	s.scheduler.Add(a)

	transition, err := config.Animation.Transition.Build()
	if err != nil {
		return nil, err
	}
	for _, anim := range config.Animation.Animations {
		if _, err := anim.Build(s.strip); err != nil {
			return nil, err
		}
	}
	s.controller = NewController(s.strip, a, transition, config.Animation.Animations, s.scheduler.Now)

	s.twinkle, err = NewTwinkle(config.Animation.Twinkle, config.Animation.PixelCount, s.scheduler, rnd)
	if err != nil {
		return nil, err
	}
	s.control = NewControl(client, config.Mqtt.Topics.Control)

	if err := s.controller.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Streamer) Scheduler() *animator.Scheduler {
	return s.scheduler
}

func (s *Streamer) Controller() *Controller {
	return s.controller
}

func (s *Streamer) Control() *Control {
	return s.control
}

// Subscribe listens for control messages. It should be called each time
// the client connects.
func (s *Streamer) Subscribe() error {
	return s.control.Subscribe()
}

// RenderFrame runs the animations up to now and draws the strip.
func (s *Streamer) RenderFrame(now float64) *Frame {
	s.scheduler.Tick(now)
	f := s.strip.Render()
	s.twinkle.Render(f)
	return f
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame() error {
	f := s.RenderFrame(s.scheduler.Now())
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing frame: %w", err)
	}
	return nil
}

// Handle applies a control message. Bursts go to the twinkle layer, which is
// also paused and resumed along with the whole strip.
func (s *Streamer) Handle(msg ControlMessage) error {
	switch msg.Type {
	case ControlBurst:
		s.twinkle.Burst()
		return nil
	case ControlPause:
		if len(msg.Attributes) == 0 {
			s.twinkle.Animators().Pause(s.scheduler.Now())
		}
	case ControlResume:
		if len(msg.Attributes) == 0 {
			s.twinkle.Animators().Resume(s.scheduler.Now())
		}
	}
	return s.controller.Handle(msg)
}

// Run causes the Streamer to send Frames continuously until ctx is done.
// Animations are cycled and control messages applied between frames.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.frameInterval)
	defer publishTimer.Stop()
	cycleTimer := time.NewTicker(s.cycleTime)
	defer cycleTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Println(err)
			}
		case <-cycleTimer.C:
			if err := s.controller.Next(); err != nil {
				log.Println(err)
			}
		case msg := <-s.control.Messages():
			if err := s.Handle(msg); err != nil {
				log.Printf("Control %s: %v", msg.Type, err)
			}
		}
	}
}
