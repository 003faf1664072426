package stream

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// The types of ControlMessage.
const (
	ControlNext   = "next"
	ControlPlay   = "play"
	ControlPause  = "pause"
	ControlResume = "resume"
	ControlFinish = "finish"
	ControlStop   = "stop"
	ControlSet    = "set"
	ControlQueue  = "queue"
	ControlBurst  = "burst"
)

// ControlMessage asks the streamer to change what it is showing.
type ControlMessage struct {
	Type string `json:"type"`
	// Animation names the animation to play or queue.
	Animation string `json:"animation,omitempty"`
	// Attributes limits pause, resume, finish and stop to some attributes.
	Attributes []string `json:"attributes,omitempty"`
	// Values are the attribute values to set.
	Values map[string]interface{} `json:"values,omitempty"`
}

// Control receives ControlMessages over MQTT and hands them to whoever is
// reading Messages.
type Control struct {
	client   mqtt.Client
	topic    string
	messages chan ControlMessage
}

// NewControl creates an instance of a Control.
func NewControl(client mqtt.Client, topic string) *Control {
	c := new(Control)
	c.client = client
	c.topic = topic
	c.messages = make(chan ControlMessage, 16)
	return c
}

// Messages returns the channel decoded messages are delivered on.
func (c *Control) Messages() <-chan ControlMessage {
	return c.messages
}

// Subscribe starts listening on the control topic.
func (c *Control) Subscribe() error {
	if token := c.client.Subscribe(c.topic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribing to %s: %w", c.topic, token.Error())
	}
	return nil
}

func (c *Control) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())
	if err := c.Deliver(msg.Payload()); err != nil {
		log.Println(err)
	}
}

// Deliver decodes a JSON control message and queues it. Messages are dropped
// while the queue is full.
func (c *Control) Deliver(payload []byte) error {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return fmt.Errorf("decoding control message: %w", err)
	}
	if message.Type == "" {
		return fmt.Errorf("control message has no type")
	}

	select {
	case c.messages <- message:
		return nil
	default:
		return fmt.Errorf("control queue full, dropped %q", message.Type)
	}
}
