package stream

import (
	"testing"
)

func TestControlDeliver(t *testing.T) {
	c := NewControl(nil, "control")
	err := c.Deliver([]byte(`{"type": "set", "values": {"head": 5}, "attributes": ["head"]}`))
	if err != nil {
		t.Fatal(err)
	}
	msg := <-c.Messages()
	diff(t, ControlMessage{
		Type:       ControlSet,
		Attributes: []string{AttrHead},
		Values:     map[string]interface{}{AttrHead: 5.0},
	}, msg)
}

func TestControlDeliverErrors(t *testing.T) {
	c := NewControl(nil, "control")
	if err := c.Deliver([]byte(`{"type":`)); err == nil {
		t.Error("expected an error for invalid json")
	}
	if err := c.Deliver([]byte(`{"animation": "sweep"}`)); err == nil {
		t.Error("expected an error for a message without a type")
	}

	for i := 0; i < cap(c.messages); i++ {
		if err := c.Deliver([]byte(`{"type": "next"}`)); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Deliver([]byte(`{"type": "next"}`)); err == nil {
		t.Error("expected an error when the queue is full")
	}
}
