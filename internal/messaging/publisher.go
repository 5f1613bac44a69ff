package messaging

import (
	"encoding/json"
	"fmt"
)

// Broker is the subset of a message bus a session needs.
type Broker interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(data []byte)) (func(), error)
	Publish(subject string, data []byte) error
}

// JSONPublisher encodes messages as JSON before publishing them.
type JSONPublisher struct {
	broker Broker
}

func NewJSONPublisher(broker Broker) *JSONPublisher {
	return &JSONPublisher{broker: broker}
}

func (p *JSONPublisher) Publish(subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling %s message: %w", subject, err)
	}
	return p.broker.Publish(subject, data)
}
