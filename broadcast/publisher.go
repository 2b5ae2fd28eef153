/*
Package broadcast sends events produced by committed transactions to
external consumers.

Events are not part of the consensus state. A publisher failure must never
affect block processing, so callers are expected to log and drop errors.
*/
package broadcast

import (
	"context"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/segmentio/kafka-go"
)

// Publisher delivers a batch of events to an external system.
type Publisher interface {
	Publish(ctx context.Context, events []bazaar.Event) error
	Close() error
}

// NopPublisher drops all events.
type NopPublisher struct{}

var _ Publisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, []bazaar.Event) error { return nil }
func (NopPublisher) Close() error                                  { return nil }

// messageWriter is implemented by *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every event as a single kafka message. The message
// key is the event key, the kind travels in the "kind" header and the value
// is the event payload. Messages are partitioned by key hash, so events of
// one key are read back in order. An event without a key is keyed by kind.
type KafkaPublisher struct {
	writer messageWriter
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher returns a publisher writing to the given topic.
// Writes are synchronous and acknowledged by all in-sync replicas.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "kafka brokers")
	}
	if topic == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "kafka topic")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}, nil
}

// Publish writes all events in a single batch, preserving their order.
func (p *KafkaPublisher) Publish(ctx context.Context, events []bazaar.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		key := e.Key
		if len(key) == 0 {
			key = []byte(e.Kind)
		}
		msgs = append(msgs, kafka.Message{
			Key:     key,
			Value:   e.Payload,
			Headers: []kafka.Header{{Key: "kind", Value: []byte(e.Kind)}},
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errors.Wrapf(err, "publish %d events", len(msgs))
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
