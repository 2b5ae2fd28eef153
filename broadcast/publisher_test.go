package broadcast

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}

	events := []bazaar.Event{
		{Kind: "listing-created", Key: []byte("kitties/1"), Payload: []byte(`{"token_id":"1"}`)},
		{Kind: "item-purchased", Key: []byte("kitties/1"), Payload: []byte(`{"token_id":"1"}`)},
		{Kind: "maintenance"},
	}
	require.NoError(t, p.Publish(context.Background(), events))
	require.Len(t, w.msgs, 3)
	// both events of the token share a key and so a partition
	require.Equal(t, []byte("kitties/1"), w.msgs[0].Key)
	require.Equal(t, []byte("kitties/1"), w.msgs[1].Key)
	require.Equal(t, []kafka.Header{{Key: "kind", Value: []byte("listing-created")}}, w.msgs[0].Headers)
	require.Equal(t, []kafka.Header{{Key: "kind", Value: []byte("item-purchased")}}, w.msgs[1].Headers)
	require.Equal(t, events[1].Payload, w.msgs[1].Value)
	require.Equal(t, []byte("maintenance"), w.msgs[2].Key)

	require.NoError(t, p.Publish(context.Background(), nil))
	require.Len(t, w.msgs, 3)

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestKafkaPublisherFailure(t *testing.T) {
	w := &recordingWriter{err: stderrors.New("broker down")}
	p := &KafkaPublisher{writer: w}

	err := p.Publish(context.Background(), []bazaar.Event{{Kind: "listing-created"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "broker down")
}

func TestNewKafkaPublisher(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "events")
	require.True(t, errors.ErrEmpty.Is(err))

	_, err = NewKafkaPublisher([]string{"localhost:9092"}, "")
	require.True(t, errors.ErrEmpty.Is(err))

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "events")
	require.NoError(t, err)
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	require.IsType(t, &kafka.Hash{}, w.Balancer)
	require.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	require.NoError(t, p.Publish(context.Background(), []bazaar.Event{{Kind: "x"}}))
	require.NoError(t, p.Close())
}
