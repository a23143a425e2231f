package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafkaPublisher_PublishReservationCreated(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisherWithWriter(writer, "")

	from := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	err := publisher.PublishReservationCreated(context.Background(), ReservationCreated{
		ReservationID: 100,
		BranchID:      7,
		From:          from,
		To:            from.Add(time.Hour),
		Status:        "pending",
	})
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, DefaultTopic, msg.Topic)
	assert.Equal(t, "7", string(msg.Key))
	assert.Equal(t, TypeReservationCreated, header(msg, "event_type"))
	_, err = uuid.Parse(header(msg, "event_id"))
	assert.NoError(t, err)

	var payload ReservationCreated
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, int64(100), payload.ReservationID)
	assert.True(t, payload.From.Equal(from))

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_PublishReservationCanceled(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisherWithWriter(writer, "booking-events")

	err := publisher.PublishReservationCanceled(context.Background(), ReservationCanceled{ReservationID: 5, BranchID: 9})
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "booking-events", msg.Topic)
	assert.Equal(t, "9", string(msg.Key))
	assert.Equal(t, TypeReservationCanceled, header(msg, "event_type"))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	publisher := NewKafkaPublisherWithWriter(&fakeWriter{err: errors.New("leader not available")}, "reservations")

	err := publisher.PublishReservationCreated(context.Background(), ReservationCreated{ReservationID: 1})
	assert.ErrorIs(t, err, ErrPublish)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.PublishReservationCreated(context.Background(), ReservationCreated{}))
	assert.NoError(t, p.PublishReservationCanceled(context.Background(), ReservationCanceled{}))
	assert.NoError(t, p.Close())
}
