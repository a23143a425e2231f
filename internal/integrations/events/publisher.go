package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Writer часть kafka.Writer, которая нужна издателю
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события о резервациях в kafka
type KafkaPublisher struct {
	writer Writer
	topic  string
}

// NewKafkaPublisher создает издателя поверх kafka.Writer
// Ключ сообщения - id филиала, так события одного филиала попадают в одну партицию
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Balancer: &kafka.Hash{},
	})
	return NewKafkaPublisherWithWriter(writer, topic)
}

// NewKafkaPublisherWithWriter создает издателя с произвольным writer
func NewKafkaPublisherWithWriter(writer Writer, topic string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{writer: writer, topic: topic}
}

// PublishReservationCreated отправляет reservation.created.v1
func (p *KafkaPublisher) PublishReservationCreated(ctx context.Context, event ReservationCreated) error {
	return p.publish(ctx, TypeReservationCreated, event.BranchID, event.ReservationID, event)
}

// PublishReservationCanceled отправляет reservation.canceled.v1
func (p *KafkaPublisher) PublishReservationCanceled(ctx context.Context, event ReservationCanceled) error {
	return p.publish(ctx, TypeReservationCanceled, event.BranchID, event.ReservationID, event)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, branchID, reservationID int64, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(branchID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s reservation_id=%d: %v", ErrPublish, eventType, reservationID, err)
	}
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда брокеры не настроены
type NopPublisher struct{}

// PublishReservationCreated ничего не делает
func (NopPublisher) PublishReservationCreated(context.Context, ReservationCreated) error {
	return nil
}

// PublishReservationCanceled ничего не делает
func (NopPublisher) PublishReservationCanceled(context.Context, ReservationCanceled) error {
	return nil
}

// Close ничего не делает
func (NopPublisher) Close() error {
	return nil
}
