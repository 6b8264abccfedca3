package events

import (
	"context"
	"strconv"

	"roomly/pkg/config"
	"roomly/pkg/kafka"
	"roomly/pkg/model"
)

const EventTypeBookingCreated = "booking.created"

// BookingCreatedPayload is the event body published after a booking is
// persisted. Timestamps stay in the wire format.
type BookingCreatedPayload struct {
	BookingID int    `json:"booking_id"`
	RoomID    int    `json:"room_id"`
	ClientID  int    `json:"client_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Publisher announces booking lifecycle events. Publishing is best-effort,
// a failed publish never fails the booking.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking, requestID string) error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaPublisher(producer *kafka.Producer, topic string) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking, requestID string) error {
	event, err := kafka.NewEvent(EventTypeBookingCreated, requestID, BookingCreatedPayload{
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		ClientID:  booking.ClientID,
		Start:     booking.Start,
		End:       booking.End,
	})
	if err != nil {
		return err
	}

	// Key by room so events for the same room stay ordered.
	return p.producer.Publish(ctx, p.topic, strconv.Itoa(booking.RoomID), event)
}

type noopPublisher struct{}

// NewNoopPublisher is used when booking events are disabled in config.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(context.Context, *model.Booking, string) error {
	return nil
}

// NewPublisher picks the Kafka-backed publisher when events are enabled and
// the no-op one otherwise.
func NewPublisher(cfg *config.Config, producer *kafka.Producer) Publisher {
	if !cfg.BookingEventsEnabled || producer == nil {
		return NewNoopPublisher()
	}
	return NewKafkaPublisher(producer, cfg.BookingEventsTopic)
}
