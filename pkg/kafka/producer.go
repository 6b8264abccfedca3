package kafka

import (
	"context"
	"fmt"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	kafka_config "roomly/pkg/kafka/config"
	"roomly/pkg/logger"
)

// Producer wraps a kafka-go writer. One producer serves all topics, the
// topic is chosen per publish call.
type Producer struct {
	writer *kafkago.Writer
	log    *logger.Logger

	mu     sync.Mutex
	closed bool
}

func NewProducer(cfg *kafka_config.Config, log *logger.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Balancer:     &kafkago.Hash{},
		MaxAttempts:  cfg.ProducerMaxAttempts,
		BatchTimeout: cfg.ProducerBatchTimeout,
		RequiredAcks: kafkago.RequiredAcks(cfg.ProducerRequireAcks),
	}

	return &Producer{
		writer: writer,
		log:    log,
	}
}

// Publish encodes the event and writes it to the topic. The key controls
// partitioning, callers pass the aggregate ID so events for the same
// entity stay ordered.
func (p *Producer) Publish(ctx context.Context, topic string, key string, event *Event) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	if key == "" {
		return ErrEmptyKey
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrProducerClosed
	}
	p.mu.Unlock()

	value, err := event.Encode()
	if err != nil {
		return fmt.Errorf("encoding event %s: %w", event.EventID, err)
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing to topic %s: %w", topic, err)
	}

	p.log.Debug("Published event",
		"topic", topic,
		"event_id", event.EventID,
		"event_type", event.EventType,
		"key", key,
	)

	return nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}
