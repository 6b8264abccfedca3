package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	kafka_config "roomly/pkg/kafka/config"
	"roomly/pkg/logger"
)

// EventHandler processes one decoded event. Returning an error leaves the
// offset uncommitted so the message is redelivered.
type EventHandler func(ctx context.Context, event *Event) error

type Consumer struct {
	reader *kafkago.Reader
	log    *logger.Logger

	mu     sync.Mutex
	closed bool
}

func NewConsumer(cfg *kafka_config.Config, topic, groupID string, log *logger.Logger) *Consumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        groupID,
		StartOffset:    cfg.ConsumerStartOffset,
		MinBytes:       cfg.ConsumerMinBytes,
		MaxBytes:       cfg.ConsumerMaxBytes,
		MaxWait:        cfg.ConsumerMaxWait,
		CommitInterval: cfg.ConsumerCommitInterval,
	})

	return &Consumer{
		reader: reader,
		log:    log,
	}
}

// Run fetches messages until the context is cancelled or the consumer is
// closed. Malformed messages are logged and committed so they do not wedge
// the partition.
func (c *Consumer) Run(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if closed {
				return nil
			}
			return fmt.Errorf("fetching message: %w", err)
		}

		event, err := DecodeEvent(msg.Value)
		if err != nil {
			c.log.Error("Dropping undecodable message",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err,
			)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return fmt.Errorf("committing skipped message: %w", err)
			}
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.log.Error("Event handler failed",
				"topic", msg.Topic,
				"event_id", event.EventID,
				"event_type", event.EventType,
				"error", err,
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("committing message: %w", err)
		}
	}
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.reader.Close()
}
