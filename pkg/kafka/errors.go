package kafka

import "errors"

var (
	ErrProducerClosed = errors.New("kafka producer is closed")
	ErrConsumerClosed = errors.New("kafka consumer is closed")
	ErrEmptyTopic     = errors.New("kafka topic cannot be empty")
	ErrEmptyKey       = errors.New("kafka message key cannot be empty")
	ErrNilPayload     = errors.New("kafka message payload cannot be nil")
)
