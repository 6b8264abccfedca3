package kafka_config

import "time"

const (
	DefaultKafkaBrokers = "localhost:9092"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 100 * time.Millisecond
	DefaultProducerRequireAcks  = -1

	DefaultConsumerStartOffset    = -2
	DefaultConsumerMinBytes       = 1
	DefaultConsumerMaxBytes       = 10 << 20
	DefaultConsumerMaxWait        = 500 * time.Millisecond
	DefaultConsumerCommitInterval = time.Second
)
