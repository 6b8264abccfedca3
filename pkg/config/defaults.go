package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = time.Minute

	DefaultRequestTimeout = 15 * time.Second
	DefaultIdempotencyTTL = 10 * time.Minute
	DefaultMaxRequestSize = 1 << 20

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultDefaultOpening      = "08:00"
	DefaultDefaultClosing      = "20:00"
	DefaultDefaultRoomCapacity = 4

	DefaultBookingEventsEnabled = false
	DefaultBookingEventsTopic   = "roomly.booking.created"

	DefaultPaginationLimit = 100
)
