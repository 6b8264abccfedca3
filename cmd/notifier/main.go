package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	bookingsevents "roomly/internal/bookings/events"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafka_config "roomly/pkg/kafka/config"
)

const (
	ServiceName = "roomly-notifier"

	consumerGroup = "roomly-notifier"
)

// The notifier tails the booking-created topic and logs a confirmation per
// booking. It stands in for the downstream channel (mail, chat) that would
// notify clients in a full deployment.
func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Failed to load Kafka configuration", "error", err)
	}

	consumer := kafka.NewConsumer(kafkaCfg, cfg.BookingEventsTopic, consumerGroup, cfg.Log)
	defer func() {
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka consumer", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	cfg.Log.Info("Notifier consuming booking events",
		"topic", cfg.BookingEventsTopic,
		"group", consumerGroup,
		"brokers", kafkaCfg.Brokers,
	)

	if err := consumer.Run(ctx, handleEvent(cfg)); err != nil {
		cfg.Log.Fatal("Consumer stopped with error", "error", err)
	}

	cfg.Log.Info("Notifier stopped gracefully")
}

func handleEvent(cfg *config.Config) kafka.EventHandler {
	return func(_ context.Context, event *kafka.Event) error {
		if event.EventType != bookingsevents.EventTypeBookingCreated {
			cfg.Log.Debug("Ignoring event of unexpected type",
				"event_id", event.EventID,
				"event_type", event.EventType,
			)
			return nil
		}

		var payload bookingsevents.BookingCreatedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}

		cfg.Log.Info("Booking confirmed",
			"event_id", event.EventID,
			"booking_id", payload.BookingID,
			"room_id", payload.RoomID,
			"client_id", payload.ClientID,
			"start", payload.Start,
			"end", payload.End,
		)

		return nil
	}
}
