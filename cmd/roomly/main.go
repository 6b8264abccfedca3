package main

import (
	bookingsevents "roomly/internal/bookings/events"
	bookingshandler "roomly/internal/bookings/handler"
	bookingsrepository "roomly/internal/bookings/repository"
	bookingsservice "roomly/internal/bookings/service"
	bookingsvalidator "roomly/internal/bookings/validator"
	clientshandler "roomly/internal/clients/handler"
	clientsrepository "roomly/internal/clients/repository"
	clientsservice "roomly/internal/clients/service"
	clientsvalidator "roomly/internal/clients/validator"
	healthhandler "roomly/internal/health/handler"
	roomshandler "roomly/internal/rooms/handler"
	roomsrepository "roomly/internal/rooms/repository"
	roomsservice "roomly/internal/rooms/service"
	roomsvalidator "roomly/internal/rooms/validator"
	"roomly/internal/seed"
	seedhandler "roomly/internal/seed/handler"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/contracts"
	"roomly/pkg/kafka"
	kafka_config "roomly/pkg/kafka/config"
)

const ServiceName = "roomly"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Roomly service")

	producer := initProducer(cfg)
	if producer != nil {
		defer func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}()
	}

	handlers := initHandlers(cfg, producer)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, healthhandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log), handlers...)
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	if !cfg.BookingEventsEnabled {
		cfg.Log.Info("Booking events disabled, skipping Kafka producer")
		return nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Failed to load Kafka configuration", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized",
		"brokers", kafkaCfg.Brokers,
		"topic", cfg.BookingEventsTopic,
	)
	return kafka.NewProducer(kafkaCfg, cfg.Log)
}

func initHandlers(cfg *config.Config, producer *kafka.Producer) []contracts.Handler {
	roomRepo := roomsrepository.NewMongoRoomRepository(cfg)
	clientRepo := clientsrepository.NewMongoClientRepository(cfg)
	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)

	roomService := roomsservice.NewRoomService(
		roomRepo,
		bookingRepo,
		roomsvalidator.NewRoomValidator(cfg.Log),
		cfg,
	)

	clientService := clientsservice.NewClientService(
		clientRepo,
		bookingRepo,
		clientsvalidator.NewClientValidator(cfg.Log),
		cfg,
	)

	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		roomRepo,
		clientRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		bookingsevents.NewPublisher(cfg, producer),
		cfg,
	)

	loader := seed.NewLoader(roomRepo, clientRepo, bookingRepo, cfg)

	cfg.Log.Info("Roomly services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		roomshandler.NewRoomHandler(roomService, cfg.Log),
		clientshandler.NewClientHandler(clientService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		seedhandler.NewDataHandler(loader, cfg.Log),
	}
}
