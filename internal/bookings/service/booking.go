package service

import (
	"context"
	"errors"
	"sync"

	bookingsevents "roomly/internal/bookings/events"
	"roomly/internal/bookings/repository"
	"roomly/internal/bookings/validator"
	clientserrors "roomly/internal/clients/errors"
	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/middleware"
	"roomly/pkg/model"
)

// RoomSource and ClientSource are the existence checks a booking needs
// before it is accepted. The rooms and clients repositories satisfy them.
type RoomSource interface {
	FindByID(ctx context.Context, id int) (*model.Room, error)
}

type ClientSource interface {
	FindByID(ctx context.Context, id int) (*model.Client, error)
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	Filter(ctx context.Context, roomID, clientID *int) ([]*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	rooms     RoomSource
	clients   ClientSource
	validator *validator.BookingValidator
	publisher bookingsevents.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	rooms RoomSource,
	clients ClientSource,
	validator *validator.BookingValidator,
	publisher bookingsevents.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		rooms:     rooms,
		clients:   clients,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create persists a booking after checking that the room and client exist.
// Overlapping bookings are accepted; the overlap scan reports them after the
// fact instead of blocking the write.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"room_id", booking.RoomID,
			"client_id", booking.ClientID,
			"start", booking.Start,
			"end", booking.End,
			"error", err,
		)
		return apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if _, err := s.rooms.FindByID(ctx, booking.RoomID); err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Room", booking.RoomID)
		}
		s.cfg.Log.Error("Failed to verify room for booking", "room_id", booking.RoomID, "error", err)
		return apperrors.Internal("Failed to verify room", err)
	}

	if _, err := s.clients.FindByID(ctx, booking.ClientID); err != nil {
		if errors.Is(err, clientserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Client", booking.ClientID)
		}
		s.cfg.Log.Error("Failed to verify client for booking", "client_id", booking.ClientID, "error", err)
		return apperrors.Internal("Failed to verify client", err)
	}

	if booking.ID == 0 {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to allocate booking ID", "error", err)
			return apperrors.Internal("Failed to allocate booking ID", err)
		}
		booking.ID = id
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking",
			"booking_id", booking.ID,
			"room_id", booking.RoomID,
			"client_id", booking.ClientID,
			"error", err,
		)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"booking_id", booking.ID,
		"room_id", booking.RoomID,
		"client_id", booking.ClientID,
		"start", booking.Start,
		"end", booking.End,
	)

	if err := s.publisher.BookingCreated(ctx, booking, middleware.RequestIDFromContext(ctx)); err != nil {
		s.cfg.Log.Error("Failed to publish booking created event",
			"booking_id", booking.ID,
			"error", err,
		)
	}

	return nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
		count, err = s.repo.Count(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", err)
			errCount = apperrors.Internal("Failed to count bookings", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
		bookings, err = s.repo.FindAll(ctx, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to get all bookings",
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to retrieve bookings", err)
		}
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) Filter(ctx context.Context, roomID, clientID *int) ([]*model.Booking, error) {
	if roomID != nil && *roomID <= 0 {
		return nil, apperrors.InvalidInput("room_id must be a positive integer")
	}
	if clientID != nil && *clientID <= 0 {
		return nil, apperrors.InvalidInput("client_id must be a positive integer")
	}

	bookings, err := s.repo.FindFiltered(ctx, roomID, clientID)
	if err != nil {
		s.cfg.Log.Error("Failed to filter bookings",
			"room_id", roomID,
			"client_id", clientID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return bookings, nil
}
