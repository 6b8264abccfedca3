package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/repository"
	"roomly/internal/rooms/validator"
	"roomly/internal/scheduling"
	schedulingerrors "roomly/internal/scheduling/errors"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

// BookingSource is the read-only slice of the bookings store that the room
// analytics need. The bookings repository satisfies it.
type BookingSource interface {
	FindAllUnpaged(ctx context.Context) ([]*model.Booking, error)
	FindByRoom(ctx context.Context, roomID int) ([]*model.Booking, error)
}

type RoomService interface {
	Create(ctx context.Context, room *model.Room) error
	GetAll(ctx context.Context) ([]*model.Room, error)
	Usage(ctx context.Context) (map[int]int, error)
	Availability(ctx context.Context, roomID int, timestamp string) (*scheduling.Availability, error)
	Overlaps(ctx context.Context) (*scheduling.OverlapReport, error)
}

type roomService struct {
	repo      repository.RoomRepository
	bookings  BookingSource
	validator *validator.RoomValidator
	cfg       *config.Config
}

func NewRoomService(
	repo repository.RoomRepository,
	bookings BookingSource,
	validator *validator.RoomValidator,
	cfg *config.Config,
) RoomService {
	return &roomService{
		repo:      repo,
		bookings:  bookings,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *roomService) Create(ctx context.Context, room *model.Room) error {
	s.applyDefaults(room)

	if err := s.validator.Validate(room); err != nil {
		s.cfg.Log.Warn("Room validation failed",
			"opening", room.Opening,
			"closing", room.Closing,
			"capacity", room.Capacity,
			"error", err,
		)
		return apperrors.Validation("Room validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if room.RoomID == 0 {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to allocate room ID", "error", err)
			return apperrors.Internal("Failed to allocate room ID", err)
		}
		room.RoomID = id
	} else {
		if _, err := s.repo.FindByID(ctx, room.RoomID); err == nil {
			return apperrors.Conflict(fmt.Sprintf("Room with ID %d already exists", room.RoomID))
		} else if !errors.Is(err, roomserrors.ErrNotFound) {
			return apperrors.Internal("Failed to check room existence", err)
		}
	}

	if err := s.repo.Create(ctx, room); err != nil {
		s.cfg.Log.Error("Failed to create room",
			"room_id", room.RoomID,
			"error", err,
		)
		return apperrors.Internal("Failed to create room", err)
	}

	s.cfg.Log.Info("Room created successfully",
		"room_id", room.RoomID,
		"opening", room.Opening,
		"closing", room.Closing,
		"capacity", room.Capacity,
	)

	return nil
}

func (s *roomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get all rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

// Usage reports each room's occupancy as a whole percentage of its open
// hours across the days it saw bookings.
func (s *roomService) Usage(ctx context.Context) (map[int]int, error) {
	var rooms []*model.Room
	var bookings []*model.Booking
	var errRooms, errBookings error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
		rooms, err = s.repo.FindAll(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to get rooms for usage report", "error", err)
			errRooms = apperrors.Internal("Failed to retrieve rooms", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ReadTimeout)
		defer cancel()
		bookings, err = s.bookings.FindAllUnpaged(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to get bookings for usage report", "error", err)
			errBookings = apperrors.Internal("Failed to retrieve bookings", err)
		}
	}()
	wg.Wait()

	if errRooms != nil {
		return nil, errRooms
	}
	if errBookings != nil {
		return nil, errBookings
	}

	usage, err := scheduling.Utilization(rooms, bookings)
	if err != nil {
		if errors.Is(err, schedulingerrors.ErrInvalidRoomWindow) {
			return nil, apperrors.Validation("Room has an invalid operating window", map[string]any{
				"error": err.Error(),
			})
		}
		if errors.Is(err, schedulingerrors.ErrMalformedTimestamp) {
			s.cfg.Log.Error("Stored booking has a malformed timestamp", "error", err)
			return nil, apperrors.Internal("Stored booking data is malformed", err)
		}
		return nil, apperrors.Internal("Failed to compute room usage", err)
	}

	return usage, nil
}

func (s *roomService) Availability(ctx context.Context, roomID int, timestamp string) (*scheduling.Availability, error) {
	if roomID <= 0 {
		return nil, apperrors.InvalidInput("Room ID must be a positive integer")
	}

	at, err := scheduling.ParseWireTime(timestamp)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf(
			"Timestamp must be in YYYY-MM-DDTHH:MMZ format, got: %s", timestamp,
		))
	}

	if _, err := s.repo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", roomID)
		}
		s.cfg.Log.Error("Failed to look up room", "room_id", roomID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}

	bookings, err := s.bookings.FindByRoom(ctx, roomID)
	if err != nil {
		s.cfg.Log.Error("Failed to get bookings for availability check",
			"room_id", roomID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	availability, err := scheduling.CheckAvailability(roomID, at, bookings)
	if err != nil {
		s.cfg.Log.Error("Stored booking has a malformed timestamp",
			"room_id", roomID,
			"error", err,
		)
		return nil, apperrors.Internal("Stored booking data is malformed", err)
	}

	return availability, nil
}

func (s *roomService) Overlaps(ctx context.Context) (*scheduling.OverlapReport, error) {
	bookings, err := s.bookings.FindAllUnpaged(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get bookings for overlap scan", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	report, err := scheduling.FindOverlaps(bookings)
	if err != nil {
		s.cfg.Log.Error("Stored booking has a malformed timestamp", "error", err)
		return nil, apperrors.Internal("Stored booking data is malformed", err)
	}

	s.cfg.Log.Debug("Overlap scan completed",
		"bookings", len(bookings),
		"overlapping_pairs", report.Count(),
	)

	return report, nil
}

func (s *roomService) applyDefaults(room *model.Room) {
	if room.Opening == "" {
		room.Opening = s.cfg.DefaultOpening
	}
	if room.Closing == "" {
		room.Closing = s.cfg.DefaultClosing
	}
	if room.Capacity == 0 {
		room.Capacity = s.cfg.DefaultRoomCapacity
	}
}
