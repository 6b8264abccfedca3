package seed

import (
	"context"

	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

// RoomStore, ClientStore and BookingStore are the slices of the three
// repositories the loader needs.
type RoomStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, room *model.Room) error
}

type ClientStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, client *model.Client) error
}

type BookingStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, booking *model.Booking) error
}

type Loader struct {
	rooms    RoomStore
	clients  ClientStore
	bookings BookingStore
	fixture  *Fixture
	cfg      *config.Config
}

func NewLoader(rooms RoomStore, clients ClientStore, bookings BookingStore, cfg *config.Config) *Loader {
	return &Loader{
		rooms:    rooms,
		clients:  clients,
		bookings: bookings,
		fixture:  DefaultFixture(),
		cfg:      cfg,
	}
}

// Load inserts the fixture only when all three collections are empty.
// Returns true when data was inserted, false when the store was already
// populated.
func (l *Loader) Load(ctx context.Context) (bool, error) {
	empty, err := l.allEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		l.cfg.Log.Info("Skipping initial data load, store is already populated")
		return false, nil
	}

	for _, room := range l.fixture.Rooms {
		if err := l.rooms.Create(ctx, room); err != nil {
			l.cfg.Log.Error("Failed to seed room", "room_id", room.RoomID, "error", err)
			return false, apperrors.Internal("Failed to load initial rooms", err)
		}
	}

	for _, client := range l.fixture.Clients {
		if err := l.clients.Create(ctx, client); err != nil {
			l.cfg.Log.Error("Failed to seed client", "client_id", client.ClientID, "error", err)
			return false, apperrors.Internal("Failed to load initial clients", err)
		}
	}

	for _, booking := range l.fixture.Bookings {
		if err := l.bookings.Create(ctx, booking); err != nil {
			l.cfg.Log.Error("Failed to seed booking", "booking_id", booking.ID, "error", err)
			return false, apperrors.Internal("Failed to load initial bookings", err)
		}
	}

	l.cfg.Log.Info("Initial data loaded",
		"rooms", len(l.fixture.Rooms),
		"clients", len(l.fixture.Clients),
		"bookings", len(l.fixture.Bookings),
	)

	return true, nil
}

func (l *Loader) allEmpty(ctx context.Context) (bool, error) {
	roomCount, err := l.rooms.Count(ctx)
	if err != nil {
		return false, apperrors.Internal("Failed to count rooms", err)
	}

	clientCount, err := l.clients.Count(ctx)
	if err != nil {
		return false, apperrors.Internal("Failed to count clients", err)
	}

	bookingCount, err := l.bookings.Count(ctx)
	if err != nil {
		return false, apperrors.Internal("Failed to count bookings", err)
	}

	return roomCount == 0 && clientCount == 0 && bookingCount == 0, nil
}
