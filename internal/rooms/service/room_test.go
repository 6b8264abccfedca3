package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/internal/rooms/validator"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type mockRoomRepo struct {
	createFn   func(ctx context.Context, room *model.Room) error
	findByIDFn func(ctx context.Context, id int) (*model.Room, error)
	findAllFn  func(ctx context.Context) ([]*model.Room, error)
	countFn    func(ctx context.Context) (int64, error)
	nextIDFn   func(ctx context.Context) (int, error)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *model.Room) error {
	return m.createFn(ctx, room)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id int) (*model.Room, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockRoomRepo) FindAll(ctx context.Context) ([]*model.Room, error) {
	return m.findAllFn(ctx)
}

func (m *mockRoomRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockRoomRepo) NextID(ctx context.Context) (int, error) {
	return m.nextIDFn(ctx)
}

type mockBookingSource struct {
	findAllUnpagedFn func(ctx context.Context) ([]*model.Booking, error)
	findByRoomFn     func(ctx context.Context, roomID int) ([]*model.Booking, error)
}

func (m *mockBookingSource) FindAllUnpaged(ctx context.Context) ([]*model.Booking, error) {
	return m.findAllUnpagedFn(ctx)
}

func (m *mockBookingSource) FindByRoom(ctx context.Context, roomID int) ([]*model.Booking, error) {
	return m.findByRoomFn(ctx, roomID)
}

func testConfig() *config.Config {
	return &config.Config{
		ReadTimeout:         config.DefaultReadTimeout,
		WriteTimeout:        config.DefaultWriteTimeout,
		DefaultOpening:      "08:00",
		DefaultClosing:      "20:00",
		DefaultRoomCapacity: 4,
		Log:                 logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"}),
	}
}

func newService(repo *mockRoomRepo, bookings *mockBookingSource) RoomService {
	cfg := testConfig()
	return NewRoomService(repo, bookings, validator.NewRoomValidator(cfg.Log), cfg)
}

func TestRoomService_Create_AssignsSequentialID(t *testing.T) {
	var created *model.Room
	repo := &mockRoomRepo{
		createFn: func(_ context.Context, room *model.Room) error {
			created = room
			return nil
		},
		nextIDFn: func(_ context.Context) (int, error) { return 4, nil },
	}
	svc := newService(repo, &mockBookingSource{})

	room := &model.Room{Opening: "09:00", Closing: "17:00", Capacity: 8}
	if err := svc.Create(context.Background(), room); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if created == nil {
		t.Fatal("Create() did not reach the repository")
	}
	if created.RoomID != 4 {
		t.Errorf("RoomID = %d, want 4", created.RoomID)
	}
}

func TestRoomService_Create_AppliesDefaults(t *testing.T) {
	repo := &mockRoomRepo{
		createFn: func(_ context.Context, _ *model.Room) error { return nil },
		nextIDFn: func(_ context.Context) (int, error) { return 1, nil },
	}
	svc := newService(repo, &mockBookingSource{})

	room := &model.Room{}
	if err := svc.Create(context.Background(), room); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if room.Opening != "08:00" || room.Closing != "20:00" || room.Capacity != 4 {
		t.Errorf("defaults not applied, got %+v", room)
	}
}

func TestRoomService_Create_RejectsInvalidWindow(t *testing.T) {
	repo := &mockRoomRepo{
		createFn: func(_ context.Context, _ *model.Room) error {
			t.Fatal("repository should not be called for invalid room")
			return nil
		},
	}
	svc := newService(repo, &mockBookingSource{})

	err := svc.Create(context.Background(), &model.Room{Opening: "25:00", Closing: "20:00", Capacity: 4})
	if err == nil {
		t.Fatal("Create() returned nil, want validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestRoomService_Create_ConflictOnExistingID(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(_ context.Context, id int) (*model.Room, error) {
			return &model.Room{RoomID: id}, nil
		},
	}
	svc := newService(repo, &mockBookingSource{})

	err := svc.Create(context.Background(), &model.Room{RoomID: 2, Opening: "08:00", Closing: "14:00", Capacity: 10})
	if err == nil {
		t.Fatal("Create() returned nil, want conflict error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeConflict)
	}
}

func TestRoomService_Usage(t *testing.T) {
	repo := &mockRoomRepo{
		findAllFn: func(_ context.Context) ([]*model.Room, error) {
			return []*model.Room{
				{RoomID: 1, Opening: "08:00", Closing: "20:00", Capacity: 4},
				{RoomID: 2, Opening: "08:00", Closing: "14:00", Capacity: 10},
			}, nil
		},
	}
	bookings := &mockBookingSource{
		findAllUnpagedFn: func(_ context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: 1, RoomID: 1, ClientID: 1, Start: "2023-07-18T08:00Z", End: "2023-07-18T14:00Z"},
			}, nil
		},
	}
	svc := newService(repo, bookings)

	usage, err := svc.Usage(context.Background())
	if err != nil {
		t.Fatalf("Usage() returned error: %v", err)
	}

	if usage[1] != 50 {
		t.Errorf("usage[1] = %d, want 50", usage[1])
	}
	if usage[2] != 0 {
		t.Errorf("usage[2] = %d, want 0", usage[2])
	}
}

func TestRoomService_Usage_RepositoryFailure(t *testing.T) {
	repo := &mockRoomRepo{
		findAllFn: func(_ context.Context) ([]*model.Room, error) {
			return nil, errors.New("connection reset")
		},
	}
	bookings := &mockBookingSource{
		findAllUnpagedFn: func(_ context.Context) ([]*model.Booking, error) {
			return nil, nil
		},
	}
	svc := newService(repo, bookings)

	if _, err := svc.Usage(context.Background()); err == nil {
		t.Fatal("Usage() returned nil, want error")
	}
}

func TestRoomService_Availability(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(_ context.Context, id int) (*model.Room, error) {
			return &model.Room{RoomID: id, Opening: "08:00", Closing: "20:00", Capacity: 4}, nil
		},
	}
	bookings := &mockBookingSource{
		findByRoomFn: func(_ context.Context, roomID int) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: 1, RoomID: roomID, ClientID: 1, Start: "2023-07-18T10:00Z", End: "2023-07-18T12:00Z"},
			}, nil
		},
	}
	svc := newService(repo, bookings)

	tests := []struct {
		timestamp string
		wantBusy  bool
	}{
		{"2023-07-18T11:00Z", true},
		{"2023-07-18T12:00Z", true}, // boundary instants count as busy
		{"2023-07-18T13:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.timestamp, func(t *testing.T) {
			availability, err := svc.Availability(context.Background(), 1, tt.timestamp)
			if err != nil {
				t.Fatalf("Availability() returned error: %v", err)
			}
			if availability.Busy != tt.wantBusy {
				t.Errorf("Busy = %v, want %v", availability.Busy, tt.wantBusy)
			}
		})
	}
}

func TestRoomService_Availability_UnknownRoom(t *testing.T) {
	repo := &mockRoomRepo{
		findByIDFn: func(_ context.Context, id int) (*model.Room, error) {
			return nil, fmt.Errorf("%w: %d", roomserrors.ErrNotFound, id)
		},
	}
	svc := newService(repo, &mockBookingSource{})

	_, err := svc.Availability(context.Background(), 99, "2023-07-18T11:00Z")
	if err == nil {
		t.Fatal("Availability() returned nil, want not found error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeNotFound)
	}
}

func TestRoomService_Availability_MalformedTimestamp(t *testing.T) {
	svc := newService(&mockRoomRepo{}, &mockBookingSource{})

	_, err := svc.Availability(context.Background(), 1, "2023-07-18 11:00")
	if err == nil {
		t.Fatal("Availability() returned nil, want invalid input error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeInvalidInput)
	}
}

func TestRoomService_Overlaps(t *testing.T) {
	bookings := &mockBookingSource{
		findAllUnpagedFn: func(_ context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: 1, RoomID: 1, ClientID: 1, Start: "2023-07-18T10:00Z", End: "2023-07-18T12:00Z"},
				{ID: 2, RoomID: 1, ClientID: 2, Start: "2023-07-18T11:00Z", End: "2023-07-18T13:00Z"},
				{ID: 3, RoomID: 2, ClientID: 3, Start: "2023-07-18T11:00Z", End: "2023-07-18T13:00Z"},
			}, nil
		},
	}
	svc := newService(&mockRoomRepo{}, bookings)

	report, err := svc.Overlaps(context.Background())
	if err != nil {
		t.Fatalf("Overlaps() returned error: %v", err)
	}

	if report.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", report.Count())
	}
	pair := report.Pairs[0]
	if pair.Booking1.ID != 1 || pair.Booking2.ID != 2 {
		t.Errorf("pair = (%d, %d), want (1, 2)", pair.Booking1.ID, pair.Booking2.ID)
	}
}
