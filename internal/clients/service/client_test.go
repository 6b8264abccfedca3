package service

import (
	"context"
	"testing"

	"roomly/internal/clients/validator"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type mockClientRepo struct {
	createFn   func(ctx context.Context, client *model.Client) error
	findByIDFn func(ctx context.Context, id int) (*model.Client, error)
	findAllFn  func(ctx context.Context) ([]*model.Client, error)
	countFn    func(ctx context.Context) (int64, error)
	nextIDFn   func(ctx context.Context) (int, error)
}

func (m *mockClientRepo) Create(ctx context.Context, client *model.Client) error {
	return m.createFn(ctx, client)
}

func (m *mockClientRepo) FindByID(ctx context.Context, id int) (*model.Client, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockClientRepo) FindAll(ctx context.Context) ([]*model.Client, error) {
	return m.findAllFn(ctx)
}

func (m *mockClientRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockClientRepo) NextID(ctx context.Context) (int, error) {
	return m.nextIDFn(ctx)
}

type mockBookingSource struct {
	findAllUnpagedFn func(ctx context.Context) ([]*model.Booking, error)
}

func (m *mockBookingSource) FindAllUnpaged(ctx context.Context) ([]*model.Booking, error) {
	return m.findAllUnpagedFn(ctx)
}

func newService(repo *mockClientRepo, bookings *mockBookingSource) ClientService {
	log := logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"})
	cfg := &config.Config{Log: log}
	return NewClientService(repo, bookings, validator.NewClientValidator(log), cfg)
}

func TestClientService_Create(t *testing.T) {
	var created *model.Client
	repo := &mockClientRepo{
		createFn: func(_ context.Context, client *model.Client) error {
			created = client
			return nil
		},
		nextIDFn: func(_ context.Context) (int, error) { return 8, nil },
	}
	svc := newService(repo, &mockBookingSource{})

	client := &model.Client{Name: "  Client 8  "}
	if err := svc.Create(context.Background(), client); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if created.ClientID != 8 {
		t.Errorf("ClientID = %d, want 8", created.ClientID)
	}
	if created.Name != "Client 8" {
		t.Errorf("Name = %q, want trimmed %q", created.Name, "Client 8")
	}
}

func TestClientService_Create_EmptyName(t *testing.T) {
	repo := &mockClientRepo{
		createFn: func(_ context.Context, _ *model.Client) error {
			t.Fatal("repository should not be called for invalid client")
			return nil
		},
	}
	svc := newService(repo, &mockBookingSource{})

	err := svc.Create(context.Background(), &model.Client{Name: "   "})
	if err == nil {
		t.Fatal("Create() returned nil, want validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestClientService_BookingsPerClient(t *testing.T) {
	bookings := &mockBookingSource{
		findAllUnpagedFn: func(_ context.Context) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: 1, RoomID: 1, ClientID: 1, Start: "2023-07-18T10:00Z", End: "2023-07-18T12:00Z"},
				{ID: 2, RoomID: 1, ClientID: 2, Start: "2023-07-18T12:00Z", End: "2023-07-18T18:00Z"},
				{ID: 3, RoomID: 2, ClientID: 1, Start: "2023-07-19T10:00Z", End: "2023-07-19T12:00Z"},
			}, nil
		},
	}
	svc := newService(&mockClientRepo{}, bookings)

	counts, err := svc.BookingsPerClient(context.Background())
	if err != nil {
		t.Fatalf("BookingsPerClient() returned error: %v", err)
	}

	if counts[1] != 2 {
		t.Errorf("counts[1] = %d, want 2", counts[1])
	}
	if counts[2] != 1 {
		t.Errorf("counts[2] = %d, want 1", counts[2])
	}
	if _, ok := counts[3]; ok {
		t.Error("counts contains client 3, want absent")
	}
}

func TestClientService_BookingsPerClient_NoBookings(t *testing.T) {
	bookings := &mockBookingSource{
		findAllUnpagedFn: func(_ context.Context) ([]*model.Booking, error) {
			return nil, nil
		},
	}
	svc := newService(&mockClientRepo{}, bookings)

	counts, err := svc.BookingsPerClient(context.Background())
	if err != nil {
		t.Fatalf("BookingsPerClient() returned error: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("counts = %v, want empty", counts)
	}
}
