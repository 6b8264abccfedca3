package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	clientserrors "roomly/internal/clients/errors"
	"roomly/internal/clients/repository"
	"roomly/internal/clients/validator"
	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/model"
)

// BookingSource is the read-only slice of the bookings store needed for the
// per-client booking tally.
type BookingSource interface {
	FindAllUnpaged(ctx context.Context) ([]*model.Booking, error)
}

type ClientService interface {
	Create(ctx context.Context, client *model.Client) error
	GetAll(ctx context.Context) ([]*model.Client, error)
	BookingsPerClient(ctx context.Context) (map[int]int, error)
}

type clientService struct {
	repo      repository.ClientRepository
	bookings  BookingSource
	validator *validator.ClientValidator
	cfg       *config.Config
}

func NewClientService(
	repo repository.ClientRepository,
	bookings BookingSource,
	validator *validator.ClientValidator,
	cfg *config.Config,
) ClientService {
	return &clientService{
		repo:      repo,
		bookings:  bookings,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *clientService) Create(ctx context.Context, client *model.Client) error {
	client.Name = strings.TrimSpace(client.Name)

	if err := s.validator.Validate(client); err != nil {
		s.cfg.Log.Warn("Client validation failed",
			"name", client.Name,
			"error", err,
		)
		return apperrors.Validation("Client validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if client.ClientID == 0 {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			s.cfg.Log.Error("Failed to allocate client ID", "error", err)
			return apperrors.Internal("Failed to allocate client ID", err)
		}
		client.ClientID = id
	} else {
		if _, err := s.repo.FindByID(ctx, client.ClientID); err == nil {
			return apperrors.Conflict(fmt.Sprintf("Client with ID %d already exists", client.ClientID))
		} else if !errors.Is(err, clientserrors.ErrNotFound) {
			return apperrors.Internal("Failed to check client existence", err)
		}
	}

	if err := s.repo.Create(ctx, client); err != nil {
		s.cfg.Log.Error("Failed to create client",
			"client_id", client.ClientID,
			"error", err,
		)
		return apperrors.Internal("Failed to create client", err)
	}

	s.cfg.Log.Info("Client created successfully",
		"client_id", client.ClientID,
		"name", client.Name,
	)

	return nil
}

func (s *clientService) GetAll(ctx context.Context) ([]*model.Client, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get all clients", "error", err)
		return nil, apperrors.Internal("Failed to retrieve clients", err)
	}
	return clients, nil
}

// BookingsPerClient tallies how many bookings each client has made, keyed by
// client ID. Clients without bookings do not appear in the result.
func (s *clientService) BookingsPerClient(ctx context.Context) (map[int]int, error) {
	bookings, err := s.bookings.FindAllUnpaged(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get bookings for per-client tally", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	counts := make(map[int]int)
	for _, booking := range bookings {
		counts[booking.ClientID]++
	}

	return counts, nil
}
