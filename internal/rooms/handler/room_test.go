package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/scheduling"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
)

type mockRoomService struct {
	availabilityFunc func(ctx context.Context, roomID int, timestamp string) (*scheduling.Availability, error)
	overlapsFunc     func(ctx context.Context) (*scheduling.OverlapReport, error)
}

func (m *mockRoomService) Create(ctx context.Context, room *model.Room) error {
	return nil
}

func (m *mockRoomService) GetAll(ctx context.Context) ([]*model.Room, error) {
	return nil, nil
}

func (m *mockRoomService) Usage(ctx context.Context) (map[int]int, error) {
	return nil, nil
}

func (m *mockRoomService) Availability(ctx context.Context, roomID int, timestamp string) (*scheduling.Availability, error) {
	if m.availabilityFunc != nil {
		return m.availabilityFunc(ctx, roomID, timestamp)
	}
	return &scheduling.Availability{RoomID: roomID}, nil
}

func (m *mockRoomService) Overlaps(ctx context.Context) (*scheduling.OverlapReport, error) {
	if m.overlapsFunc != nil {
		return m.overlapsFunc(ctx)
	}
	return &scheduling.OverlapReport{}, nil
}

func newTestHandler(service *mockRoomService) *RoomHandler {
	log := logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"})
	return NewRoomHandler(service, log)
}

func TestAvailability_NonNumericRoomID(t *testing.T) {
	handler := newTestHandler(&mockRoomService{
		availabilityFunc: func(_ context.Context, _ int, _ string) (*scheduling.Availability, error) {
			t.Fatal("service should not be called for a non-numeric room ID")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/availability/abc/2023-07-18T11:00Z", nil)
	w := httptest.NewRecorder()

	handler.Availability(w, req, httprouter.Params{
		{Key: "id", Value: "abc"},
		{Key: "timestamp", Value: "2023-07-18T11:00Z"},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAvailability_PassesParamsToService(t *testing.T) {
	var gotRoomID int
	var gotTimestamp string
	handler := newTestHandler(&mockRoomService{
		availabilityFunc: func(_ context.Context, roomID int, timestamp string) (*scheduling.Availability, error) {
			gotRoomID = roomID
			gotTimestamp = timestamp
			return &scheduling.Availability{RoomID: roomID, Busy: true, QueryInstant: timestamp}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/availability/2/2023-07-18T11:00Z", nil)
	w := httptest.NewRecorder()

	handler.Availability(w, req, httprouter.Params{
		{Key: "id", Value: "2"},
		{Key: "timestamp", Value: "2023-07-18T11:00Z"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotRoomID != 2 {
		t.Errorf("roomID = %d, want 2", gotRoomID)
	}
	if gotTimestamp != "2023-07-18T11:00Z" {
		t.Errorf("timestamp = %q, want %q", gotTimestamp, "2023-07-18T11:00Z")
	}
}

func TestAvailability_ServiceError(t *testing.T) {
	handler := newTestHandler(&mockRoomService{
		availabilityFunc: func(_ context.Context, roomID int, _ string) (*scheduling.Availability, error) {
			return nil, apperrors.NotFoundWithID("Room", roomID)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/availability/99/2023-07-18T11:00Z", nil)
	w := httptest.NewRecorder()

	handler.Availability(w, req, httprouter.Params{
		{Key: "id", Value: "99"},
		{Key: "timestamp", Value: "2023-07-18T11:00Z"},
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestOverlaps_EmptyReport(t *testing.T) {
	handler := newTestHandler(&mockRoomService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/overlap", nil)
	w := httptest.NewRecorder()

	handler.Overlaps(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Data scheduling.OverlapReport `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data.Pairs) != 0 {
		t.Errorf("pairs = %d, want 0", len(body.Data.Pairs))
	}
}
