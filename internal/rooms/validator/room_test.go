package validator

import (
	"strings"
	"testing"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func newTestValidator() *RoomValidator {
	return NewRoomValidator(logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"}))
}

func TestRoomValidator_Valid(t *testing.T) {
	v := newTestValidator()

	room := &model.Room{Opening: "08:00", Closing: "20:00", Capacity: 4}
	if err := v.Validate(room); err != nil {
		t.Fatalf("Validate() returned error for valid room: %v", err)
	}
}

func TestRoomValidator_Invalid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		room      *model.Room
		wantField string
	}{
		{
			name:      "missing opening",
			room:      &model.Room{Closing: "20:00", Capacity: 4},
			wantField: "Opening",
		},
		{
			name:      "opening out of range",
			room:      &model.Room{Opening: "24:00", Closing: "20:00", Capacity: 4},
			wantField: "Opening",
		},
		{
			name:      "closing without minutes",
			room:      &model.Room{Opening: "08:00", Closing: "20", Capacity: 4},
			wantField: "Closing",
		},
		{
			name:      "closing with seconds",
			room:      &model.Room{Opening: "08:00", Closing: "20:00:00", Capacity: 4},
			wantField: "Closing",
		},
		{
			name:      "zero capacity",
			room:      &model.Room{Opening: "08:00", Closing: "20:00"},
			wantField: "Capacity",
		},
		{
			name:      "negative room ID",
			room:      &model.Room{RoomID: -1, Opening: "08:00", Closing: "20:00", Capacity: 4},
			wantField: "RoomID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.room)
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() error = %v, want mention of field %s", err, tt.wantField)
			}
		})
	}
}
