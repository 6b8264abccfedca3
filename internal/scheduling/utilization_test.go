package scheduling

import (
	"errors"
	"testing"

	schedulingerrors "roomly/internal/scheduling/errors"
	"roomly/pkg/model"
)

func room(id int, opening, closing string) *model.Room {
	return &model.Room{RoomID: id, Opening: opening, Closing: closing, Capacity: 4}
}

func TestOpenHoursPerDay(t *testing.T) {
	tests := []struct {
		name    string
		room    *model.Room
		want    float64
		wantErr error
	}{
		{name: "twelve hour day", room: room(1, "08:00", "20:00"), want: 12},
		{name: "half hours", room: room(2, "08:30", "14:00"), want: 5.5},
		{name: "closing equals opening", room: room(3, "08:00", "08:00"), wantErr: schedulingerrors.ErrInvalidRoomWindow},
		{name: "closing before opening", room: room(4, "20:00", "08:00"), wantErr: schedulingerrors.ErrInvalidRoomWindow},
		{name: "malformed opening", room: room(5, "8am", "20:00"), wantErr: schedulingerrors.ErrMalformedTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OpenHoursPerDay(tt.room)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("OpenHoursPerDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistinctActiveDays(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*model.Booking
		want     int
	}{
		{name: "no bookings", bookings: nil, want: 0},
		{
			name: "one day",
			bookings: []*model.Booking{
				booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T12:00Z"),
				booking(2, 2, "2023-07-18T13:00Z", "2023-07-18T14:00Z"),
			},
			want: 1,
		},
		{
			name: "three days across rooms",
			bookings: []*model.Booking{
				booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T12:00Z"),
				booking(2, 1, "2023-07-19T10:00Z", "2023-07-19T12:00Z"),
				booking(3, 2, "2023-07-20T10:00Z", "2023-07-20T12:00Z"),
				booking(4, 3, "2023-07-20T14:00Z", "2023-07-20T16:00Z"),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistinctActiveDays(tt.bookings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DistinctActiveDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOccupiedTime(t *testing.T) {
	bookings := []*model.Booking{
		booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T12:00Z"),
		booking(2, 1, "2023-07-19T08:00Z", "2023-07-19T09:30Z"),
		booking(3, 2, "2023-07-18T08:00Z", "2023-07-18T20:00Z"),
	}

	occupied, err := OccupiedTime(1, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := occupied.Hours(); got != 3.5 {
		t.Errorf("OccupiedTime = %vh, want 3.5h", got)
	}
}

func TestUtilization_HalfOccupied(t *testing.T) {
	// One room open 08:00-20:00 (12h/day), one 6h booking on one day -> 50%.
	rooms := []*model.Room{room(1, "08:00", "20:00")}
	bookings := []*model.Booking{
		booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T16:00Z"),
	}

	got, err := Utilization(rooms, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[1] != 50 {
		t.Errorf("utilization = %d%%, want 50%%", got[1])
	}
}

func TestUtilization_RoomWithoutBookings(t *testing.T) {
	rooms := []*model.Room{
		room(1, "08:00", "20:00"),
		room(2, "08:00", "14:00"),
	}
	bookings := []*model.Booking{
		booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T16:00Z"),
	}

	got, err := Utilization(rooms, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got[2]; !ok {
		t.Fatalf("room 2 must still appear in the result")
	}
	if got[2] != 0 {
		t.Errorf("room without bookings = %d%%, want 0%%", got[2])
	}
}

func TestUtilization_NoBookingsAtAll(t *testing.T) {
	rooms := []*model.Room{room(1, "08:00", "20:00")}

	got, err := Utilization(rooms, nil)
	if err != nil {
		t.Fatalf("a room with zero bookings must not raise an error, got %v", err)
	}
	if got[1] != 0 {
		t.Errorf("utilization with no bookings = %d%%, want 0%%", got[1])
	}
}

func TestUtilization_InvalidRoomWindow(t *testing.T) {
	rooms := []*model.Room{room(1, "08:00", "08:00")}
	bookings := []*model.Booking{
		booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T12:00Z"),
	}

	_, err := Utilization(rooms, bookings)
	if !errors.Is(err, schedulingerrors.ErrInvalidRoomWindow) {
		t.Errorf("expected ErrInvalidRoomWindow, got %v", err)
	}
}

func TestUtilization_RoundsToNearestPercent(t *testing.T) {
	// 1h40m booked of a 12h single-day window = 13.888...% -> 14%.
	rooms := []*model.Room{room(1, "08:00", "20:00")}
	bookings := []*model.Booking{
		booking(1, 1, "2023-07-18T10:00Z", "2023-07-18T11:40Z"),
	}

	got, err := Utilization(rooms, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[1] != 14 {
		t.Errorf("utilization = %d%%, want 14%%", got[1])
	}
}

func TestUtilization_MultiDayDenominator(t *testing.T) {
	// Bookings on two distinct days double the open window even for a room
	// that was only used on one of them.
	rooms := []*model.Room{room(1, "08:00", "20:00")}
	bookings := []*model.Booking{
		booking(1, 1, "2023-07-18T08:00Z", "2023-07-18T20:00Z"),
		booking(2, 2, "2023-07-19T10:00Z", "2023-07-19T12:00Z"),
	}

	got, err := Utilization(rooms, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[1] != 50 {
		t.Errorf("utilization = %d%%, want 50%% over the two-day window", got[1])
	}
}
