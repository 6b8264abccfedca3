package scheduling

import (
	"time"

	"roomly/pkg/model"
)

// Availability is the busy/available verdict for one room at one instant.
type Availability struct {
	RoomID       int    `json:"room_id"`
	Busy         bool   `json:"busy"`
	QueryInstant string `json:"query_instant"`
}

// CheckAvailability scans the supplied bookings and reports busy when any
// booking on the room contains the query instant under INCLUSIVE bounds:
// a query exactly at a booking's end is busy. Bookings on other rooms are
// ignored; an empty snapshot means available. Resolving whether the room
// identifier itself exists is the caller's job against the room registry.
func CheckAvailability(roomID int, at time.Time, bookings []*model.Booking) (*Availability, error) {
	result := &Availability{
		RoomID:       roomID,
		QueryInstant: FormatWireTime(at),
	}

	for _, b := range bookings {
		if b.RoomID != roomID {
			continue
		}
		iv, err := NewInterval(b)
		if err != nil {
			return nil, err
		}
		if iv.Contains(at) {
			result.Busy = true
			return result, nil
		}
	}
	return result, nil
}
