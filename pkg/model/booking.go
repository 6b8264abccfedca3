package model

import "time"

// Booking reserves one room for one client over a contiguous time span.
// Start and End stay in the wire format YYYY-MM-DDTHH:MMZ end to end; only
// the scheduling package normalizes them into comparable instants. Bookings
// are immutable once created.
type Booking struct {
	ID        int       `json:"id" bson:"_id" validate:"omitempty,min=1"`
	RoomID    int       `json:"room_id" bson:"room_id" validate:"required,min=1"`
	ClientID  int       `json:"client_id" bson:"client_id" validate:"required,min=1"`
	Start     string    `json:"start" bson:"start" validate:"required,wire_time"`
	End       string    `json:"end" bson:"end" validate:"required,wire_time"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
}
