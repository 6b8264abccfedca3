package model

// Room is a bookable resource with a fixed daily operating window.
// Opening and Closing are wall-clock times of day in HH:MM; capacity is
// informational and never enforced against concurrent occupancy.
type Room struct {
	RoomID   int    `json:"room_id" bson:"_id" validate:"omitempty,min=1"`
	Opening  string `json:"opening" bson:"opening" validate:"required,clock_time"`
	Closing  string `json:"closing" bson:"closing" validate:"required,clock_time"`
	Capacity int    `json:"capacity" bson:"capacity" validate:"required,min=1,max=500"`
}
