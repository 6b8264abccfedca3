package scheduling

import (
	"time"

	"roomly/pkg/model"
)

// Interval is a booking's time span tagged with its room. Intervals on
// different rooms are never comparable. A zero-length or inverted interval is
// passed through as-is; ordering of the boundaries is the creator's concern.
type Interval struct {
	RoomID int
	Start  time.Time
	End    time.Time
}

// NewInterval normalizes a booking's wire timestamps into an Interval.
func NewInterval(b *model.Booking) (Interval, error) {
	start, err := ParseWireTime(b.Start)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseWireTime(b.End)
	if err != nil {
		return Interval{}, err
	}
	return Interval{RoomID: b.RoomID, Start: start, End: end}, nil
}

// Overlaps reports strict half-open intersection: back-to-back intervals
// where one's end equals the other's start do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.RoomID != other.RoomID {
		return false
	}
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether the instant falls inside the interval with
// INCLUSIVE bounds on both ends. This is deliberately asymmetric with
// Overlaps; availability checks treat an instant equal to End as busy.
func (iv Interval) Contains(at time.Time) bool {
	return !at.Before(iv.Start) && !at.After(iv.End)
}

// Duration is End minus Start; negative for inverted intervals.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}
