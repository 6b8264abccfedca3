package scheduling

import (
	"fmt"
	"math"
	"time"

	schedulingerrors "roomly/internal/scheduling/errors"
	"roomly/pkg/model"
)

// OpenHoursPerDay is the daily open span of a room in hours.
func OpenHoursPerDay(room *model.Room) (float64, error) {
	opening, err := ParseClockTime(room.Opening)
	if err != nil {
		return 0, err
	}
	closing, err := ParseClockTime(room.Closing)
	if err != nil {
		return 0, err
	}
	if !closing.After(opening) {
		return 0, fmt.Errorf("%w: room %d opens at %s and closes at %s",
			schedulingerrors.ErrInvalidRoomWindow, room.RoomID, room.Opening, room.Closing)
	}
	return closing.Sub(opening).Hours(), nil
}

// DistinctActiveDays counts the unique calendar dates among the booking start
// instants. The utilization denominator is derived entirely from observed
// bookings, so the percentage is only meaningful over the span that actually
// contains them.
func DistinctActiveDays(bookings []*model.Booking) (int, error) {
	days := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		start, err := ParseWireTime(b.Start)
		if err != nil {
			return 0, err
		}
		days[start.Format(dateLayout)] = struct{}{}
	}
	return len(days), nil
}

// OccupiedTime sums end minus start over one room's bookings.
func OccupiedTime(roomID int, bookings []*model.Booking) (time.Duration, error) {
	var total time.Duration
	for _, b := range bookings {
		if b.RoomID != roomID {
			continue
		}
		iv, err := NewInterval(b)
		if err != nil {
			return 0, err
		}
		total += iv.Duration()
	}
	return total, nil
}

// Utilization maps every room in the registry to the percentage of its open
// time consumed by bookings, rounded to the nearest whole percent. The open
// window per room is open-hours-per-day times the distinct active days in the
// snapshot. A zero open window (no active days) and a room without bookings
// both yield 0 rather than an error; a closing time at or before the opening
// time fails with ErrInvalidRoomWindow.
func Utilization(rooms []*model.Room, bookings []*model.Booking) (map[int]int, error) {
	activeDays, err := DistinctActiveDays(bookings)
	if err != nil {
		return nil, err
	}

	percentages := make(map[int]int, len(rooms))
	for _, room := range rooms {
		hoursPerDay, err := OpenHoursPerDay(room)
		if err != nil {
			return nil, err
		}

		openWindow := time.Duration(hoursPerDay * float64(activeDays) * float64(time.Hour))
		if openWindow <= 0 {
			percentages[room.RoomID] = 0
			continue
		}

		occupied, err := OccupiedTime(room.RoomID, bookings)
		if err != nil {
			return nil, err
		}

		percentages[room.RoomID] = int(math.Round(float64(occupied) / float64(openWindow) * 100))
	}
	return percentages, nil
}
