package errors

import "errors"

var (
	// ErrMalformedTimestamp reports a time string that does not match the
	// wire format (YYYY-MM-DDTHH:MMZ) or the clock format (HH:MM).
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrInvalidRoomWindow reports a room whose closing time is not after
	// its opening time.
	ErrInvalidRoomWindow = errors.New("room closing time must be after opening time")

	// ErrRoomNotFound reports a query against a room absent from the registry.
	ErrRoomNotFound = errors.New("room not found")
)
