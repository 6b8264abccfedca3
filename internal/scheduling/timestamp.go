// Package scheduling holds the pure consistency computations over booking
// snapshots: timestamp normalization, interval overlap detection, point-in-time
// availability and per-room utilization. Nothing here touches storage, logs,
// or keeps state between calls; every function works on the records its
// caller hands it.
package scheduling

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	schedulingerrors "roomly/internal/scheduling/errors"
)

const (
	// WireTimeLayout is the booking boundary format. The trailing Z is a
	// literal marker, not an offset: all instants live in one implicit clock.
	WireTimeLayout = "2006-01-02T15:04"

	// ClockTimeLayout is the room opening/closing format.
	ClockTimeLayout = "15:04"

	dateLayout = "2006-01-02"
)

var (
	wireTimeRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T([01][0-9]|2[0-3]):[0-5][0-9]Z$`)
	clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ParseWireTime converts a YYYY-MM-DDTHH:MMZ string into a comparable instant.
func ParseWireTime(s string) (time.Time, error) {
	if !wireTimeRegex.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DDTHH:MMZ)", schedulingerrors.ErrMalformedTimestamp, s)
	}
	t, err := time.Parse(WireTimeLayout, strings.TrimSuffix(s, "Z"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", schedulingerrors.ErrMalformedTimestamp, s, err)
	}
	return t, nil
}

// FormatWireTime is the inverse of ParseWireTime; parsing then formatting a
// valid wire string yields the original string.
func FormatWireTime(t time.Time) string {
	return t.Format(WireTimeLayout) + "Z"
}

// ParseClockTime converts an HH:MM time of day into a comparable value.
func ParseClockTime(s string) (time.Time, error) {
	if !clockTimeRegex.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q (expected HH:MM)", schedulingerrors.ErrMalformedTimestamp, s)
	}
	t, err := time.Parse(ClockTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", schedulingerrors.ErrMalformedTimestamp, s, err)
	}
	return t, nil
}
