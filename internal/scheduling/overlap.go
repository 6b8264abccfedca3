package scheduling

import "roomly/pkg/model"

// OverlapPair is one unordered pair of bookings on the same room whose
// intervals intersect.
type OverlapPair struct {
	Booking1 *model.Booking `json:"booking1"`
	Booking2 *model.Booking `json:"booking2"`
}

// OverlapReport is the result of a full overlap scan. A report with no pairs
// means "checked, none found", which callers can distinguish from never
// having run the scan.
type OverlapReport struct {
	Pairs []OverlapPair `json:"pairs,omitempty"`
}

func (r *OverlapReport) HasOverlaps() bool {
	return len(r.Pairs) > 0
}

func (r *OverlapReport) Count() int {
	return len(r.Pairs)
}

// FindOverlaps scans every distinct unordered pair of bookings exactly once,
// in input order, and collects the pairs whose intervals intersect under the
// strict half-open predicate. Cost is O(n²) in the booking count, which is
// acceptable at the volumes this system sees.
//
// Timestamps are normalized up front; a malformed boundary fails the whole
// scan rather than silently skipping the booking.
func FindOverlaps(bookings []*model.Booking) (*OverlapReport, error) {
	intervals := make([]Interval, len(bookings))
	for i, b := range bookings {
		iv, err := NewInterval(b)
		if err != nil {
			return nil, err
		}
		intervals[i] = iv
	}

	report := &OverlapReport{}
	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			if bookings[i].ID == bookings[j].ID {
				continue
			}
			if intervals[i].Overlaps(intervals[j]) {
				report.Pairs = append(report.Pairs, OverlapPair{
					Booking1: bookings[i],
					Booking2: bookings[j],
				})
			}
		}
	}
	return report, nil
}
