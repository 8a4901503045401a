package domain

import (
	"math"
	"time"
)

// StayQuery describes the requested stay: date range, party composition and
// the number of rooms to request from the PMS. Rooms is computed from the
// party size by the occupancy rules, never entered by the guest.
type StayQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	Rooms    int
}

// Nights returns the number of nights in the stay, ceil((out-in)/1d).
// Zero or negative ranges return 0 and must be rejected by validation.
func (q StayQuery) Nights() int {
	if q.CheckIn.IsZero() || q.CheckOut.IsZero() {
		return 0
	}
	d := q.CheckOut.Sub(q.CheckIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// StayDates returns the ISO dates of every night of the stay, in order:
// check-in inclusive, check-out exclusive.
func (q StayQuery) StayDates() []string {
	nights := q.Nights()
	if nights <= 0 {
		return nil
	}
	dates := make([]string, 0, nights)
	for d := 0; d < nights; d++ {
		dates = append(dates, q.CheckIn.AddDate(0, 0, d).Format(DateFormat))
	}
	return dates
}
