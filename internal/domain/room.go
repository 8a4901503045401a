package domain

// RoomOffer represents one bookable room-rate-plan for a date range, as
// returned by the upstream availability search after normalization.
//
// The identifier fields are opaque tokens from the PMS and are passed through
// to the create-booking call untouched. The three rate maps are keyed by ISO
// date (YYYY-MM-DD) and may legitimately be sparse; missing dates resolve to a
// per-offer fallback rate.
type RoomOffer struct {
	RoomRateID string
	RateTypeID string
	RoomTypeID string

	Name           string
	Description    string
	MainImage      string
	CurrencySymbol string

	BaseAdultOccupancy int
	BaseChildOccupancy int
	MaxAdultOccupancy  int
	MaxChildOccupancy  int

	MinAvailableRooms    int
	AvailableRoomsByDate map[string]int

	RackRate             float64
	BaseRateByDate       map[string]float64
	ExtraAdultRateByDate map[string]float64
	ExtraChildRateByDate map[string]float64
}

// HasRates returns true if the offer carries any pricing data at all.
// An offer without rates prices to zero and must be surfaced as
// "pricing unavailable" rather than booked for free.
func (r *RoomOffer) HasRates() bool {
	return len(r.BaseRateByDate) > 0 || r.RackRate > 0
}

// RoomsAvailableOn returns the number of rooms available on the given date.
// Falls back to MinAvailableRooms when the per-date map is absent.
func (r *RoomOffer) RoomsAvailableOn(date string) int {
	if r.AvailableRoomsByDate == nil {
		return r.MinAvailableRooms
	}
	if n, ok := r.AvailableRoomsByDate[date]; ok {
		return n
	}
	return r.MinAvailableRooms
}
