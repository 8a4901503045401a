package domain

// NightCharge is the fully priced charge for a single night of the stay.
// Rates are the discounted per-room values rounded to 2 decimals; these exact
// values are what gets transmitted to the PMS in the reservation payload.
type NightCharge struct {
	Date string

	// BaseRackRate pre-discount nightly base rate; selects the GST band
	BaseRackRate float64

	BaseRate       float64 // discounted base rate
	ExtraAdultRate float64 // discounted extra-adult rate
	ExtraChildRate float64 // discounted extra-child rate

	GST   float64 // all GST lines of the night (base + extra guests)
	Total float64
}

// SplitGST reports whether the night falls into the split SGST+CGST band.
func (n NightCharge) SplitGST() bool {
	return n.BaseRackRate >= GSTThreshold
}

// PriceBreakdown is the output of the price engine for one RoomOffer and one
// StayQuery. Totals are night-by-night accumulations; Total always equals the
// sum of the four component totals to the cent.
type PriceBreakdown struct {
	RoomRateID string
	Currency   string

	Nights        int
	ExtraAdults   int
	ExtraChildren int

	BaseDiscountedTotal float64
	GSTTotal            float64
	ExtraAdultsTotal    float64
	ExtraChildrenTotal  float64
	Total               float64

	PerNight []NightCharge
}

// Zero reports whether the breakdown priced to nothing. A zero total on a
// non-empty stay signals missing rate data, not a free room.
func (b *PriceBreakdown) Zero() bool {
	return b.Total == 0
}

// NightlyBaseRates returns the discounted base rate of every night in stay
// order, one entry per night.
func (b *PriceBreakdown) NightlyBaseRates() []float64 {
	rates := make([]float64, len(b.PerNight))
	for i, n := range b.PerNight {
		rates[i] = n.BaseRate
	}
	return rates
}

// NightlyExtraAdultRates returns the discounted extra-adult rate per night.
func (b *PriceBreakdown) NightlyExtraAdultRates() []float64 {
	rates := make([]float64, len(b.PerNight))
	for i, n := range b.PerNight {
		rates[i] = n.ExtraAdultRate
	}
	return rates
}

// NightlyExtraChildRates returns the discounted extra-child rate per night.
func (b *PriceBreakdown) NightlyExtraChildRates() []float64 {
	rates := make([]float64, len(b.PerNight))
	for i, n := range b.PerNight {
		rates[i] = n.ExtraChildRate
	}
	return rates
}
