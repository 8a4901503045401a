package pricing

import (
	"math"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Discounted applies the flat website discount to a nightly rate and rounds
// immediately. The rounded value is what both the guest sees and the PMS
// receives; deferring the rounding would let the two diverge.
func Discounted(rate float64) float64 {
	return Round2(sanitizeRate(rate) * (1 - domain.DiscountPercent/100))
}

// GSTFor computes the GST on a discounted rate. Below the threshold band a
// single flat 5% line applies. At or above it, SGST and CGST are computed and
// rounded independently before summing, matching the PMS's own invoice lines:
// one 18% computation rounds differently on odd cents.
func GSTFor(discounted float64, split bool) float64 {
	if split {
		sgst := Round2(discounted * domain.GSTSplitRate)
		cgst := Round2(discounted * domain.GSTSplitRate)
		return sgst + cgst
	}
	return Round2(discounted * domain.GSTFlatRate)
}

// NightRate is the priced single-night view of an offer, used for the
// "from X/night" room-list display.
type NightRate struct {
	RackRate   float64
	Discounted float64
	GST        float64
	Total      float64
}

// ComputeBreakdown prices one offer for one stay. Pure: identical inputs
// always produce identical output, so it is safe to recompute per request.
//
// Per night, in order: the pre-discount base rate picks the GST band, every
// rate kind is discounted and rounded, GST is applied per component, and the
// night's lines are accumulated into the running totals. Totals are sums over
// nights, never a per-night value multiplied out, because rates vary by date.
func ComputeBreakdown(room *domain.RoomOffer, query domain.StayQuery) *domain.PriceBreakdown {
	breakdown := &domain.PriceBreakdown{
		RoomRateID: room.RoomRateID,
		Currency:   domain.DefaultCurrency,
		Nights:     query.Nights(),
	}

	breakdown.ExtraAdults = max(0, query.Adults-room.BaseAdultOccupancy)
	breakdown.ExtraChildren = max(0, query.Children-room.BaseChildOccupancy)

	baseFallback := FallbackRate(room.BaseRateByDate, room.RackRate)
	extraAdultFallback := FallbackRate(room.ExtraAdultRateByDate, 0)
	extraChildFallback := FallbackRate(room.ExtraChildRateByDate, 0)

	for _, date := range query.StayDates() {
		baseRack := RateForDate(room.BaseRateByDate, baseFallback, date)
		baseDisc := Discounted(baseRack)

		// The band is always selected by the pre-discount base rate and
		// reused for the extra-guest rates of the same night.
		split := baseRack >= domain.GSTThreshold
		baseGST := GSTFor(baseDisc, split)

		extraAdultDisc := Discounted(RateForDate(room.ExtraAdultRateByDate, extraAdultFallback, date))
		extraAdultGST := GSTFor(extraAdultDisc, split)

		extraChildDisc := Discounted(RateForDate(room.ExtraChildRateByDate, extraChildFallback, date))
		extraChildGST := GSTFor(extraChildDisc, split)

		nightGST := baseGST +
			float64(breakdown.ExtraAdults)*extraAdultGST +
			float64(breakdown.ExtraChildren)*extraChildGST

		nightExtraAdults := float64(breakdown.ExtraAdults) * extraAdultDisc
		nightExtraChildren := float64(breakdown.ExtraChildren) * extraChildDisc

		breakdown.PerNight = append(breakdown.PerNight, domain.NightCharge{
			Date:           date,
			BaseRackRate:   baseRack,
			BaseRate:       baseDisc,
			ExtraAdultRate: extraAdultDisc,
			ExtraChildRate: extraChildDisc,
			GST:            nightGST,
			Total:          baseDisc + nightGST + nightExtraAdults + nightExtraChildren,
		})

		breakdown.BaseDiscountedTotal += baseDisc
		breakdown.GSTTotal += nightGST
		breakdown.ExtraAdultsTotal += nightExtraAdults
		breakdown.ExtraChildrenTotal += nightExtraChildren
	}

	breakdown.Total = breakdown.BaseDiscountedTotal +
		breakdown.GSTTotal +
		breakdown.ExtraAdultsTotal +
		breakdown.ExtraChildrenTotal

	return breakdown
}

// DisplayNightRate prices a single representative night (the earliest date
// with a rate, else the fallback) with zero extra guests. It reuses the exact
// discount and GST logic of ComputeBreakdown so the list-view price can never
// disagree with the detailed breakdown.
func DisplayNightRate(room *domain.RoomOffer) NightRate {
	rack := FallbackRate(room.BaseRateByDate, room.RackRate)
	disc := Discounted(rack)
	gst := GSTFor(disc, rack >= domain.GSTThreshold)

	return NightRate{
		RackRate:   rack,
		Discounted: disc,
		GST:        gst,
		Total:      disc + gst,
	}
}
