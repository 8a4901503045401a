// Package pricing re-derives the per-night price of a stay: flat website
// discount, GST band selection, extra-guest surcharges and the full breakdown.
// The discounted nightly values computed here are transmitted verbatim to the
// PMS, which recomputes the reservation from them; every rounding step is
// therefore part of the contract, not a display concern.
package pricing

import (
	"math"
	"sort"
)

// sanitizeRate coerces malformed numeric input to a safe zero. NaN, infinite
// and negative rates never propagate into a charge.
func sanitizeRate(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// RateForDate returns the nightly rate for the given ISO date, or fallback
// when the date is absent from the map. Sparse maps are legitimate; the
// fallback must be the one precomputed for the same offer so that all three
// rate kinds degrade consistently.
func RateForDate(rates map[string]float64, fallback float64, date string) float64 {
	if rates != nil {
		if v, ok := rates[date]; ok {
			return sanitizeRate(v)
		}
	}
	return sanitizeRate(fallback)
}

// FallbackRate precomputes the per-offer fallback for one rate map: the value
// of the earliest date present, else the rack rate, else 0. The earliest date
// is a deterministic stand-in for "the first entry" of the upstream payload,
// whose rate tables are keyed chronologically.
func FallbackRate(rates map[string]float64, rackRate float64) float64 {
	if len(rates) > 0 {
		return sanitizeRate(rates[earliestDate(rates)])
	}
	return sanitizeRate(rackRate)
}

func earliestDate(rates map[string]float64) string {
	keys := make([]string, 0, len(rates))
	for k := range rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}
