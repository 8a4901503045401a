package domain

// Pricing constants
//
// These values are mirrored by the upstream PMS when it recomputes the
// reservation from the transmitted nightly rates. Changing any of them without
// a matching upstream change produces a charge/booking mismatch.
const (
	// DiscountPercent flat website discount applied to every nightly rate
	DiscountPercent = 20.0

	// GSTThreshold pre-discount nightly base rate at and above which the
	// split 9%+9% GST band applies instead of the flat 5% band
	GSTThreshold = 7500.0

	// GSTFlatRate GST rate for nights below the threshold
	GSTFlatRate = 0.05

	// GSTSplitRate SGST and CGST rate, each applied and rounded separately,
	// for nights at or above the threshold
	GSTSplitRate = 0.09
)

// Occupancy constants
const (
	// MaxRoomsPerBooking soft cap on the number of rooms a single booking
	// may request; larger parties are clamped to this many rooms
	MaxRoomsPerBooking = 4
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultCurrency currency code used for payment orders
const DefaultCurrency = "INR"
