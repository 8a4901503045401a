package domain

import "time"

// ReservationStatus represents the payment state of a stored reservation
type ReservationStatus string

const (
	StatusPaymentPending ReservationStatus = "payment_pending"
	StatusPaid           ReservationStatus = "paid"
	StatusPaymentFailed  ReservationStatus = "payment_failed"
	StatusCancelled      ReservationStatus = "cancelled"
)

// Reservation is the denormalized record of a reservation created in the PMS,
// kept for the confirmation page and for payment reconciliation.
type Reservation struct {
	ID            int64
	ReservationNo string

	RoomRateID string
	RoomName   string

	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	Rooms    int

	GuestFirstName string
	GuestLastName  string
	GuestEmail     string
	GuestMobile    string

	BaseDiscountedTotal float64
	GSTTotal            float64
	ExtraAdultsTotal    float64
	ExtraChildrenTotal  float64
	Total               float64
	Currency            string

	PaymentOrderID *string
	Status         ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanAcceptPayment returns true if a payment order may be created or settled
// against this reservation.
func (r *Reservation) CanAcceptPayment() bool {
	return r.Status == StatusPaymentPending || r.Status == StatusPaymentFailed
}

// IsPaid returns true once payment has been captured and verified.
func (r *Reservation) IsPaid() bool {
	return r.Status == StatusPaid
}
