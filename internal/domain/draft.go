package domain

import "errors"

// Draft step ordering mirrors the four-step wizard: dates → room → guest
// details → payment.
type DraftStep int

const (
	StepDates DraftStep = iota
	StepRoom
	StepGuestInfo
	StepPayment
)

var (
	// ErrDraftNoQuery returned when the draft is created without a valid stay
	ErrDraftNoQuery = errors.New("draft: stay query is invalid")

	// ErrDraftRoomMismatch returned when the attached breakdown was computed
	// for a different room offer than the one selected
	ErrDraftRoomMismatch = errors.New("draft: breakdown does not match selected room")

	// ErrDraftStaleBreakdown returned when the attached breakdown covers a
	// different number of nights than the draft's stay
	ErrDraftStaleBreakdown = errors.New("draft: breakdown is stale for this stay")

	// ErrDraftIncomplete returned when a later step is entered before the
	// earlier steps are complete
	ErrDraftIncomplete = errors.New("draft: previous wizard step incomplete")
)

// BookingDraft is the session-scoped aggregate of the booking wizard. It is
// never persisted; it exists to enforce step ordering, in particular that a
// reservation payload is only ever built from a breakdown computed for the
// exact room offer the guest selected.
type BookingDraft struct {
	Query     StayQuery
	Room      *RoomOffer
	Breakdown *PriceBreakdown
	Guest     *GuestDetails

	step DraftStep
}

// NewBookingDraft starts a draft after the dates step. The query must
// describe at least one night and at least one adult.
func NewBookingDraft(query StayQuery) (*BookingDraft, error) {
	if query.Nights() < 1 || query.Adults < 1 || query.Children < 0 {
		return nil, ErrDraftNoQuery
	}
	return &BookingDraft{Query: query, step: StepRoom}, nil
}

// Step returns the step the draft is currently waiting on.
func (d *BookingDraft) Step() DraftStep {
	return d.step
}

// SelectRoom records the chosen offer together with its validated breakdown.
// The breakdown must have been computed for this exact offer and this stay;
// a swapped room reference or a stale breakdown is rejected.
func (d *BookingDraft) SelectRoom(room *RoomOffer, breakdown *PriceBreakdown) error {
	if d.step < StepRoom {
		return ErrDraftIncomplete
	}
	if room == nil || breakdown == nil {
		return ErrDraftRoomMismatch
	}
	if breakdown.RoomRateID != room.RoomRateID {
		return ErrDraftRoomMismatch
	}
	if breakdown.Nights != d.Query.Nights() {
		return ErrDraftStaleBreakdown
	}

	d.Room = room
	d.Breakdown = breakdown
	d.step = StepGuestInfo
	return nil
}

// AttachGuest records the guest details entered on step three.
func (d *BookingDraft) AttachGuest(guest *GuestDetails) error {
	if d.step < StepGuestInfo || d.Room == nil || d.Breakdown == nil {
		return ErrDraftIncomplete
	}
	if guest == nil {
		return ErrDraftIncomplete
	}

	d.Guest = guest
	d.step = StepPayment
	return nil
}

// ReadyForReservation reports whether every step before payment is complete.
func (d *BookingDraft) ReadyForReservation() bool {
	return d.step >= StepPayment && d.Room != nil && d.Breakdown != nil && d.Guest != nil
}
