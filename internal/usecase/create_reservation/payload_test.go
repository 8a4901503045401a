package create_reservation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/pricing"
	createReservation "github.com/wildgrove/resort-booking-service/internal/usecase/create_reservation"
)

var payloadNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func payloadRoom() *domain.RoomOffer {
	return &domain.RoomOffer{
		RoomRateID:         "RR1",
		RateTypeID:         "RT1",
		RoomTypeID:         "RM1",
		Name:               "Forest Bathtub",
		BaseAdultOccupancy: 2,
		BaseRateByDate: map[string]float64{
			"2026-03-14": 10000,
			"2026-03-15": 9500,
		},
		ExtraAdultRateByDate: map[string]float64{
			"2026-03-14": 1000,
			"2026-03-15": 1000,
		},
	}
}

func payloadQuery(t *testing.T) domain.StayQuery {
	t.Helper()
	in, err := time.Parse(domain.DateFormat, "2026-03-14")
	require.NoError(t, err)
	return domain.StayQuery{
		CheckIn:  in,
		CheckOut: in.AddDate(0, 0, 2),
		Adults:   3,
		Children: 0,
		Rooms:    1,
	}
}

func payloadGuest() *domain.GuestDetails {
	return &domain.GuestDetails{
		FirstName: "Asha", LastName: "Nair", Email: "asha@example.com",
		Mobile: "+919800000000", Address: "12 Hill Rd", City: "Wayanad",
		State: "Kerala", Country: "India", ZipCode: "673121",
		SpecialRequest: "late check-in",
	}
}

func TestBuildReservationPayload(t *testing.T) {
	room := payloadRoom()
	query := payloadQuery(t)
	breakdown := pricing.ComputeBreakdown(room, query)

	payload, err := createReservation.BuildReservationPayload(room, query, breakdown, payloadGuest(), payloadNow)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", payload.CheckInDate)
	assert.Equal(t, "2026-03-16", payload.CheckOutDate)
	assert.Equal(t, "1", payload.NumberOfRooms)
	assert.Equal(t, "asha@example.com", payload.EmailAddress)
	assert.Equal(t, "late check-in", payload.Comment)
	assert.Equal(t, "", payload.Fax)

	room1 := payload.RoomDetails.Room1
	assert.Equal(t, "RR1", room1.RateplanID)
	assert.Equal(t, "RT1", room1.RatetypeID)
	assert.Equal(t, "RM1", room1.RoomtypeID)
	assert.Equal(t, "3", room1.NumberAdults)
	assert.Equal(t, "0", room1.NumberChildren)
	assert.Equal(t, "Asha", room1.FirstName)

	// Посуточные ставки со скидкой, без налога, по одной на ночь
	assert.Equal(t, "8000.00, 7600.00", room1.BaseRate)
	assert.Equal(t, "800.00, 800.00", room1.ExtraAdultRate)
	assert.Equal(t, "0.00, 0.00", room1.ExtraChildRate)
}

func TestBuildReservationPayload_RateStringsMatchNights(t *testing.T) {
	room := payloadRoom()
	query := payloadQuery(t)
	breakdown := pricing.ComputeBreakdown(room, query)

	payload, err := createReservation.BuildReservationPayload(room, query, breakdown, payloadGuest(), payloadNow)
	require.NoError(t, err)

	for _, rates := range []string{
		payload.RoomDetails.Room1.BaseRate,
		payload.RoomDetails.Room1.ExtraAdultRate,
		payload.RoomDetails.Room1.ExtraChildRate,
	} {
		assert.Len(t, strings.Split(rates, ", "), query.Nights())
	}
}

func TestBuildReservationPayload_RequiresEmail(t *testing.T) {
	room := payloadRoom()
	query := payloadQuery(t)
	breakdown := pricing.ComputeBreakdown(room, query)

	guest := payloadGuest()
	guest.Email = "   "

	_, err := createReservation.BuildReservationPayload(room, query, breakdown, guest, payloadNow)
	assert.ErrorIs(t, err, createReservation.ErrMissingGuestFields)
}

func TestBuildReservationPayload_RejectsPastCheckIn(t *testing.T) {
	room := payloadRoom()
	query := payloadQuery(t)
	breakdown := pricing.ComputeBreakdown(room, query)

	late := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)
	_, err := createReservation.BuildReservationPayload(room, query, breakdown, payloadGuest(), late)
	assert.ErrorIs(t, err, createReservation.ErrPastCheckIn)
}

func TestBuildReservationPayload_RejectsInconsistentBreakdown(t *testing.T) {
	room := payloadRoom()
	query := payloadQuery(t)

	// Расчет на одну ночь при двухночном проживании
	shortQuery := query
	shortQuery.CheckOut = query.CheckIn.AddDate(0, 0, 1)
	breakdown := pricing.ComputeBreakdown(room, shortQuery)

	_, err := createReservation.BuildReservationPayload(room, query, breakdown, payloadGuest(), payloadNow)
	assert.ErrorIs(t, err, createReservation.ErrInternal)
}
