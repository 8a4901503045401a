package models

import (
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// ReservationResponse модель бронирования для отдачи наружу
type ReservationResponse struct {
	ReservationNo string
	RoomName      string
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Rooms         int

	GuestFirstName string
	GuestLastName  string
	GuestEmail     string

	BaseDiscountedTotal float64
	GSTTotal            float64
	ExtraAdultsTotal    float64
	ExtraChildrenTotal  float64
	Total               float64
	Currency            string

	PaymentOrderID *string
	Status         string

	CreatedAt time.Time
}

// FromDomainReservation конвертирует доменную модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ReservationNo:       r.ReservationNo,
		RoomName:            r.RoomName,
		CheckIn:             r.CheckIn,
		CheckOut:            r.CheckOut,
		Adults:              r.Adults,
		Children:            r.Children,
		Rooms:               r.Rooms,
		GuestFirstName:      r.GuestFirstName,
		GuestLastName:       r.GuestLastName,
		GuestEmail:          r.GuestEmail,
		BaseDiscountedTotal: r.BaseDiscountedTotal,
		GSTTotal:            r.GSTTotal,
		ExtraAdultsTotal:    r.ExtraAdultsTotal,
		ExtraChildrenTotal:  r.ExtraChildrenTotal,
		Total:               r.Total,
		Currency:            r.Currency,
		PaymentOrderID:      r.PaymentOrderID,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(list))
	for i, r := range list {
		out[i] = FromDomainReservation(r)
	}
	return out
}
