package get_reservation

import (
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationNo string `json:"reservationNo"`
	RoomName      string `json:"roomName"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Rooms         int    `json:"rooms"`

	GuestFirstName string `json:"guestFirstName"`
	GuestLastName  string `json:"guestLastName"`
	GuestEmail     string `json:"guestEmail"`

	BaseDiscountedTotal float64 `json:"baseDiscountedTotal"`
	GSTTotal            float64 `json:"gstTotal"`
	ExtraAdultsTotal    float64 `json:"extraAdultsTotal"`
	ExtraChildrenTotal  float64 `json:"extraChildrenTotal"`
	Total               float64 `json:"total"`
	Currency            string  `json:"currency"`

	PaymentOrderID *string `json:"paymentOrderId,omitempty"`
	Status         string  `json:"status"`

	CreatedAt string `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований гостя
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ReservationNo:       resp.ReservationNo,
		RoomName:            resp.RoomName,
		CheckIn:             resp.CheckIn.Format(domain.DateFormat),
		CheckOut:            resp.CheckOut.Format(domain.DateFormat),
		Adults:              resp.Adults,
		Children:            resp.Children,
		Rooms:               resp.Rooms,
		GuestFirstName:      resp.GuestFirstName,
		GuestLastName:       resp.GuestLastName,
		GuestEmail:          resp.GuestEmail,
		BaseDiscountedTotal: resp.BaseDiscountedTotal,
		GSTTotal:            resp.GSTTotal,
		ExtraAdultsTotal:    resp.ExtraAdultsTotal,
		ExtraChildrenTotal:  resp.ExtraChildrenTotal,
		Total:               resp.Total,
		Currency:            resp.Currency,
		PaymentOrderID:      resp.PaymentOrderID,
		Status:              resp.Status,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromServiceResponseList конвертирует список ответов сервиса
func FromServiceResponseList(list []*models.ReservationResponse) *ReservationListResponse {
	out := make([]*ReservationResponse, len(list))
	for i, r := range list {
		out[i] = FromServiceResponse(r)
	}
	return &ReservationListResponse{Reservations: out}
}
