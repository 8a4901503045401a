package create_reservation

import (
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования.
// Offer — предложение, выбранное гостем на шаге выбора номера, ровно в том
// виде, в каком его выдал поиск
type Request struct {
	Offer    *domain.RoomOffer
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
	Guest    domain.GuestDetails
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationNo string
	RoomName      string
	CheckIn       time.Time
	CheckOut      time.Time
	Rooms         int
	Breakdown     *domain.PriceBreakdown
	Status        string
}
