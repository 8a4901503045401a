package search_rooms

import (
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/pricing"
)

// Request модель запроса поиска номеров.
// Количество номеров не передается: оно вычисляется из состава гостей
type Request struct {
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

// RoomResult одно предложение номера с ценой для списочного вида
type RoomResult struct {
	Offer *domain.RoomOffer

	// DisplayRate цена одной репрезентативной ночи ("от X за ночь")
	DisplayRate pricing.NightRate

	// PricingUnavailable true, когда у предложения нет ставок вообще.
	// Такое предложение показывается без цены, но не бронируется за 0
	PricingUnavailable bool
}

// Response результат поиска
type Response struct {
	Rooms   int
	Nights  int
	Results []RoomResult
}
