package quote_stay

import (
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Request модель запроса расчета стоимости проживания.
// Клиент возвращает предложение целиком, как его выдал поиск: сервис не
// хранит состояние между шагами мастера бронирования
type Request struct {
	Offer    *domain.RoomOffer
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

// Response результат расчета
type Response struct {
	Rooms     int
	Breakdown *domain.PriceBreakdown
}
