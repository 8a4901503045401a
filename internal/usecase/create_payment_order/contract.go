package create_payment_order

import (
	"context"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/razorpay"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByReservationNo(ctx context.Context, reservationNo string) (*domain.Reservation, error)
	SetPaymentOrder(ctx context.Context, reservationNo, orderID string) error
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*razorpay.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
