package reservations

import (
	"context"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByReservationNo(ctx context.Context, reservationNo string) (*domain.Reservation, error)
	GetByEmail(ctx context.Context, email string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, reservationNo string, status domain.ReservationStatus) error
}

// PaymentGateway интерфейс платежного шлюза для проверки подписи платежа
type PaymentGateway interface {
	VerifyPaymentSignature(orderID, paymentID, signature string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
