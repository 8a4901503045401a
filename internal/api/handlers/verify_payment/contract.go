package verify_payment

import (
	"context"

	"github.com/wildgrove/resort-booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	ConfirmPayment(ctx context.Context, reservationNo, orderID, paymentID, signature string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
