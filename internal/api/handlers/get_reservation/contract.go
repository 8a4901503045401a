package get_reservation

import (
	"context"

	"github.com/wildgrove/resort-booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByReservationNo(ctx context.Context, reservationNo string) (*models.ReservationResponse, error)
	GetByEmail(ctx context.Context, email string) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
