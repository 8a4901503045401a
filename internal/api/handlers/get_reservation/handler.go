package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	"github.com/wildgrove/resort-booking-service/internal/service/reservations"
)

const (
	msgMissingReservationNo = "не указан номер бронирования"
	msgMissingEmail         = "не указан email гостя"
	msgReservationNotFound  = "бронирование не найдено"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationNo}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationNo := mux.Vars(r)["reservationNo"]
	if reservationNo == "" {
		handlers.RespondBadRequest(w, msgMissingReservationNo)
		return
	}

	result, err := h.service.GetByReservationNo(r.Context(), reservationNo)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{no} - Not found: no=%s", reservationNo)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{no} - Invalid input: no=%s", reservationNo)
			handlers.RespondBadRequest(w, msgMissingReservationNo)

		default:
			h.logger.Error("GET /reservations/{no} - Failed to fetch reservation: no=%s, error=%v",
				reservationNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{no} - Reservation fetched: no=%s", reservationNo)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleByEmail GET /api/v1/reservations?email=...
func (h *Handler) HandleByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid email: %s", email)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /reservations - Failed to fetch reservations: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Fetched %d reservations: email=%s", len(result), email)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponseList(result))
}
