package create_reservation

import (
	"errors"
	"net/http"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	createReservation "github.com/wildgrove/resort-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные параметры бронирования"
	msgInvalidDateRange    = "дата выезда должна быть позже даты заезда"
	msgPastCheckIn         = "дата заезда уже прошла"
	msgMissingGuestFields  = "не заполнены обязательные поля гостя"
	msgOccupancyNotAllowed = "выбранный номер не вмещает указанный состав гостей"
	msgPricingUnavailable  = "для этого номера нет действующих тарифов"
	msgBookingRejected     = "система отеля отклонила бронирование"
	msgUpstreamDown        = "система отеля временно недоступна"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidDateRange):
			h.logger.Warn("POST /reservations - Invalid date range: %s..%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createReservation.ErrPastCheckIn):
			h.logger.Warn("POST /reservations - Past check-in: %s", req.CheckIn)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, createReservation.ErrMissingGuestFields):
			h.logger.Warn("POST /reservations - Missing guest fields: room=%s, error=%v", req.Offer.RoomRateID, err)
			handlers.RespondBadRequest(w, msgMissingGuestFields)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: room=%s, error=%v", req.Offer.RoomRateID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrOccupancyNotAllowed):
			h.logger.Warn("POST /reservations - Occupancy not allowed: room=%s, adults=%d, children=%d",
				req.Offer.RoomRateID, req.Adults, req.Children)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOccupancyNotAllowed)

		case errors.Is(err, createReservation.ErrPricingUnavailable):
			h.logger.Warn("POST /reservations - Pricing unavailable: room=%s", req.Offer.RoomRateID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		case errors.Is(err, createReservation.ErrBookingRejected):
			h.logger.Warn("POST /reservations - Booking rejected by PMS: room=%s, error=%v",
				req.Offer.RoomRateID, err)
			handlers.RespondConflict(w, msgBookingRejected)

		case errors.Is(err, createReservation.ErrUpstream):
			h.logger.Error("POST /reservations - PMS unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamDown)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room=%s, error=%v",
				req.Offer.RoomRateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: no=%s, room=%s, total=%.2f",
		result.ReservationNo, result.RoomName, result.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
