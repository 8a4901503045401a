package create_payment_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	createPaymentOrder "github.com/wildgrove/resort-booking-service/internal/usecase/create_payment_order"
)

const (
	msgMissingReservationNo = "не указан номер бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgAlreadyPaid          = "бронирование уже оплачено"
	msgGatewayDown          = "платежный шлюз временно недоступен"
)

type Handler struct {
	useCase CreatePaymentOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationNo}/payment-order
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationNo := mux.Vars(r)["reservationNo"]
	if reservationNo == "" {
		handlers.RespondBadRequest(w, msgMissingReservationNo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createPaymentOrder.Request{ReservationNo: reservationNo})
	if err != nil {
		switch {
		case errors.Is(err, createPaymentOrder.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{no}/payment-order - Invalid input: no=%s", reservationNo)
			handlers.RespondBadRequest(w, msgMissingReservationNo)

		case errors.Is(err, createPaymentOrder.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{no}/payment-order - Not found: no=%s", reservationNo)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, createPaymentOrder.ErrAlreadyPaid):
			h.logger.Warn("POST /reservations/{no}/payment-order - Already paid: no=%s", reservationNo)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, createPaymentOrder.ErrUpstream):
			h.logger.Error("POST /reservations/{no}/payment-order - Gateway unavailable: %v", err)
			handlers.RespondBadGateway(w, msgGatewayDown)

		default:
			h.logger.Error("POST /reservations/{no}/payment-order - Failed to create order: no=%s, error=%v",
				reservationNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{no}/payment-order - Order created: no=%s, order=%s, amount=%d",
		reservationNo, result.OrderID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
