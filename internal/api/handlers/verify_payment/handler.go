package verify_payment

import (
	"errors"
	"net/http"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	"github.com/wildgrove/resort-booking-service/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingFields       = "не указаны номер бронирования, ордер, платеж или подпись"
	msgReservationNotFound = "бронирование не найдено"
	msgNotPayable          = "бронирование не ожидает оплаты"
	msgOrderMismatch       = "платежный ордер не относится к этому бронированию"
	msgSignatureInvalid    = "подпись платежа не прошла проверку"
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

// Handle POST /api/v1/payments/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ConfirmPayment(r.Context(),
		req.ReservationNo, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /payments/verify - Missing fields: no=%s", req.ReservationNo)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /payments/verify - Not found: no=%s", req.ReservationNo)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrNotPayable):
			h.logger.Warn("POST /payments/verify - Not payable: no=%s", req.ReservationNo)
			handlers.RespondConflict(w, msgNotPayable)

		case errors.Is(err, reservations.ErrOrderMismatch):
			h.logger.Warn("POST /payments/verify - Order mismatch: no=%s, order=%s",
				req.ReservationNo, req.RazorpayOrderID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOrderMismatch)

		case errors.Is(err, reservations.ErrSignatureInvalid):
			h.logger.Warn("POST /payments/verify - Signature invalid: no=%s, order=%s",
				req.ReservationNo, req.RazorpayOrderID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSignatureInvalid)

		default:
			h.logger.Error("POST /payments/verify - Failed to confirm payment: no=%s, error=%v",
				req.ReservationNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/verify - Payment confirmed: no=%s, order=%s",
		req.ReservationNo, req.RazorpayOrderID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
