package quote_stay

import (
	"errors"
	"net/http"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	quoteStay "github.com/wildgrove/resort-booking-service/internal/usecase/quote_stay"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidQuoteInput    = "некорректные параметры расчета, ожидаются offer, checkIn, checkOut (YYYY-MM-DD) и adults"
	msgInvalidDateRange     = "дата выезда должна быть позже даты заезда"
	msgPastCheckIn          = "дата заезда уже прошла"
	msgOccupancyNotAllowed  = "выбранный номер не вмещает указанный состав гостей"
	msgPricingUnavailable   = "для этого номера нет действующих тарифов"
	msgInternalQuoteFailure = "внутренняя ошибка расчета стоимости"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuoteInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrInvalidDateRange):
			h.logger.Warn("POST /quotes - Invalid date range: %s..%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, quoteStay.ErrPastCheckIn):
			h.logger.Warn("POST /quotes - Past check-in: %s", req.CheckIn)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: adults=%d, children=%d", req.Adults, req.Children)
			handlers.RespondBadRequest(w, msgInvalidQuoteInput)

		case errors.Is(err, quoteStay.ErrOccupancyNotAllowed):
			h.logger.Warn("POST /quotes - Occupancy not allowed: room=%s, adults=%d, children=%d",
				req.Offer.RoomRateID, req.Adults, req.Children)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOccupancyNotAllowed)

		case errors.Is(err, quoteStay.ErrPricingUnavailable):
			h.logger.Warn("POST /quotes - Pricing unavailable: room=%s", req.Offer.RoomRateID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPricingUnavailable)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: room=%s, error=%v", req.Offer.RoomRateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: room=%s, nights=%d, total=%.2f",
		req.Offer.RoomRateID, result.Breakdown.Nights, result.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
