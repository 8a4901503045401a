package search_rooms

import (
	"errors"
	"net/http"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	searchRooms "github.com/wildgrove/resort-booking-service/internal/usecase/search_rooms"
)

const (
	msgInvalidParams     = "некорректные параметры поиска, ожидаются checkIn, checkOut (YYYY-MM-DD) и adults"
	msgInvalidInput      = "некорректный состав гостей"
	msgInvalidDateRange  = "дата выезда должна быть позже даты заезда"
	msgPastCheckIn       = "дата заезда уже прошла"
	msgUpstreamDown      = "сервис доступности временно недоступен"
	msgInternalSearchErr = "внутренняя ошибка поиска"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := SearchParams{
		CheckIn:  query.Get("checkIn"),
		CheckOut: query.Get("checkOut"),
		Adults:   query.Get("adults"),
		Children: query.Get("children"),
	}

	useCaseReq, err := params.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /rooms/search - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/search - Invalid date range: %s..%s", params.CheckIn, params.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, searchRooms.ErrPastCheckIn):
			h.logger.Warn("GET /rooms/search - Past check-in: %s", params.CheckIn)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, searchRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/search - Invalid input: adults=%s, children=%s", params.Adults, params.Children)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, searchRooms.ErrUpstream):
			h.logger.Error("GET /rooms/search - Upstream unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamDown)

		default:
			h.logger.Error("GET /rooms/search - Failed to search rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/search - Found %d offers: %s..%s, adults=%s, children=%s",
		len(result.Results), params.CheckIn, params.CheckOut, params.Adults, params.Children)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
