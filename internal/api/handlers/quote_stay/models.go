package quote_stay

import (
	"errors"
	"fmt"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	"github.com/wildgrove/resort-booking-service/internal/domain"
	quoteStay "github.com/wildgrove/resort-booking-service/internal/usecase/quote_stay"
)

// QuoteRequest HTTP request model. Предложение передается целиком, как его
// выдал поиск: сервис не хранит состояние между шагами мастера
type QuoteRequest struct {
	Offer    *handlers.RoomOfferPayload `json:"offer"`
	CheckIn  string                     `json:"checkIn"`  // "2026-03-14"
	CheckOut string                     `json:"checkOut"` // "2026-03-16"
	Adults   int                        `json:"adults"`
	Children int                        `json:"children"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Rooms     int                        `json:"rooms"`
	Breakdown *handlers.BreakdownPayload `json:"breakdown"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteStay.Request, error) {
	if r.Offer == nil {
		return nil, errors.New("offer is required")
	}

	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse check-in date: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse check-out date: %w", err)
	}

	return &quoteStay.Request{
		Offer:    r.Offer.ToDomain(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   r.Adults,
		Children: r.Children,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		Rooms:     resp.Rooms,
		Breakdown: handlers.FromDomainBreakdown(resp.Breakdown),
	}
}
