package search_rooms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	"github.com/wildgrove/resort-booking-service/internal/domain"
	searchRooms "github.com/wildgrove/resort-booking-service/internal/usecase/search_rooms"
)

// SearchParams параметры строки запроса поиска
type SearchParams struct {
	CheckIn  string // "2026-03-14"
	CheckOut string
	Adults   string
	Children string
}

// DisplayRateResponse цена репрезентативной ночи для списочного вида
type DisplayRateResponse struct {
	RackRate   float64 `json:"rackRate"`
	Discounted float64 `json:"discounted"`
	GST        float64 `json:"gst"`
	Total      float64 `json:"total"`
}

// RoomResultResponse одно предложение номера в выдаче поиска
type RoomResultResponse struct {
	Offer              *handlers.RoomOfferPayload `json:"offer"`
	DisplayRate        *DisplayRateResponse       `json:"displayRate,omitempty"`
	PricingUnavailable bool                       `json:"pricingUnavailable,omitempty"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Rooms   int                   `json:"rooms"`
	Nights  int                   `json:"nights"`
	Results []*RoomResultResponse `json:"results"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func (p *SearchParams) ToUseCaseRequest() (*searchRooms.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, p.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse check-in date: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, p.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse check-out date: %w", err)
	}

	adults, err := strconv.Atoi(p.Adults)
	if err != nil {
		return nil, fmt.Errorf("parse adults: %w", err)
	}

	// Дети опциональны, пустое значение означает ноль
	children := 0
	if p.Children != "" {
		children, err = strconv.Atoi(p.Children)
		if err != nil {
			return nil, fmt.Errorf("parse children: %w", err)
		}
	}

	return &searchRooms.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   adults,
		Children: children,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchRooms.Response) *SearchResponse {
	results := make([]*RoomResultResponse, len(resp.Results))
	for i, r := range resp.Results {
		result := &RoomResultResponse{
			Offer:              handlers.FromDomainRoomOffer(r.Offer),
			PricingUnavailable: r.PricingUnavailable,
		}
		if !r.PricingUnavailable {
			result.DisplayRate = &DisplayRateResponse{
				RackRate:   r.DisplayRate.RackRate,
				Discounted: r.DisplayRate.Discounted,
				GST:        r.DisplayRate.GST,
				Total:      r.DisplayRate.Total,
			}
		}
		results[i] = result
	}

	return &SearchResponse{
		Rooms:   resp.Rooms,
		Nights:  resp.Nights,
		Results: results,
	}
}
