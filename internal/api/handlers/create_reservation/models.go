package create_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/api/handlers"
	"github.com/wildgrove/resort-booking-service/internal/domain"
	createReservation "github.com/wildgrove/resort-booking-service/internal/usecase/create_reservation"
)

// GuestPayload данные гостя с шага ввода персональной информации
type GuestPayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	ZipCode        string `json:"zipCode"`
	SpecialRequest string `json:"specialRequest,omitempty"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Offer    *handlers.RoomOfferPayload `json:"offer"`
	CheckIn  string                     `json:"checkIn"`  // "2026-03-14"
	CheckOut string                     `json:"checkOut"` // "2026-03-16"
	Adults   int                        `json:"adults"`
	Children int                        `json:"children"`
	Guest    GuestPayload               `json:"guest"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationNo string                     `json:"reservationNo"`
	RoomName      string                     `json:"roomName"`
	CheckIn       string                     `json:"checkIn"`
	CheckOut      string                     `json:"checkOut"`
	Rooms         int                        `json:"rooms"`
	Breakdown     *handlers.BreakdownPayload `json:"breakdown"`
	Status        string                     `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
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

	return &createReservation.Request{
		Offer:    r.Offer.ToDomain(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   r.Adults,
		Children: r.Children,
		Guest: domain.GuestDetails{
			FirstName:      r.Guest.FirstName,
			LastName:       r.Guest.LastName,
			Email:          r.Guest.Email,
			Mobile:         r.Guest.Mobile,
			Address:        r.Guest.Address,
			City:           r.Guest.City,
			State:          r.Guest.State,
			Country:        r.Guest.Country,
			ZipCode:        r.Guest.ZipCode,
			SpecialRequest: r.Guest.SpecialRequest,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationNo: resp.ReservationNo,
		RoomName:      resp.RoomName,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Rooms:         resp.Rooms,
		Breakdown:     handlers.FromDomainBreakdown(resp.Breakdown),
		Status:        resp.Status,
	}
}
