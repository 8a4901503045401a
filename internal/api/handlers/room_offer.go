package handlers

import "github.com/wildgrove/resort-booking-service/internal/domain"

// RoomOfferPayload JSON представление предложения номера.
// Поиск отдает его клиенту, а шаги расчета и бронирования принимают его
// обратно: сервис не хранит состояние мастера между запросами
type RoomOfferPayload struct {
	RoomRateID string `json:"roomRateId"`
	RateTypeID string `json:"rateTypeId"`
	RoomTypeID string `json:"roomTypeId"`

	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	MainImage      string `json:"mainImage,omitempty"`
	CurrencySymbol string `json:"currencySymbol,omitempty"`

	BaseAdultOccupancy int `json:"baseAdultOccupancy"`
	BaseChildOccupancy int `json:"baseChildOccupancy"`
	MaxAdultOccupancy  int `json:"maxAdultOccupancy"`
	MaxChildOccupancy  int `json:"maxChildOccupancy"`

	MinAvailableRooms    int            `json:"minAvailableRooms,omitempty"`
	AvailableRoomsByDate map[string]int `json:"availableRoomsByDate,omitempty"`

	RackRate             float64            `json:"rackRate,omitempty"`
	BaseRateByDate       map[string]float64 `json:"baseRateByDate,omitempty"`
	ExtraAdultRateByDate map[string]float64 `json:"extraAdultRateByDate,omitempty"`
	ExtraChildRateByDate map[string]float64 `json:"extraChildRateByDate,omitempty"`
}

// ToDomain конвертирует payload в доменную модель
func (p *RoomOfferPayload) ToDomain() *domain.RoomOffer {
	if p == nil {
		return nil
	}
	return &domain.RoomOffer{
		RoomRateID:           p.RoomRateID,
		RateTypeID:           p.RateTypeID,
		RoomTypeID:           p.RoomTypeID,
		Name:                 p.Name,
		Description:          p.Description,
		MainImage:            p.MainImage,
		CurrencySymbol:       p.CurrencySymbol,
		BaseAdultOccupancy:   p.BaseAdultOccupancy,
		BaseChildOccupancy:   p.BaseChildOccupancy,
		MaxAdultOccupancy:    p.MaxAdultOccupancy,
		MaxChildOccupancy:    p.MaxChildOccupancy,
		MinAvailableRooms:    p.MinAvailableRooms,
		AvailableRoomsByDate: p.AvailableRoomsByDate,
		RackRate:             p.RackRate,
		BaseRateByDate:       p.BaseRateByDate,
		ExtraAdultRateByDate: p.ExtraAdultRateByDate,
		ExtraChildRateByDate: p.ExtraChildRateByDate,
	}
}

// FromDomainRoomOffer конвертирует доменную модель в payload
func FromDomainRoomOffer(o *domain.RoomOffer) *RoomOfferPayload {
	if o == nil {
		return nil
	}
	return &RoomOfferPayload{
		RoomRateID:           o.RoomRateID,
		RateTypeID:           o.RateTypeID,
		RoomTypeID:           o.RoomTypeID,
		Name:                 o.Name,
		Description:          o.Description,
		MainImage:            o.MainImage,
		CurrencySymbol:       o.CurrencySymbol,
		BaseAdultOccupancy:   o.BaseAdultOccupancy,
		BaseChildOccupancy:   o.BaseChildOccupancy,
		MaxAdultOccupancy:    o.MaxAdultOccupancy,
		MaxChildOccupancy:    o.MaxChildOccupancy,
		MinAvailableRooms:    o.MinAvailableRooms,
		AvailableRoomsByDate: o.AvailableRoomsByDate,
		RackRate:             o.RackRate,
		BaseRateByDate:       o.BaseRateByDate,
		ExtraAdultRateByDate: o.ExtraAdultRateByDate,
		ExtraChildRateByDate: o.ExtraChildRateByDate,
	}
}
