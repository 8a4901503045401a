package handlers

import "github.com/wildgrove/resort-booking-service/internal/domain"

// NightChargePayload JSON представление стоимости одной ночи
type NightChargePayload struct {
	Date           string  `json:"date"`
	BaseRackRate   float64 `json:"baseRackRate"`
	BaseRate       float64 `json:"baseRate"`
	ExtraAdultRate float64 `json:"extraAdultRate"`
	ExtraChildRate float64 `json:"extraChildRate"`
	GST            float64 `json:"gst"`
	Total          float64 `json:"total"`
}

// BreakdownPayload JSON представление расчета стоимости проживания
type BreakdownPayload struct {
	RoomRateID string `json:"roomRateId"`
	Currency   string `json:"currency"`

	Nights        int `json:"nights"`
	ExtraAdults   int `json:"extraAdults"`
	ExtraChildren int `json:"extraChildren"`

	BaseDiscountedTotal float64 `json:"baseDiscountedTotal"`
	GSTTotal            float64 `json:"gstTotal"`
	ExtraAdultsTotal    float64 `json:"extraAdultsTotal"`
	ExtraChildrenTotal  float64 `json:"extraChildrenTotal"`
	Total               float64 `json:"total"`

	PerNight []NightChargePayload `json:"perNight"`
}

// FromDomainBreakdown конвертирует расчет в payload
func FromDomainBreakdown(b *domain.PriceBreakdown) *BreakdownPayload {
	if b == nil {
		return nil
	}

	perNight := make([]NightChargePayload, len(b.PerNight))
	for i, n := range b.PerNight {
		perNight[i] = NightChargePayload{
			Date:           n.Date,
			BaseRackRate:   n.BaseRackRate,
			BaseRate:       n.BaseRate,
			ExtraAdultRate: n.ExtraAdultRate,
			ExtraChildRate: n.ExtraChildRate,
			GST:            n.GST,
			Total:          n.Total,
		}
	}

	return &BreakdownPayload{
		RoomRateID:          b.RoomRateID,
		Currency:            b.Currency,
		Nights:              b.Nights,
		ExtraAdults:         b.ExtraAdults,
		ExtraChildren:       b.ExtraChildren,
		BaseDiscountedTotal: b.BaseDiscountedTotal,
		GSTTotal:            b.GSTTotal,
		ExtraAdultsTotal:    b.ExtraAdultsTotal,
		ExtraChildrenTotal:  b.ExtraChildrenTotal,
		Total:               b.Total,
		PerNight:            perNight,
	}
}
