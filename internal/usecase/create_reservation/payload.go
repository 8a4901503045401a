package create_reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
)

// rateSeparator разделитель посуточных ставок в rate-строках PMS
const rateSeparator = ", "

// BuildReservationPayload собирает тело запроса на создание бронирования
// в PMS из выбранного предложения, параметров проживания, рассчитанной
// стоимости и данных гостя.
//
// Rate-строки собираются из ставок СО СКИДКОЙ, по одному значению на ночь в
// порядке проживания. Ни rack rate, ни ставка с налогом не передаются: PMS
// начисляет собственный GST поверх полученной ставки, и передача ставки с
// налогом удвоила бы налог.
//
// Опциональные поля, которые PMS ожидает присутствующими, передаются пустой
// строкой, не опускаются.
func BuildReservationPayload(
	room *domain.RoomOffer,
	query domain.StayQuery,
	breakdown *domain.PriceBreakdown,
	guest *domain.GuestDetails,
	now time.Time,
) (*ezee.ReservationRequest, error) {
	if strings.TrimSpace(guest.Email) == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingGuestFields)
	}

	if isDateInPast(query.CheckIn, now) {
		return nil, fmt.Errorf("%w: check-in %s is before today",
			ErrPastCheckIn, query.CheckIn.Format(domain.DateFormat))
	}

	if len(breakdown.PerNight) != query.Nights() {
		return nil, fmt.Errorf("%w: breakdown covers %d nights, stay has %d",
			ErrInternal, len(breakdown.PerNight), query.Nights())
	}

	return &ezee.ReservationRequest{
		CheckInDate:   query.CheckIn.Format(domain.DateFormat),
		CheckOutDate:  query.CheckOut.Format(domain.DateFormat),
		NumberOfRooms: strconv.Itoa(query.Rooms),
		EmailAddress:  guest.Email,
		MobileNo:      guest.Mobile,
		Address:       guest.Address,
		City:          guest.City,
		State:         guest.State,
		Country:       guest.Country,
		ZipCode:       guest.ZipCode,
		Fax:           "",
		Comment:       guest.SpecialRequest,
		RoomDetails: ezee.RoomDetails{
			Room1: ezee.RoomDetail{
				RateplanID:     room.RoomRateID,
				RatetypeID:     room.RateTypeID,
				RoomtypeID:     room.RoomTypeID,
				BaseRate:       joinRates(breakdown.NightlyBaseRates()),
				ExtraAdultRate: joinRates(breakdown.NightlyExtraAdultRates()),
				ExtraChildRate: joinRates(breakdown.NightlyExtraChildRates()),
				NumberAdults:   strconv.Itoa(query.Adults),
				NumberChildren: strconv.Itoa(query.Children),
				FirstName:      guest.FirstName,
				LastName:       guest.LastName,
				Gender:         "",
				SpecialRequest: guest.SpecialRequest,
			},
		},
	}, nil
}

// joinRates форматирует посуточные ставки в строку вида "8000.00, 7600.00"
func joinRates(rates []float64) string {
	tokens := make([]string, len(rates))
	for i, r := range rates {
		tokens[i] = strconv.FormatFloat(r, 'f', 2, 64)
	}
	return strings.Join(tokens, rateSeparator)
}
