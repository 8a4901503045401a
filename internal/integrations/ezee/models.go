package ezee

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Модели обмена с PMS. Ответы приходят слабо типизированными: числа могут
// быть строками, поля могут отсутствовать. Вся нормализация собрана здесь,
// в одном месте, вместо fallback-цепочек по всему коду.

// flexFloat число, которое PMS может прислать как number, строку или null.
// Некорректные значения декодируются в 0, без ошибки.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

// flexInt целое с той же толерантностью к формату, что и flexFloat
type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		*i = 0
		return nil
	}
	*i = flexInt(f)
	return nil
}

// SearchRequest запрос доступности номеров
type SearchRequest struct {
	HotelCode string `json:"hotelCode"`
	AuthCode  string `json:"authCode"`
	CheckIn   string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut  string `json:"checkOut"` // YYYY-MM-DD
	Rooms     int    `json:"rooms"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
}

// searchResponse ответ PMS на поиск доступности
type searchResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []rawRoomOffer `json:"data"`
}

// rawRoomOffer сырое представление предложения номера из ответа PMS
type rawRoomOffer struct {
	RoomRateID string `json:"roomRateId"`
	RateTypeID string `json:"rateTypeId"`
	RoomTypeID string `json:"roomTypeId"`

	RoomName       string `json:"roomName"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	MainImage      string `json:"mainImage"`
	CurrencySymbol string `json:"currencySymbol"`

	BaseAdultOccupancy flexInt `json:"baseAdultOccupancy"`
	BaseChildOccupancy flexInt `json:"baseChildOccupancy"`
	MaxAdultOccupancy  flexInt `json:"maxAdultOccupancy"`
	MaxChildOccupancy  flexInt `json:"maxChildOccupancy"`

	MinAvailableRooms flexInt            `json:"minAvailableRooms"`
	AvailableRooms    map[string]flexInt `json:"availableRooms"`

	RackRate             flexFloat            `json:"rackRate"`
	BaseRateByDate       map[string]flexFloat `json:"baseRateByDate"`
	ExtraAdultRateByDate map[string]flexFloat `json:"extraAdultRateByDate"`
	ExtraChildRateByDate map[string]flexFloat `json:"extraChildRateByDate"`
}

// toDomain нормализует сырое предложение в строго типизированный RoomOffer
func (r rawRoomOffer) toDomain() *domain.RoomOffer {
	name := r.RoomName
	if name == "" {
		name = r.Name
	}

	currency := r.CurrencySymbol
	if currency == "" {
		currency = "₹"
	}

	offer := &domain.RoomOffer{
		RoomRateID: r.RoomRateID,
		RateTypeID: r.RateTypeID,
		RoomTypeID: r.RoomTypeID,

		Name:           name,
		Description:    r.Description,
		MainImage:      r.MainImage,
		CurrencySymbol: currency,

		BaseAdultOccupancy: int(r.BaseAdultOccupancy),
		BaseChildOccupancy: int(r.BaseChildOccupancy),
		MaxAdultOccupancy:  int(r.MaxAdultOccupancy),
		MaxChildOccupancy:  int(r.MaxChildOccupancy),

		MinAvailableRooms: int(r.MinAvailableRooms),

		RackRate:             float64(r.RackRate),
		BaseRateByDate:       toFloatMap(r.BaseRateByDate),
		ExtraAdultRateByDate: toFloatMap(r.ExtraAdultRateByDate),
		ExtraChildRateByDate: toFloatMap(r.ExtraChildRateByDate),
	}

	if len(r.AvailableRooms) > 0 {
		offer.AvailableRoomsByDate = make(map[string]int, len(r.AvailableRooms))
		for date, n := range r.AvailableRooms {
			offer.AvailableRoomsByDate[date] = int(n)
		}
		// minAvailableRooms может отсутствовать: берем минимум по датам
		if offer.MinAvailableRooms == 0 {
			offer.MinAvailableRooms = minOverDates(offer.AvailableRoomsByDate)
		}
	}

	return offer
}

func toFloatMap(m map[string]flexFloat) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = float64(v)
	}
	return out
}

func minOverDates(m map[string]int) int {
	first := true
	min := 0
	for _, n := range m {
		if first || n < min {
			min = n
			first = false
		}
	}
	return min
}

// RoomDetail данные одного номера в запросе на создание бронирования.
// Все rate-поля — строки вида "8000.00, 7600.00": по одному значению на ночь,
// в порядке проживания, со скидкой, но БЕЗ налога — PMS начисляет свой GST
// поверх переданной ставки.
type RoomDetail struct {
	RateplanID     string `json:"Rateplan_Id"`
	RatetypeID     string `json:"Ratetype_Id"`
	RoomtypeID     string `json:"Roomtype_Id"`
	BaseRate       string `json:"baserate"`
	ExtraAdultRate string `json:"extradultrate"`
	ExtraChildRate string `json:"extrachildrate"`
	NumberAdults   string `json:"number_adults"`
	NumberChildren string `json:"number_children"`
	FirstName      string `json:"First_Name"`
	LastName       string `json:"Last_Name"`
	Gender         string `json:"Gender"`
	SpecialRequest string `json:"Special_Request"`
}

// RoomDetails контейнер номеров бронирования
type RoomDetails struct {
	Room1 RoomDetail `json:"Room_1"`
}

// ReservationRequest запрос на создание бронирования в PMS
type ReservationRequest struct {
	HotelCode     string      `json:"hotelCode"`
	AuthCode      string      `json:"authCode"`
	CheckInDate   string      `json:"check_in_date"`
	CheckOutDate  string      `json:"check_out_date"`
	NumberOfRooms string      `json:"number_of_rooms"`
	EmailAddress  string      `json:"Email_Address"`
	MobileNo      string      `json:"MobileNo"`
	Address       string      `json:"Address"`
	City          string      `json:"City"`
	State         string      `json:"State"`
	Country       string      `json:"Country"`
	ZipCode       string      `json:"Zipcode"`
	Fax           string      `json:"Fax"`
	Comment       string      `json:"Comment"`
	RoomDetails   RoomDetails `json:"Room_Details"`
}

// reservationResponse ответ PMS на создание бронирования
type reservationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ReservationNo string `json:"ReservationNo"`
	} `json:"data"`
}
