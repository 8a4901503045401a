package ezee

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `8500.5`, 8500.5},
		{"quoted number", `"8500.5"`, 8500.5},
		{"quoted integer", `"8500"`, 8500},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage string", `"N/A"`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, float64(f))
		})
	}
}

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"number", `3`, 3},
		{"quoted number", `"3"`, 3},
		{"float truncates", `2.9`, 2},
		{"null", `null`, 0},
		{"garbage", `"many"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i flexInt
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &i))
			assert.Equal(t, tt.want, int(i))
		})
	}
}

func TestRawRoomOffer_ToDomain(t *testing.T) {
	raw := []byte(`{
		"roomRateId": "RR1",
		"rateTypeId": "RT1",
		"roomTypeId": "RM1",
		"roomName": "Glass Cottage",
		"currencySymbol": "₹",
		"baseAdultOccupancy": "2",
		"maxAdultOccupancy": 2,
		"maxChildOccupancy": 1,
		"availableRooms": {"2026-03-14": 3, "2026-03-15": "2"},
		"rackRate": "10000",
		"baseRateByDate": {"2026-03-14": 10000, "2026-03-15": "9500.50"}
	}`)

	var r rawRoomOffer
	require.NoError(t, json.Unmarshal(raw, &r))

	offer := r.toDomain()
	assert.Equal(t, "RR1", offer.RoomRateID)
	assert.Equal(t, "Glass Cottage", offer.Name)
	assert.Equal(t, 2, offer.BaseAdultOccupancy)
	assert.Equal(t, 10000.0, offer.RackRate)
	assert.Equal(t, 9500.5, offer.BaseRateByDate["2026-03-15"])
	assert.Equal(t, map[string]int{"2026-03-14": 3, "2026-03-15": 2}, offer.AvailableRoomsByDate)

	// minAvailableRooms отсутствует — берется минимум по датам
	assert.Equal(t, 2, offer.MinAvailableRooms)
}

func TestRawRoomOffer_ToDomain_Fallbacks(t *testing.T) {
	// roomName отсутствует — используется name; символ валюты по умолчанию
	var r rawRoomOffer
	require.NoError(t, json.Unmarshal([]byte(`{"roomRateId": "RR2", "name": "Jungle Loft"}`), &r))

	offer := r.toDomain()
	assert.Equal(t, "Jungle Loft", offer.Name)
	assert.Equal(t, "₹", offer.CurrencySymbol)
	assert.Nil(t, offer.BaseRateByDate)
	assert.Equal(t, 0, offer.MinAvailableRooms)
}

func TestReservationRequest_WireFormat(t *testing.T) {
	req := &ReservationRequest{
		HotelCode:     "HC1",
		AuthCode:      "AC1",
		CheckInDate:   "2026-03-14",
		CheckOutDate:  "2026-03-16",
		NumberOfRooms: "1",
		EmailAddress:  "asha@example.com",
		RoomDetails: RoomDetails{
			Room1: RoomDetail{
				RateplanID: "RR1",
				BaseRate:   "8000.00, 7600.00",
			},
		},
	}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// PMS чувствителен к именам полей и требует пустые строки вместо omitempty
	assert.Equal(t, "2026-03-14", decoded["check_in_date"])
	assert.Equal(t, "1", decoded["number_of_rooms"])
	assert.Contains(t, decoded, "Zipcode")
	assert.Contains(t, decoded, "Fax")
	assert.Contains(t, decoded, "Comment")

	roomDetails, ok := decoded["Room_Details"].(map[string]interface{})
	require.True(t, ok)
	room1, ok := roomDetails["Room_1"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RR1", room1["Rateplan_Id"])
	assert.Equal(t, "8000.00, 7600.00", room1["baserate"])
	assert.Contains(t, room1, "extradultrate")
}
