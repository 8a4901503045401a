package ezee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testQuery(t *testing.T) domain.StayQuery {
	t.Helper()
	in, err := time.Parse(domain.DateFormat, "2026-03-14")
	require.NoError(t, err)
	return domain.StayQuery{
		CheckIn:  in,
		CheckOut: in.AddDate(0, 0, 2),
		Adults:   2,
		Children: 1,
		Rooms:    1,
	}
}

func TestSearchAvailability_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/availability", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "HC1", body["hotelCode"])
		assert.Equal(t, "AC1", body["authCode"])
		assert.Equal(t, "2026-03-14", body["checkIn"])
		assert.Equal(t, "2026-03-16", body["checkOut"])
		assert.Equal(t, float64(1), body["rooms"])

		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"roomRateId": "RR1", "roomName": "Glass Cottage", "rackRate": "10000"},
				{"roomRateId": "RR2", "name": "Jungle Loft", "rackRate": 8500}
			]
		}`))
	}))
	defer srv.Close()

	client := ezee.NewClient(srv.URL, "HC1", "AC1", 5*time.Second, nopLogger{})

	offers, err := client.SearchAvailability(context.Background(), testQuery(t))
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Glass Cottage", offers[0].Name)
	assert.Equal(t, 10000.0, offers[0].RackRate)
	assert.Equal(t, "Jungle Loft", offers[1].Name)
}

func TestSearchAvailability_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "no inventory"}`))
	}))
	defer srv.Close()

	client := ezee.NewClient(srv.URL, "HC1", "AC1", 5*time.Second, nopLogger{})

	_, err := client.SearchAvailability(context.Background(), testQuery(t))
	assert.ErrorIs(t, err, ezee.ErrSearchRejected)
	assert.Contains(t, err.Error(), "no inventory")
}

func TestSearchAvailability_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := ezee.NewClient(srv.URL, "HC1", "AC1", 5*time.Second, nopLogger{})

	_, err := client.SearchAvailability(context.Background(), testQuery(t))
	assert.ErrorIs(t, err, ezee.ErrUnavailable)
}

func TestCreateReservation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reservations", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// Креденшалы проставляются клиентом, не вызывающим кодом
		assert.Equal(t, "HC1", body["hotelCode"])
		assert.Equal(t, "AC1", body["authCode"])

		_, _ = w.Write([]byte(`{"success": true, "data": {"ReservationNo": "EZ-1001"}}`))
	}))
	defer srv.Close()

	client := ezee.NewClient(srv.URL, "HC1", "AC1", 5*time.Second, nopLogger{})

	no, err := client.CreateReservation(context.Background(), &ezee.ReservationRequest{
		CheckInDate:  "2026-03-14",
		CheckOutDate: "2026-03-16",
	})
	require.NoError(t, err)
	assert.Equal(t, "EZ-1001", no)
}

func TestCreateReservation_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"explicit failure", `{"success": false, "message": "room sold out"}`},
		{"success without number", `{"success": true, "data": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := ezee.NewClient(srv.URL, "HC1", "AC1", 5*time.Second, nopLogger{})

			_, err := client.CreateReservation(context.Background(), &ezee.ReservationRequest{})
			assert.ErrorIs(t, err, ezee.ErrBookingRejected)
		})
	}
}
