package search_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
)

type fakePMS struct {
	offers   []*domain.RoomOffer
	err      error
	gotQuery domain.StayQuery
}

func (f *fakePMS) SearchAvailability(_ context.Context, query domain.StayQuery) ([]*domain.RoomOffer, error) {
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}

type fakeTime struct {
	now time.Time
}

func (f fakeTime) Now() time.Time {
	return f.now
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(pms *fakePMS) *UseCase {
	uc := NewUseCase(pms, testLogger{})
	uc.timeProvider = fakeTime{now: testNow}
	return uc
}

func testRequest(t *testing.T) *Request {
	t.Helper()
	in, err := time.Parse(domain.DateFormat, "2026-03-14")
	require.NoError(t, err)
	return &Request{
		CheckIn:  in,
		CheckOut: in.AddDate(0, 0, 2),
		Adults:   2,
		Children: 0,
	}
}

func cottageOffer() *domain.RoomOffer {
	return &domain.RoomOffer{
		RoomRateID:         "RR1",
		Name:               "Glass Cottage",
		BaseAdultOccupancy: 2,
		MaxAdultOccupancy:  2,
		MaxChildOccupancy:  1,
		MinAvailableRooms:  2,
		BaseRateByDate: map[string]float64{
			"2026-03-14": 10000,
			"2026-03-15": 10000,
		},
	}
}

func TestSearchExecute_Success(t *testing.T) {
	pms := &fakePMS{offers: []*domain.RoomOffer{cottageOffer()}}
	uc := newTestUseCase(pms)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Rooms)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 1, pms.gotQuery.Rooms)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.False(t, result.PricingUnavailable)
	assert.Equal(t, 10000.0, result.DisplayRate.RackRate)
	assert.Equal(t, 8000.0, result.DisplayRate.Discounted)
	assert.Equal(t, 9440.0, result.DisplayRate.Total)
}

func TestSearchExecute_FiltersOffersByOccupancy(t *testing.T) {
	// Пара с двумя детьми не лезет в cottage, но лезет в bathtub
	cottage := cottageOffer()
	bathtub := &domain.RoomOffer{
		RoomRateID:         "RR2",
		Name:               "Forest Bathtub",
		BaseAdultOccupancy: 2,
		MaxAdultOccupancy:  3,
		MaxChildOccupancy:  2,
		MinAvailableRooms:  1,
		BaseRateByDate:     map[string]float64{"2026-03-14": 12000},
	}
	pms := &fakePMS{offers: []*domain.RoomOffer{cottage, bathtub}}
	uc := newTestUseCase(pms)

	req := testRequest(t)
	req.Children = 2

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "RR2", resp.Results[0].Offer.RoomRateID)
}

func TestSearchExecute_FiltersOffersWithoutAvailability(t *testing.T) {
	soldOut := cottageOffer()
	soldOut.MinAvailableRooms = 1
	soldOut.AvailableRoomsByDate = map[string]int{
		"2026-03-14": 1,
		"2026-03-15": 0,
	}
	pms := &fakePMS{offers: []*domain.RoomOffer{soldOut}}
	uc := newTestUseCase(pms)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearchExecute_OfferWithoutRatesIsShownUnpriced(t *testing.T) {
	unpriced := cottageOffer()
	unpriced.BaseRateByDate = nil
	unpriced.RackRate = 0
	pms := &fakePMS{offers: []*domain.RoomOffer{unpriced}}
	uc := newTestUseCase(pms)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].PricingUnavailable)
}

func TestSearchExecute_LargePartyScalesRooms(t *testing.T) {
	pms := &fakePMS{offers: nil}
	uc := newTestUseCase(pms)

	req := testRequest(t)
	req.Adults = 6

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Rooms)
	assert.Equal(t, 2, pms.gotQuery.Rooms)
}

func TestSearchExecute_RejectedSearchMeansNoOffers(t *testing.T) {
	pms := &fakePMS{err: ezee.ErrSearchRejected}
	uc := newTestUseCase(pms)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 2, resp.Nights)
}

func TestSearchExecute_UpstreamDown(t *testing.T) {
	uc := newTestUseCase(&fakePMS{err: ezee.ErrUnavailable})

	_, err := uc.Execute(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSearchExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakePMS{})

	req := testRequest(t)
	req.Adults = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = testRequest(t)
	req.CheckOut = req.CheckIn
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	req = testRequest(t)
	req.CheckIn = testNow.AddDate(0, 0, -5)
	req.CheckOut = req.CheckIn.AddDate(0, 0, 2)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastCheckIn)

	req = testRequest(t)
	req.Children = -1
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
