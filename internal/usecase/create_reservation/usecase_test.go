package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
)

type fakePMS struct {
	reservationNo string
	err           error
	gotPayload    *ezee.ReservationRequest
}

func (f *fakePMS) CreateReservation(_ context.Context, req *ezee.ReservationRequest) (string, error) {
	f.gotPayload = req
	if f.err != nil {
		return "", f.err
	}
	return f.reservationNo, nil
}

type fakeRepo struct {
	created *domain.Reservation
	err     error
}

func (f *fakeRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.created = res
	if f.err != nil {
		return nil, f.err
	}
	return res, nil
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

func newTestUseCase(pms *fakePMS, repo *fakeRepo) *UseCase {
	uc := NewUseCase(pms, repo, testLogger{})
	uc.timeProvider = fakeTime{now: testNow}
	return uc
}

func testOffer() *domain.RoomOffer {
	return &domain.RoomOffer{
		RoomRateID:         "RR1",
		RateTypeID:         "RT1",
		RoomTypeID:         "RM1",
		Name:               "Forest Bathtub",
		BaseAdultOccupancy: 2,
		MaxAdultOccupancy:  3,
		MaxChildOccupancy:  2,
		BaseRateByDate: map[string]float64{
			"2026-03-14": 10000,
			"2026-03-15": 9500,
		},
	}
}

func testRequest(t *testing.T) *Request {
	t.Helper()
	in, err := time.Parse(domain.DateFormat, "2026-03-14")
	require.NoError(t, err)
	return &Request{
		Offer:    testOffer(),
		CheckIn:  in,
		CheckOut: in.AddDate(0, 0, 2),
		Adults:   2,
		Children: 0,
		Guest: domain.GuestDetails{
			FirstName: "Asha", LastName: "Nair", Email: "asha@example.com",
			Mobile: "+919800000000", Address: "12 Hill Rd", City: "Wayanad",
			State: "Kerala", Country: "India", ZipCode: "673121",
		},
	}
}

func TestExecute_Success(t *testing.T) {
	pms := &fakePMS{reservationNo: "EZ-1001"}
	repo := &fakeRepo{}
	uc := newTestUseCase(pms, repo)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "EZ-1001", resp.ReservationNo)
	assert.Equal(t, "Forest Bathtub", resp.RoomName)
	assert.Equal(t, 1, resp.Rooms)
	assert.Equal(t, string(domain.StatusPaymentPending), resp.Status)

	// 8000 + 7600 базы, сплит GST по 1440 + 1368
	assert.Equal(t, 15600.0, resp.Breakdown.BaseDiscountedTotal)
	assert.Equal(t, 2808.0, resp.Breakdown.GSTTotal)
	assert.Equal(t, 18408.0, resp.Breakdown.Total)

	// В PMS ушли посуточные ставки со скидкой
	require.NotNil(t, pms.gotPayload)
	assert.Equal(t, "8000.00, 7600.00", pms.gotPayload.RoomDetails.Room1.BaseRate)

	// Запись сохранена со статусом ожидания оплаты
	require.NotNil(t, repo.created)
	assert.Equal(t, "EZ-1001", repo.created.ReservationNo)
	assert.Equal(t, domain.StatusPaymentPending, repo.created.Status)
	assert.Equal(t, 18408.0, repo.created.Total)
}

func TestExecute_StorageFailureDoesNotFailBooking(t *testing.T) {
	// Бронирование в PMS уже создано: ошибка локальной записи не должна
	// показывать гостю отказ
	pms := &fakePMS{reservationNo: "EZ-1002"}
	repo := &fakeRepo{err: errors.New("db down")}
	uc := newTestUseCase(pms, repo)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "EZ-1002", resp.ReservationNo)
}

func TestExecute_OccupancyRejected(t *testing.T) {
	uc := newTestUseCase(&fakePMS{}, &fakeRepo{})

	req := testRequest(t)
	req.Offer.Name = "Glass Cottage"
	req.Offer.MaxAdultOccupancy = 2
	req.Offer.MaxChildOccupancy = 1
	req.Adults = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOccupancyNotAllowed)
}

func TestExecute_MissingGuestFields(t *testing.T) {
	uc := newTestUseCase(&fakePMS{}, &fakeRepo{})

	req := testRequest(t)
	req.Guest.Email = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingGuestFields)
}

func TestExecute_PastCheckIn(t *testing.T) {
	pms := &fakePMS{reservationNo: "EZ-1003"}
	uc := NewUseCase(pms, &fakeRepo{}, testLogger{})
	uc.timeProvider = fakeTime{now: time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, ErrPastCheckIn)
	assert.Nil(t, pms.gotPayload)
}

func TestExecute_ZeroPricing(t *testing.T) {
	uc := newTestUseCase(&fakePMS{}, &fakeRepo{})

	req := testRequest(t)
	req.Offer.BaseRateByDate = nil
	req.Offer.RackRate = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPricingUnavailable)
}

func TestExecute_PMSErrors(t *testing.T) {
	tests := []struct {
		name    string
		pmsErr  error
		wantErr error
	}{
		{"unavailable", ezee.ErrUnavailable, ErrUpstream},
		{"rejected", ezee.ErrBookingRejected, ErrBookingRejected},
		{"other", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUseCase(&fakePMS{err: tt.pmsErr}, repo)

			_, err := uc.Execute(context.Background(), testRequest(t))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakePMS{}, &fakeRepo{})

	req := testRequest(t)
	req.CheckOut = req.CheckIn

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	req = testRequest(t)
	req.Offer = nil
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
