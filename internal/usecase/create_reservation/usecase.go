package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
	"github.com/wildgrove/resort-booking-service/internal/occupancy"
	"github.com/wildgrove/resort-booking-service/internal/pricing"
)

// UseCase use case создания бронирования в PMS
type UseCase struct {
	pmsClient       PMSClient
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pmsClient PMSClient,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		pmsClient:       pmsClient,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Черновик бронирования проходит шаги мастера заново на сервере: стоимость
// пересчитывается для ровно того предложения, которое выбрал гость, и только
// валидированный расчет попадает в payload. Подмененное или устаревшее
// предложение отклоняется на шаге SelectRoom
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%s, checkIn=%s, checkOut=%s, adults=%d, children=%d",
		offerID(req), req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}
	if err := validateGuest(req); err != nil {
		uc.logger.Warn("CreateReservation: guest validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.CheckIn, now) {
		uc.logger.Warn("CreateReservation: past check-in %s", req.CheckIn.Format(domain.DateFormat))
		return nil, ErrPastCheckIn
	}

	// 2. Размещение гостей
	rooms := occupancy.MinimumRoomsFor(req.Adults, req.Children)
	if !occupancy.IsOccupancyValid(req.Offer, req.Adults, req.Children, rooms) {
		uc.logger.Warn("CreateReservation: occupancy rejected for room=%s: adults=%d, children=%d, rooms=%d",
			req.Offer.RoomRateID, req.Adults, req.Children, rooms)
		return nil, ErrOccupancyNotAllowed
	}

	query := domain.StayQuery{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Adults:   req.Adults,
		Children: req.Children,
		Rooms:    rooms,
	}

	// 3. Собираем черновик: пересчет стоимости и контроль соответствия
	// расчета выбранному предложению
	draft, err := domain.NewBookingDraft(query)
	if err != nil {
		uc.logger.Warn("CreateReservation: draft rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	breakdown := pricing.ComputeBreakdown(req.Offer, query)
	if breakdown.Zero() {
		uc.logger.Warn("CreateReservation: zero total for room=%s, refusing to book for free",
			req.Offer.RoomRateID)
		return nil, ErrPricingUnavailable
	}

	if err := draft.SelectRoom(req.Offer, breakdown); err != nil {
		uc.logger.Error("CreateReservation: draft room selection failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := draft.AttachGuest(&req.Guest); err != nil {
		uc.logger.Error("CreateReservation: draft guest attach failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !draft.ReadyForReservation() {
		return nil, fmt.Errorf("%w: draft incomplete", ErrInternal)
	}

	// 4. Payload для PMS
	payload, err := BuildReservationPayload(draft.Room, draft.Query, draft.Breakdown, draft.Guest, now)
	if err != nil {
		uc.logger.Warn("CreateReservation: payload build failed: %v", err)
		return nil, err
	}

	// 5. Создаем бронирование в PMS
	reservationNo, err := uc.pmsClient.CreateReservation(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, ezee.ErrUnavailable):
			uc.logger.Error("CreateReservation: PMS unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		case errors.Is(err, ezee.ErrBookingRejected):
			uc.logger.Warn("CreateReservation: booking rejected by PMS: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		default:
			uc.logger.Error("CreateReservation: PMS call failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 6. Сохраняем денормализованную запись о бронировании.
	// Бронирование в PMS уже создано: ошибка записи логируется, но не
	// отменяет успешный результат
	record := &domain.Reservation{
		ReservationNo:       reservationNo,
		RoomRateID:          draft.Room.RoomRateID,
		RoomName:            draft.Room.Name,
		CheckIn:             query.CheckIn,
		CheckOut:            query.CheckOut,
		Adults:              query.Adults,
		Children:            query.Children,
		Rooms:               query.Rooms,
		GuestFirstName:      draft.Guest.FirstName,
		GuestLastName:       draft.Guest.LastName,
		GuestEmail:          draft.Guest.Email,
		GuestMobile:         draft.Guest.Mobile,
		BaseDiscountedTotal: breakdown.BaseDiscountedTotal,
		GSTTotal:            breakdown.GSTTotal,
		ExtraAdultsTotal:    breakdown.ExtraAdultsTotal,
		ExtraChildrenTotal:  breakdown.ExtraChildrenTotal,
		Total:               breakdown.Total,
		Currency:            breakdown.Currency,
		Status:              domain.StatusPaymentPending,
	}

	if _, err := uc.reservationRepo.Create(ctx, record); err != nil {
		uc.logger.Error("CreateReservation: failed to store reservation no=%s: %v", reservationNo, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation no=%s, total=%.2f",
		reservationNo, breakdown.Total)

	return &Response{
		ReservationNo: reservationNo,
		RoomName:      draft.Room.Name,
		CheckIn:       query.CheckIn,
		CheckOut:      query.CheckOut,
		Rooms:         query.Rooms,
		Breakdown:     breakdown,
		Status:        string(domain.StatusPaymentPending),
	}, nil
}

func offerID(req *Request) string {
	if req.Offer == nil {
		return "<nil>"
	}
	return req.Offer.RoomRateID
}
