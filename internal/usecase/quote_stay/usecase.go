package quote_stay

import (
	"context"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/occupancy"
	"github.com/wildgrove/resort-booking-service/internal/pricing"
)

// UseCase use case расчета полной стоимости проживания для выбранного номера
type UseCase struct {
	cache        QuoteCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cache QuoteCache, logger Logger) *UseCase {
	return &UseCase{
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассчитывает стоимость проживания.
// Расчет чистый и детерминированный, поэтому результат кешируется по ключу
// (roomRateId, даты, состав гостей); промах кеша просто пересчитывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	// 2. Минимальное количество номеров и проверка размещения
	rooms := occupancy.MinimumRoomsFor(req.Adults, req.Children)
	if !occupancy.IsOccupancyValid(req.Offer, req.Adults, req.Children, rooms) {
		uc.logger.Warn("QuoteStay: occupancy rejected for room=%s (%s): adults=%d, children=%d, rooms=%d",
			req.Offer.RoomRateID, req.Offer.Name, req.Adults, req.Children, rooms)
		return nil, ErrOccupancyNotAllowed
	}

	query := domain.StayQuery{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Adults:   req.Adults,
		Children: req.Children,
		Rooms:    rooms,
	}

	// 3. Кеш
	if cached, ok := uc.cache.Get(ctx, req.Offer.RoomRateID, query); ok {
		uc.logger.Info("QuoteStay: cache hit for room=%s", req.Offer.RoomRateID)
		return &Response{Rooms: rooms, Breakdown: cached}, nil
	}

	// 4. Расчет
	breakdown := pricing.ComputeBreakdown(req.Offer, query)

	// Нулевая сумма на непустом проживании означает отсутствие данных о
	// ставках, а не бесплатный номер
	if breakdown.Zero() {
		uc.logger.Warn("QuoteStay: zero total for room=%s (%s), surfacing pricing unavailable",
			req.Offer.RoomRateID, req.Offer.Name)
		return nil, ErrPricingUnavailable
	}

	uc.cache.Set(ctx, query, breakdown)

	uc.logger.Info("QuoteStay: room=%s nights=%d extraAdults=%d extraChildren=%d total=%.2f",
		req.Offer.RoomRateID, breakdown.Nights, breakdown.ExtraAdults,
		breakdown.ExtraChildren, breakdown.Total)

	return &Response{Rooms: rooms, Breakdown: breakdown}, nil
}
