package search_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
	"github.com/wildgrove/resort-booking-service/internal/occupancy"
	"github.com/wildgrove/resort-booking-service/internal/pricing"
)

// UseCase use case поиска доступных номеров
type UseCase struct {
	pmsClient    PMSClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pmsClient PMSClient, logger Logger) *UseCase {
	return &UseCase{
		pmsClient:    pmsClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск номеров для указанного периода и состава гостей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchRooms: checkIn=%s, checkOut=%s, adults=%d, children=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем минимальное количество номеров для состава гостей
	rooms := occupancy.MinimumRoomsFor(req.Adults, req.Children)

	query := domain.StayQuery{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Adults:   req.Adults,
		Children: req.Children,
		Rooms:    rooms,
	}

	uc.logger.Info("SearchRooms: party requires %d room(s) for %d night(s)", rooms, query.Nights())

	// 3. Запрашиваем доступность в PMS
	offers, err := uc.pmsClient.SearchAvailability(ctx, query)
	if err != nil {
		if errors.Is(err, ezee.ErrUnavailable) {
			uc.logger.Error("SearchRooms: PMS unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		if errors.Is(err, ezee.ErrSearchRejected) {
			// Отклоненный поиск трактуем как отсутствие предложений
			uc.logger.Warn("SearchRooms: search rejected by PMS: %v", err)
			return &Response{Rooms: rooms, Nights: query.Nights()}, nil
		}
		uc.logger.Error("SearchRooms: search failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Фильтруем предложения: вместимость и доступность на каждую ночь.
	// PMS может вернуть номера с лимитами, отличающимися от профилей сайта,
	// поэтому каждое предложение перепроверяется отдельно
	results := make([]RoomResult, 0, len(offers))
	for _, offer := range offers {
		if !occupancy.IsOccupancyValid(offer, req.Adults, req.Children, rooms) {
			uc.logger.Info("SearchRooms: offer %s (%s) rejected by occupancy rules",
				offer.RoomRateID, offer.Name)
			continue
		}

		if !hasRoomsForStay(offer, query) {
			uc.logger.Info("SearchRooms: offer %s (%s) lacks %d room(s) for some night",
				offer.RoomRateID, offer.Name, rooms)
			continue
		}

		results = append(results, RoomResult{
			Offer:              offer,
			DisplayRate:        pricing.DisplayNightRate(offer),
			PricingUnavailable: !offer.HasRates(),
		})
	}

	uc.logger.Info("SearchRooms: %d of %d offers accepted", len(results), len(offers))

	return &Response{
		Rooms:   rooms,
		Nights:  query.Nights(),
		Results: results,
	}, nil
}

// hasRoomsForStay проверяет, что на каждую ночь проживания у предложения
// достаточно свободных номеров
func hasRoomsForStay(offer *domain.RoomOffer, query domain.StayQuery) bool {
	if offer.AvailableRoomsByDate == nil && offer.MinAvailableRooms == 0 {
		// PMS не прислал данные о доступности: доверяем самому факту выдачи
		return true
	}

	for _, date := range query.StayDates() {
		if offer.RoomsAvailableOn(date) < query.Rooms {
			return false
		}
	}
	return true
}
