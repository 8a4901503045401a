package quote_stay

import (
	"context"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// QuoteCache интерфейс кеша расчетов стоимости
type QuoteCache interface {
	Get(ctx context.Context, roomRateID string, query domain.StayQuery) (*domain.PriceBreakdown, bool)
	Set(ctx context.Context, query domain.StayQuery, breakdown *domain.PriceBreakdown)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NopCache заглушка кеша, когда Redis выключен конфигурацией
type NopCache struct{}

func (NopCache) Get(_ context.Context, _ string, _ domain.StayQuery) (*domain.PriceBreakdown, bool) {
	return nil, false
}

func (NopCache) Set(_ context.Context, _ domain.StayQuery, _ *domain.PriceBreakdown) {}
