package search_rooms

import (
	"context"
	"time"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// PMSClient интерфейс клиента PMS
type PMSClient interface {
	SearchAvailability(ctx context.Context, query domain.StayQuery) ([]*domain.RoomOffer, error)
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
