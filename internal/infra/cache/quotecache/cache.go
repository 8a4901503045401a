package quotecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wildgrove/resort-booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик кеша
type MetricsRecorder interface {
	RecordQuoteCache(result string)
}

// Cache кеш расчетов стоимости в Redis.
// Расчет детерминирован по входным данным, поэтому ключ собирается из
// (roomRateId, checkIn, checkOut, adults, children). Кеш — чистая
// оптимизация: любая ошибка Redis деградирует в промах, никогда в отказ.
type Cache struct {
	rdb     *redis.Client
	ttl     time.Duration
	log     Logger
	metrics MetricsRecorder
}

// New создает новый кеш расчетов
func New(rdb *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, log: log}
}

// WithMetrics подключает запись метрик попаданий в кеш
func (c *Cache) WithMetrics(rec MetricsRecorder) *Cache {
	c.metrics = rec
	return c
}

func (c *Cache) record(result string) {
	if c.metrics != nil {
		c.metrics.RecordQuoteCache(result)
	}
}

// Key собирает ключ кеша для пары (предложение, запрос)
func Key(roomRateID string, query domain.StayQuery) string {
	return fmt.Sprintf("quote:%s:%s:%s:%d:%d",
		roomRateID,
		query.CheckIn.Format(domain.DateFormat),
		query.CheckOut.Format(domain.DateFormat),
		query.Adults,
		query.Children,
	)
}

// Get возвращает закешированный расчет, если он есть
func (c *Cache) Get(ctx context.Context, roomRateID string, query domain.StayQuery) (*domain.PriceBreakdown, bool) {
	raw, err := c.rdb.Get(ctx, Key(roomRateID, query)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("quotecache: get failed: %v", err)
		}
		c.record("miss")
		return nil, false
	}

	var breakdown domain.PriceBreakdown
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		c.log.Warn("quotecache: corrupt cache entry for room=%s: %v", roomRateID, err)
		c.record("miss")
		return nil, false
	}

	c.record("hit")
	return &breakdown, true
}

// Set сохраняет расчет с TTL
func (c *Cache) Set(ctx context.Context, query domain.StayQuery, breakdown *domain.PriceBreakdown) {
	raw, err := json.Marshal(breakdown)
	if err != nil {
		c.log.Warn("quotecache: marshal failed for room=%s: %v", breakdown.RoomRateID, err)
		return
	}

	if err := c.rdb.Set(ctx, Key(breakdown.RoomRateID, query), raw, c.ttl).Err(); err != nil {
		c.log.Warn("quotecache: set failed for room=%s: %v", breakdown.RoomRateID, err)
	}
}
