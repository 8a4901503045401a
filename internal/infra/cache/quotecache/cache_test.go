package quotecache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/internal/infra/cache/quotecache"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func cacheQuery(t *testing.T) domain.StayQuery {
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

func TestKey(t *testing.T) {
	assert.Equal(t, "quote:RR1:2026-03-14:2026-03-16:2:1", quotecache.Key("RR1", cacheQuery(t)))
}

func TestGet_Hit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := quotecache.New(rdb, 5*time.Minute, nopLogger{})

	stored := &domain.PriceBreakdown{RoomRateID: "RR1", Nights: 2, Total: 9440}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	query := cacheQuery(t)
	mock.ExpectGet(quotecache.Key("RR1", query)).SetVal(string(raw))

	got, ok := cache.Get(context.Background(), "RR1", query)
	require.True(t, ok)
	assert.Equal(t, stored, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Miss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := quotecache.New(rdb, 5*time.Minute, nopLogger{})

	query := cacheQuery(t)
	mock.ExpectGet(quotecache.Key("RR1", query)).RedisNil()

	_, ok := cache.Get(context.Background(), "RR1", query)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_RedisErrorDegradesToMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := quotecache.New(rdb, 5*time.Minute, nopLogger{})

	query := cacheQuery(t)
	mock.ExpectGet(quotecache.Key("RR1", query)).SetErr(assert.AnError)

	_, ok := cache.Get(context.Background(), "RR1", query)
	assert.False(t, ok)
}

func TestGet_CorruptEntryDegradesToMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := quotecache.New(rdb, 5*time.Minute, nopLogger{})

	query := cacheQuery(t)
	mock.ExpectGet(quotecache.Key("RR1", query)).SetVal("{not json")

	_, ok := cache.Get(context.Background(), "RR1", query)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := quotecache.New(rdb, 5*time.Minute, nopLogger{})

	breakdown := &domain.PriceBreakdown{RoomRateID: "RR1", Nights: 2, Total: 9440}
	raw, err := json.Marshal(breakdown)
	require.NoError(t, err)

	query := cacheQuery(t)
	mock.ExpectSet(quotecache.Key("RR1", query), raw, 5*time.Minute).SetVal("OK")

	cache.Set(context.Background(), query, breakdown)

	assert.NoError(t, mock.ExpectationsWereMet())
}
