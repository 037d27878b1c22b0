package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, time.Minute), mr
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestCache_ReadThrough(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	miss, err := cache.Get(ctx, 7, day(1), day(3))
	require.NoError(t, err)
	assert.False(t, miss.Hit)
	assert.Equal(t, "calendar:7:v0:2025-03-01:2025-03-03", miss.Key)

	days := []domain.CalendarDay{
		{Date: day(1), Status: domain.DayFree},
		{Date: day(2), Status: domain.DayBooked},
	}
	require.NoError(t, cache.Set(ctx, miss.Key, days))
	assert.Equal(t, time.Minute, mr.TTL(miss.Key))

	hit, err := cache.Get(ctx, 7, day(1), day(3))
	require.NoError(t, err)
	assert.True(t, hit.Hit)
	assert.Equal(t, days, hit.Days)
}

func TestCache_InvalidateBumpsVersion(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	first, err := cache.Get(ctx, 7, day(1), day(3))
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, first.Key, []domain.CalendarDay{{Date: day(1), Status: domain.DayFree}}))

	require.NoError(t, cache.Invalidate(ctx, 7))

	second, err := cache.Get(ctx, 7, day(1), day(3))
	require.NoError(t, err)
	assert.False(t, second.Hit)
	assert.Equal(t, "calendar:7:v1:2025-03-01:2025-03-03", second.Key)

	// Другие автомобили не затронуты
	other, err := cache.Get(ctx, 8, day(1), day(3))
	require.NoError(t, err)
	assert.Contains(t, other.Key, ":v0:")
}

func TestCache_CorruptedValue(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set("calendar:7:v0:2025-03-01:2025-03-03", "not json"))

	_, err := cache.Get(context.Background(), 7, day(1), day(3))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestCache_RedisDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, err := cache.Get(context.Background(), 7, day(1), day(3))
	assert.ErrorIs(t, err, ErrCache)
	assert.ErrorIs(t, cache.Invalidate(context.Background(), 7), ErrCache)
}
