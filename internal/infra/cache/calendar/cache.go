// Package calendar кэширует календарь доступности автомобиля в Redis.
//
// Ключ содержит версию календаря автомобиля: calendar:{vehicleID}:v{version}:{from}:{to}.
// Любая мутация бронирований автомобиля делает INCR calendar:version:{vehicleID},
// после чего старые ключи больше не читаются и истекают по TTL.
package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/pkg/types"
)

// Lookup результат чтения кэша. Key привязан к версии, прочитанной до обращения к БД,
// поэтому Set после инвалидации запишет данные под уже неактуальный ключ.
type Lookup struct {
	Key  string
	Days []domain.CalendarDay
	Hit  bool
}

type cachedDay struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Cache read-through кэш календаря
type Cache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewCache создает кэш календаря
func NewCache(rdb redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func versionKey(vehicleID int64) string {
	return fmt.Sprintf("calendar:version:%d", vehicleID)
}

// Get читает календарь из кэша
func (c *Cache) Get(ctx context.Context, vehicleID int64, from, to time.Time) (Lookup, error) {
	version, err := c.rdb.Get(ctx, versionKey(vehicleID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Lookup{}, fmt.Errorf("%w: Get - read version: %v", ErrCache, err)
	}

	lookup := Lookup{
		Key: fmt.Sprintf("calendar:%d:v%d:%s:%s", vehicleID, version, types.FormatDate(from), types.FormatDate(to)),
	}

	raw, err := c.rdb.Get(ctx, lookup.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return lookup, nil
	}
	if err != nil {
		return Lookup{}, fmt.Errorf("%w: Get - read calendar: %v", ErrCache, err)
	}

	var cached []cachedDay
	if err := json.Unmarshal(raw, &cached); err != nil {
		return lookup, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	days := make([]domain.CalendarDay, 0, len(cached))
	for _, d := range cached {
		date, err := types.ParseDate(d.Date)
		if err != nil {
			return lookup, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		days = append(days, domain.CalendarDay{Date: date, Status: domain.DayStatus(d.Status)})
	}

	lookup.Days = days
	lookup.Hit = true
	return lookup, nil
}

// Set сохраняет календарь под ключом, полученным из Get
func (c *Cache) Set(ctx context.Context, key string, days []domain.CalendarDay) error {
	cached := make([]cachedDay, len(days))
	for i, d := range days {
		cached[i] = cachedDay{Date: types.FormatDate(d.Date), Status: string(d.Status)}
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrCache, err)
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}
	return nil
}

// Invalidate сдвигает версию календаря автомобиля
func (c *Cache) Invalidate(ctx context.Context, vehicleID int64) error {
	if err := c.rdb.Incr(ctx, versionKey(vehicleID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate vehicle=%d: %v", ErrCache, vehicleID, err)
	}
	return nil
}
