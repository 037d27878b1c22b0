package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/internal/infra/cache/calendar"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping возвращает неотмененные бронирования автомобиля, пересекающие период
	FindOverlapping(ctx context.Context, vehicleID int64, period domain.DateRange, excludeID *int64) ([]*domain.Booking, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// CalendarCache интерфейс кэша календаря (может отсутствовать)
type CalendarCache interface {
	Get(ctx context.Context, vehicleID int64, from, to time.Time) (calendar.Lookup, error)
	Set(ctx context.Context, key string, days []domain.CalendarDay) error
}

// Metrics интерфейс метрик попаданий в кэш
type Metrics interface {
	IncCalendarCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
