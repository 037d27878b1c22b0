package extend_booking

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	GetByCodeForUpdate(ctx context.Context, code string) (*domain.Booking, error)
	LockVehicle(ctx context.Context, vehicleID int64) error
	FindOverlapping(ctx context.Context, vehicleID int64, period domain.DateRange, excludeID *int64) ([]*domain.Booking, error)
	UpdateDates(ctx context.Context, booking *domain.Booking) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher получатель событий после фиксации транзакции
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncBookingConflict(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
