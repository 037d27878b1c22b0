package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockVehicle(ctx context.Context, vehicleID int64) error
	FindOverlapping(ctx context.Context, vehicleID int64, period domain.DateRange, excludeID *int64) ([]*domain.Booking, error)
	ExistsCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// BranchRepository интерфейс репозитория филиалов
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator генератор кодов бронирования
type CodeGenerator interface {
	Generate() string
}

// EventPublisher получатель событий после фиксации транзакции
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncBookingCreated(source string)
	IncBookingConflict(operation string)
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
