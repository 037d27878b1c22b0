package transition_booking

import (
	"context"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (time.Time, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	UpdateCurrentBranch(ctx context.Context, id, branchID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher получатель событий после фиксации транзакции
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	IncBookingTransition(action string)
	IncBookingConflict(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
