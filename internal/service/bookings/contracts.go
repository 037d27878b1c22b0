package bookings

import (
	"context"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	GetByCodeForUpdate(ctx context.Context, code string) (*domain.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	ListAdmin(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, int, error)
	MarkPaid(ctx context.Context, id int64, paymentRef string, paidAt time.Time) error
	MarkRead(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher получатель событий после фиксации транзакции
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent)
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
