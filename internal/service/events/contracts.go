package events

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Notifier внешний отправитель уведомлений (fire-and-forget)
type Notifier interface {
	Notify(ctx context.Context, eventType domain.EventType, booking *domain.Booking)
}

// AuditSink журнал действий
type AuditSink interface {
	Record(ctx context.Context, entry *domain.ActionLog)
}

// CalendarInvalidator сброс кэша календаря автомобиля
type CalendarInvalidator interface {
	Invalidate(ctx context.Context, vehicleID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
