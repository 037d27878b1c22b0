package auditlog

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Repository интерфейс хранилища журнала действий
type Repository interface {
	Insert(ctx context.Context, entry *domain.ActionLog) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
