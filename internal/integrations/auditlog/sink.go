package auditlog

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Sink записывает действия над бронированиями в журнал.
// Вызывается после фиксации транзакции; сбой записи журнала логируется и не откатывает операцию.
type Sink struct {
	repo Repository
	log  Logger
}

// NewSink создает новый экземпляр журнала действий
func NewSink(repo Repository, log Logger) *Sink {
	return &Sink{repo: repo, log: log}
}

// Record сохраняет запись журнала
func (s *Sink) Record(ctx context.Context, entry *domain.ActionLog) {
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Error("AuditLog: failed to record %s for booking=%s by %s: %v",
			entry.Action, entry.BookingCode, entry.Actor, err)
		return
	}
	s.log.Info("AuditLog: %s booking=%s by %s", entry.Action, entry.BookingCode, entry.Actor)
}
