// Package events раздает зафиксированные изменения бронирований внешним участникам:
// кэшу календаря, журналу действий и сервису уведомлений.
package events

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// notifiedEvents события, о которых сообщается клиенту
var notifiedEvents = map[domain.EventType]bool{
	domain.EventBookingCreated:      true,
	domain.EventBookingExtended:     true,
	domain.EventBookingDatesChanged: true,
	domain.EventBookingPaid:         true,
	domain.EventBookingCancelled:    true,
}

// Dispatcher вызывается строго после commit. Ни одна ошибка не возвращается вызывающему:
// бронирование уже зафиксировано.
type Dispatcher struct {
	notifier Notifier
	audit    AuditSink
	cache    CalendarInvalidator
	logger   Logger
}

// NewDispatcher создает диспетчер. Любой из участников может быть nil.
func NewDispatcher(notifier Notifier, audit AuditSink, cache CalendarInvalidator, logger Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		audit:    audit,
		cache:    cache,
		logger:   logger,
	}
}

// Publish раздает событие
func (d *Dispatcher) Publish(ctx context.Context, event domain.BookingEvent) {
	if event.Booking == nil {
		return
	}
	// Запрос клиента мог уже завершиться, а побочные эффекты должны дойти до конца
	ctx = context.WithoutCancel(ctx)
	b := event.Booking

	if d.cache != nil {
		if err := d.cache.Invalidate(ctx, b.VehicleID); err != nil {
			d.logger.Warn("Dispatcher: failed to invalidate calendar for vehicle=%d: %v", b.VehicleID, err)
		}
	}

	if d.audit != nil && event.Audit != "" {
		actor := event.Actor
		if actor == "" {
			actor = domain.ActorPublic
		}
		d.audit.Record(ctx, &domain.ActionLog{
			Actor:       actor,
			Action:      event.Audit,
			BookingID:   b.ID,
			BookingCode: b.Code,
			Details:     event.Details,
		})
	}

	if d.notifier != nil && notifiedEvents[event.Type] {
		d.notifier.Notify(ctx, event.Type, b)
	}
}
