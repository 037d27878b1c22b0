package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/pkg/types"
)

// Notifier публикует события бронирований в Redis канал.
// Доставкой занимается внешний подписчик; ошибки публикации не влияют на бронирование.
type Notifier struct {
	rdb     redis.Cmdable
	channel string
	log     Logger
}

// NewNotifier создает новый экземпляр издателя уведомлений
func NewNotifier(rdb redis.Cmdable, channel string, log Logger) *Notifier {
	return &Notifier{rdb: rdb, channel: channel, log: log}
}

// Publish отправляет событие и возвращает ошибку
func (n *Notifier) Publish(ctx context.Context, eventType domain.EventType, booking *domain.Booking) error {
	data, err := json.Marshal(newMessage(eventType, booking, time.Now()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
		return fmt.Errorf("%w: channel=%s: %v", ErrPublish, n.channel, err)
	}

	return nil
}

// Notify fire-and-forget обертка над Publish: ошибка логируется и не возвращается
func (n *Notifier) Notify(ctx context.Context, eventType domain.EventType, booking *domain.Booking) {
	if err := n.Publish(ctx, eventType, booking); err != nil {
		n.log.Error("Notifier: failed to publish %s for booking=%s: %v", eventType, booking.Code, err)
		return
	}
	n.log.Info("Notifier: published %s for booking=%s", eventType, booking.Code)
}

func newMessage(eventType domain.EventType, b *domain.Booking, now time.Time) Message {
	return Message{
		Event:         string(eventType),
		BookingID:     b.ID,
		BookingCode:   b.Code,
		VehicleID:     b.VehicleID,
		PickupDate:    types.FormatTimestamp(b.PickupDate),
		DropoffDate:   types.FormatTimestamp(b.DropoffDate),
		TotalPrice:    b.TotalPrice.StringFixed(domain.PriceDecimalPlaces),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Customer: Customer{
			FirstName: b.Customer.FirstName,
			LastName:  b.Customer.LastName,
			Phone:     b.Customer.Phone,
			Email:     b.Customer.Email,
		},
		OccurredAt: types.FormatTimestamp(now),
	}
}
