package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(string, ...interface{}) {}
func (l *recordingLogger) Error(format string, _ ...interface{}) {
	l.errors = append(l.errors, format)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		Code:          "RNT-3F9A1C0B",
		VehicleID:     7,
		PickupDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DropoffDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice:    decimal.NewFromInt(1800),
		Status:        domain.StatusReserved,
		PaymentStatus: domain.PaymentUnpaid,
		Customer:      domain.CustomerSnapshot{FirstName: "Ahmet", LastName: "Yilmaz", Phone: "5551234567"},
	}
}

func TestNotifier_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	sub := rdb.Subscribe(ctx, "bookings")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	n := NewNotifier(rdb, "bookings", &recordingLogger{})
	require.NoError(t, n.Publish(ctx, domain.EventBookingCreated, testBooking()))

	select {
	case msg := <-sub.Channel():
		var got Message
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "booking.created", got.Event)
		assert.Equal(t, "RNT-3F9A1C0B", got.BookingCode)
		assert.Equal(t, "1800.00", got.TotalPrice)
		assert.Equal(t, "5551234567", got.Customer.Phone)
		assert.Equal(t, "2025-03-01T00:00:00Z", got.PickupDate)
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestNotifier_NotifySwallowsErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	log := &recordingLogger{}
	n := NewNotifier(rdb, "bookings", log)

	assert.ErrorIs(t, n.Publish(context.Background(), domain.EventBookingPaid, testBooking()), ErrPublish)

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), domain.EventBookingPaid, testBooking())
	})
	assert.Len(t, log.errors, 1)
}
