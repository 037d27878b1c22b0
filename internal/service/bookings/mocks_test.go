package bookings

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByCodeForUpdate(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListAdmin(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingRepo) MarkPaid(ctx context.Context, id int64, paymentRef string, paidAt time.Time) error {
	args := m.Called(ctx, id, paymentRef, paidAt)
	return args.Error(0)
}

func (m *MockBookingRepo) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingEvents struct {
	events []domain.BookingEvent
}

func (r *recordingEvents) Publish(_ context.Context, event domain.BookingEvent) {
	r.events = append(r.events, event)
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
