package transition_booking

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

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (time.Time, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) UpdateCurrentBranch(ctx context.Context, id, branchID int64) error {
	args := m.Called(ctx, id, branchID)
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

type countingMetrics struct {
	transitions map[string]int
	conflicts   int
}

func (m *countingMetrics) IncBookingTransition(action string) {
	if m.transitions == nil {
		m.transitions = make(map[string]int)
	}
	m.transitions[action]++
}

func (m *countingMetrics) IncBookingConflict(string) { m.conflicts++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
