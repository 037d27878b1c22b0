package pay_booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

type MockBookingService struct {
	mock.Mock
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func (m *MockBookingService) Pay(ctx context.Context, code string) (*models.BookingResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}
