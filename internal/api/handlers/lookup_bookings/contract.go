package lookup_bookings

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

type BookingService interface {
	LookupByPhone(ctx context.Context, phone string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
