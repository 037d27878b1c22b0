package get_admin_bookings

import (
	"context"

	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetAdminBookings(ctx context.Context, req *models.AdminBookingsRequest) (*models.AdminBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
