package update_booking_dates

import (
	"context"

	updateBookingDates "github.com/m04kA/RentalBookingService/internal/usecase/update_booking_dates"
)

type UpdateBookingDatesUseCase interface {
	Execute(ctx context.Context, req *updateBookingDates.Request) (*updateBookingDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
