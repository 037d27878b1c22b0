package create_manual_booking

import (
	"context"

	createBooking "github.com/m04kA/RentalBookingService/internal/usecase/create_booking"
)

type ManualBookingUseCase interface {
	ExecuteManual(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
