package create_manual_booking

import (
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/RentalBookingService/internal/usecase/create_booking"
)

// ManualBookingResponse ответ админке, без маскирования
type ManualBookingResponse struct {
	BookingCode string                 `json:"bookingCode"`
	Days        int                    `json:"days"`
	Booking     models.BookingResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *ManualBookingResponse {
	return &ManualBookingResponse{
		BookingCode: resp.Booking.Code,
		Days:        resp.Days,
		Booking:     *models.FromDomainAdminBooking(resp.Booking),
	}
}
