package update_booking_dates

import (
	"fmt"
	"time"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
	updateBookingDates "github.com/m04kA/RentalBookingService/internal/usecase/update_booking_dates"
)

// UpdateDatesRequest HTTP request model. Незаполненная дата не меняется.
type UpdateDatesRequest struct {
	PickupDate  *string `json:"pickupDate,omitempty"`
	DropoffDate *string `json:"dropoffDate,omitempty"`
}

// UpdateDatesResponse HTTP response model
type UpdateDatesResponse struct {
	Booking models.BookingResponse `json:"booking"`
	Days    int                    `json:"days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDatesRequest) ToUseCaseRequest(bookingID int64, actor string) (*updateBookingDates.Request, error) {
	pickup, err := parseOptional(r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("pickupDate: %w", err)
	}
	dropoff, err := parseOptional(r.DropoffDate)
	if err != nil {
		return nil, fmt.Errorf("dropoffDate: %w", err)
	}

	return &updateBookingDates.Request{
		BookingID:   bookingID,
		PickupDate:  pickup,
		DropoffDate: dropoff,
		Actor:       actor,
	}, nil
}

func parseOptional(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := handlers.ParseDateTime(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingDates.Response) *UpdateDatesResponse {
	return &UpdateDatesResponse{
		Booking: *models.FromDomainAdminBooking(resp.Booking),
		Days:    resp.Days,
	}
}
