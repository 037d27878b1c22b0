package update_booking_dates

import (
	"fmt"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if req.PickupDate == nil && req.DropoffDate == nil {
		return fmt.Errorf("%w: pickupDate or dropoffDate is required", ErrInvalidInput)
	}

	return nil
}

// validateRange проверяет итоговый период после применения изменений
func validateRange(period domain.DateRange) error {
	if err := period.Validate(); err != nil {
		return ErrInvalidDates
	}

	if period.Duration() > domain.MaxRentalDays*24*time.Hour {
		return fmt.Errorf("%w: at most %d days", ErrRentalTooLong, domain.MaxRentalDays)
	}

	return nil
}
