package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Публичный поток требует полные данные клиента, ручной (админ) только имя и телефон.
func validateRequest(req *Request, source domain.BookingSource, now time.Time) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}

	if req.PickupBranchID <= 0 || req.DropoffBranchID <= 0 {
		return fmt.Errorf("%w: pickupBranchId and dropoffBranchId must be positive", ErrInvalidInput)
	}

	if req.PickupDate.IsZero() || req.DropoffDate.IsZero() {
		return fmt.Errorf("%w: pickupDate and dropoffDate are required", ErrInvalidInput)
	}

	if !req.DropoffDate.After(req.PickupDate) {
		return ErrInvalidDates
	}

	if req.DropoffDate.Sub(req.PickupDate) > domain.MaxRentalDays*24*time.Hour {
		return fmt.Errorf("%w: at most %d days", ErrRentalTooLong, domain.MaxRentalDays)
	}

	// Админ может оформить бронь задним числом (клиент уже забрал машину)
	if source == domain.SourcePublic && req.PickupDate.Before(types.StartOfDay(now)) {
		return ErrPickupInPast
	}

	validate := req.Customer.Validate
	if source == domain.SourceAdmin {
		validate = req.Customer.ValidateRelaxed
	}
	if err := validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}

	return nil
}
