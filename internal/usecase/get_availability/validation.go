package get_availability

import (
	"fmt"

	"github.com/m04kA/RentalBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDays int) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from, to := types.StartOfDay(req.From), types.StartOfDay(req.To)
	if !to.After(from) {
		return fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	if days := int(to.Sub(from).Hours() / 24); days > maxDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, maxDays)
	}

	return nil
}
