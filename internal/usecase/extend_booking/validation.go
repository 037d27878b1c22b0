package extend_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if req.Code == "" {
		return fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	if req.NewDropoffDate.IsZero() {
		return fmt.Errorf("%w: newDropoffDate is required", ErrInvalidInput)
	}
	req.NewDropoffDate = req.NewDropoffDate.UTC()

	return nil
}
