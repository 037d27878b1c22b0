package extend_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Request запрос на продление бронирования
type Request struct {
	Code           string
	NewDropoffDate time.Time
}

// Response результат продления
type Response struct {
	Booking    *domain.Booking
	AddedDays  int
	AddedPrice decimal.Decimal
}
