package update_booking_dates

import (
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Request перенос дат бронирования администратором.
// Незаполненная дата остается прежней.
type Request struct {
	BookingID   int64
	PickupDate  *time.Time
	DropoffDate *time.Time
	Actor       string
}

// Response бронирование с пересчитанной ценой
type Response struct {
	Booking *domain.Booking
	Days    int
}
