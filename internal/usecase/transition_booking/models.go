package transition_booking

import "github.com/m04kA/RentalBookingService/internal/domain"

// Request действие администратора над бронированием
type Request struct {
	BookingID int64
	Action    domain.Action
	Actor     string
}

// Response бронирование после перехода
type Response struct {
	Booking *domain.Booking
}
