package create_booking

import (
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	VehicleID       int64
	PickupBranchID  int64
	DropoffBranchID int64
	UserID          *int64 // владелец, если клиент авторизован во внешней системе
	PickupDate      time.Time
	DropoffDate     time.Time
	Customer        domain.CustomerSnapshot

	Actor string // субъект администратора, для ручного бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	Days    int
}
