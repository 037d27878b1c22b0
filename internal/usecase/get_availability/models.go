package get_availability

import (
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// Request модель запроса календаря доступности
type Request struct {
	VehicleID int64
	From      time.Time // первый день (включительно)
	To        time.Time // последний день (не включительно)
}

// Response календарь по дням, упорядоченный по дате
type Response struct {
	VehicleID int64
	From      time.Time
	To        time.Time
	Days      []domain.CalendarDay
	Cached    bool
}
