package get_availability

import (
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// buildCalendar формирует доступность по дням периода [from, to).
// День D занят, если хотя бы одно неотмененное бронирование пересекает [D, D+1).
// Стыковка (возврат утром дня D, выдача в тот же день) день не занимает:
// бронирование 5-10 марта занимает дни 5..9, 10 марта свободно.
func buildCalendar(from, to time.Time, bookings []*domain.Booking) []domain.CalendarDay {
	days := make([]domain.CalendarDay, 0, int(to.Sub(from).Hours()/24)+1)

	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		next := d.AddDate(0, 0, 1)
		status := domain.DayFree

		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if domain.Overlaps(d, next, b.PickupDate, b.DropoffDate) {
				status = domain.DayBooked
				break
			}
		}

		days = append(days, domain.CalendarDay{Date: d, Status: status})
	}

	return days
}
