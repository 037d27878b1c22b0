package get_availability

import (
	"github.com/m04kA/RentalBookingService/internal/domain"
	getAvailability "github.com/m04kA/RentalBookingService/internal/usecase/get_availability"
)

// DayResponse доступность одного дня
type DayResponse struct {
	Date   string `json:"date"`   // "2025-03-01"
	Status string `json:"status"` // free, booked
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VehicleID int64         `json:"vehicleId"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Days      []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Date:   d.Date.Format(domain.DateFormat),
			Status: string(d.Status),
		})
	}

	return &AvailabilityResponse{
		VehicleID: resp.VehicleID,
		From:      resp.From.Format(domain.DateFormat),
		To:        resp.To.Format(domain.DateFormat),
		Days:      days,
	}
}
