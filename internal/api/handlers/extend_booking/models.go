package extend_booking

import (
	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
	extendBooking "github.com/m04kA/RentalBookingService/internal/usecase/extend_booking"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	NewDropoffDate string `json:"newDropoffDate"` // "2025-03-08" или RFC3339
}

// ExtendBookingResponse HTTP response model
type ExtendBookingResponse struct {
	Booking    models.BookingResponse `json:"booking"`
	AddedDays  int                    `json:"addedDays"`
	AddedPrice string                 `json:"addedPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExtendBookingRequest) ToUseCaseRequest(code string) (*extendBooking.Request, error) {
	dropoff, err := handlers.ParseDateTime(r.NewDropoffDate)
	if err != nil {
		return nil, err
	}
	return &extendBooking.Request{
		Code:           code,
		NewDropoffDate: dropoff,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response (данные клиента маскируются)
func FromUseCaseResponse(resp *extendBooking.Response) *ExtendBookingResponse {
	return &ExtendBookingResponse{
		Booking:    *models.FromDomainBooking(bookings.MaskBooking(resp.Booking)),
		AddedDays:  resp.AddedDays,
		AddedPrice: resp.AddedPrice.StringFixed(domain.PriceDecimalPlaces),
	}
}
