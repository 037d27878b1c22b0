package create_booking

import (
	"fmt"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/domain"
	"github.com/m04kA/RentalBookingService/internal/service/bookings"
	"github.com/m04kA/RentalBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/RentalBookingService/internal/usecase/create_booking"
)

// CustomerRequest данные клиента в запросе
type CustomerRequest struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	DriverLicense string  `json:"driverLicense"`
	NationalID    *string `json:"nationalId,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleID       int64           `json:"vehicleId"`
	PickupBranchID  int64           `json:"pickupBranchId"`
	DropoffBranchID int64           `json:"dropoffBranchId"` // 0 - возврат в филиал выдачи
	PickupDate      string          `json:"pickupDate"`      // "2025-03-01" или RFC3339
	DropoffDate     string          `json:"dropoffDate"`
	Customer        CustomerRequest `json:"customer"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingCode string                 `json:"bookingCode"`
	Days        int                    `json:"days"`
	Booking     models.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	pickup, err := handlers.ParseDateTime(r.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("pickupDate: %w", err)
	}
	dropoff, err := handlers.ParseDateTime(r.DropoffDate)
	if err != nil {
		return nil, fmt.Errorf("dropoffDate: %w", err)
	}

	dropoffBranch := r.DropoffBranchID
	if dropoffBranch == 0 {
		dropoffBranch = r.PickupBranchID
	}

	return &createBooking.Request{
		VehicleID:       r.VehicleID,
		PickupBranchID:  r.PickupBranchID,
		DropoffBranchID: dropoffBranch,
		PickupDate:      pickup,
		DropoffDate:     dropoff,
		Customer:        r.Customer.ToDomain(),
	}, nil
}

// ToDomain конвертирует данные клиента в снимок
func (c CustomerRequest) ToDomain() domain.CustomerSnapshot {
	return domain.CustomerSnapshot{
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Phone:         c.Phone,
		Email:         c.Email,
		DriverLicense: c.DriverLicense,
		NationalID:    c.NationalID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Ответ публичный, поэтому данные клиента маскируются.
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingCode: resp.Booking.Code,
		Days:        resp.Days,
		Booking:     *models.FromDomainBooking(bookings.MaskBooking(resp.Booking)),
	}
}
