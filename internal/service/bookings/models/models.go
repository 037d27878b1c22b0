package models

import (
	"errors"
	"time"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

var (
	// ErrInvalidFilter возвращается при некорректном фильтре списка
	ErrInvalidFilter = errors.New("invalid bookings filter")
)

// Request модели

// AdminBookingsRequest запрос списка бронирований в админке
type AdminBookingsRequest struct {
	Status        *string    `json:"status,omitempty"`
	PaymentStatus *string    `json:"paymentStatus,omitempty"`
	VehicleID     *int64     `json:"vehicleId,omitempty"`
	From          *time.Time `json:"from,omitempty"`  // бронирования, заканчивающиеся после from
	To            *time.Time `json:"to,omitempty"`    // бронирования, начинающиеся до to
	Phone         *string    `json:"phone,omitempty"` // точное совпадение нормализованного телефона
	UnreadOnly    bool       `json:"unread,omitempty"`
	Page          int        `json:"page,omitempty"`
	PageSize      int        `json:"pageSize,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр, подставляя значения пагинации по умолчанию
func (r *AdminBookingsRequest) ToDomainFilter() (domain.AdminBookingsFilter, error) {
	filter := domain.AdminBookingsFilter{
		VehicleID:  r.VehicleID,
		From:       r.From,
		To:         r.To,
		UnreadOnly: r.UnreadOnly,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PageSize <= 0:
		filter.PageSize = domain.DefaultAdminPageSize
	case filter.PageSize > domain.MaxAdminPageSize:
		filter.PageSize = domain.MaxAdminPageSize
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, errors.Join(ErrInvalidFilter, err)
		}
		filter.Status = &status
	}

	if r.PaymentStatus != nil {
		status, err := domain.ParsePaymentStatus(*r.PaymentStatus)
		if err != nil {
			return filter, errors.Join(ErrInvalidFilter, err)
		}
		filter.PaymentStatus = &status
	}

	if r.Phone != nil {
		phone := domain.NormalizePhone(*r.Phone)
		if phone == "" {
			return filter, errors.Join(ErrInvalidFilter, errors.New("phone has no digits"))
		}
		filter.Phone = &phone
	}

	if r.From != nil && r.To != nil && !r.To.After(*r.From) {
		return filter, errors.Join(ErrInvalidFilter, errors.New("to must be after from"))
	}

	return filter, nil
}

// Response модели

// CustomerResponse данные клиента (в публичных ответах замаскированы)
type CustomerResponse struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	DriverLicense string  `json:"driverLicense"`
	NationalID    *string `json:"nationalId,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                  int64            `json:"id"`
	BookingCode         string           `json:"bookingCode"`
	VehicleID           int64            `json:"vehicleId"`
	PickupBranchID      int64            `json:"pickupBranchId"`
	DropoffBranchID     int64            `json:"dropoffBranchId"`
	UserID              *int64           `json:"userId,omitempty"`
	PickupDate          time.Time        `json:"pickupDate"`
	DropoffDate         time.Time        `json:"dropoffDate"`
	OriginalDropoffDate *time.Time       `json:"originalDropoffDate,omitempty"`
	TotalPrice          string           `json:"totalPrice"` // "1800.00"
	PaymentStatus       string           `json:"paymentStatus"`
	PaymentRef          *string          `json:"paymentRef,omitempty"`
	PaidAt              *time.Time       `json:"paidAt,omitempty"`
	Status              string           `json:"status"`
	Source              string           `json:"source"`
	Customer            CustomerResponse `json:"customer"`

	// Только для админки
	AdminRead *bool `json:"adminRead,omitempty"`

	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AdminBookingListResponse страница списка бронирований в админке
type AdminBookingListResponse struct {
	Items    []BookingResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Маскирование выполняется до конвертации, здесь данные переносятся как есть.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                  b.ID,
		BookingCode:         b.Code,
		VehicleID:           b.VehicleID,
		PickupBranchID:      b.PickupBranchID,
		DropoffBranchID:     b.DropoffBranchID,
		UserID:              b.UserID,
		PickupDate:          b.PickupDate,
		DropoffDate:         b.DropoffDate,
		OriginalDropoffDate: b.OriginalDropoffDate,
		TotalPrice:          b.TotalPrice.StringFixed(domain.PriceDecimalPlaces),
		PaymentStatus:       string(b.PaymentStatus),
		PaymentRef:          b.PaymentRef,
		PaidAt:              b.PaidAt,
		Status:              string(b.Status),
		Source:              string(b.Source),
		Customer: CustomerResponse{
			FirstName:     b.Customer.FirstName,
			LastName:      b.Customer.LastName,
			Phone:         b.Customer.Phone,
			Email:         b.Customer.Email,
			DriverLicense: b.Customer.DriverLicense,
			NationalID:    b.Customer.NationalID,
		},
		StartedAt:   b.StartedAt,
		CompletedAt: b.CompletedAt,
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainAdminBooking конвертирует domain модель в DTO админки (с флагом прочтения)
func FromDomainAdminBooking(b *domain.Booking) *BookingResponse {
	resp := FromDomainBooking(b)
	if resp != nil {
		read := b.AdminRead
		resp.AdminRead = &read
	}
	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainAdminPage конвертирует страницу бронирований для админки
func FromDomainAdminPage(bookings []*domain.Booking, total int, filter domain.AdminBookingsFilter) *AdminBookingListResponse {
	resp := &AdminBookingListResponse{
		Items:    make([]BookingResponse, 0, len(bookings)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainAdminBooking(booking); bookingResp != nil {
			resp.Items = append(resp.Items, *bookingResp)
		}
	}

	return resp
}
