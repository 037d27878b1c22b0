package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusReserved  BookingStatus = "RESERVED"
	StatusActive    BookingStatus = "ACTIVE"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// PaymentStatus represents the (simulated) payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

// BookingSource tells which flow created the booking
type BookingSource string

const (
	SourcePublic BookingSource = "PUBLIC"
	SourceAdmin  BookingSource = "ADMIN"
)

// Booking represents a vehicle reservation
type Booking struct {
	ID              int64
	Code            string
	VehicleID       int64
	PickupBranchID  int64
	DropoffBranchID int64
	UserID          *int64

	PickupDate          time.Time
	DropoffDate         time.Time
	OriginalDropoffDate *time.Time // set once, on the first extension

	TotalPrice    decimal.Decimal
	PaymentStatus PaymentStatus
	PaymentRef    *string
	PaidAt        *time.Time

	Status   BookingStatus
	Source   BookingSource
	Customer CustomerSnapshot

	AdminRead bool

	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the reserved half-open period
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.PickupDate, End: b.DropoffDate}
}

// IsActive returns true if the booking still occupies the vehicle
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanBeExtended returns true if the dropoff date may still be moved
func (b *Booking) CanBeExtended() bool {
	return b.Status == StatusReserved || b.Status == StatusActive
}

// CanBePaid returns true if the simulated payment may be applied
func (b *Booking) CanBePaid() bool {
	return b.Status == StatusReserved || b.Status == StatusActive
}

// IsPaid returns true if the booking has been paid
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// AdminBookingsFilter фильтр списка бронирований для админки
type AdminBookingsFilter struct {
	Status        *BookingStatus
	PaymentStatus *PaymentStatus
	VehicleID     *int64
	From          *time.Time // бронирования, заканчивающиеся после From
	To            *time.Time // бронирования, начинающиеся до To
	Phone         *string    // нормализованный телефон
	UnreadOnly    bool
	Page          int
	PageSize      int
}

// Offset смещение для текущей страницы
func (f AdminBookingsFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
