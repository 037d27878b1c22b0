package domain

// Default configuration values
const (
	DefaultMaxCalendarDays = 180
	DefaultAdminPageSize   = 20
	MaxAdminPageSize       = 100
	MaxBookingCodeAttempts = 3
	DaysPerWeek            = 7
	PriceDecimalPlaces     = 2
)

// Business validation constants
const (
	MinPhoneDigits         = 7
	MaxPhoneDigits         = 15
	MaxNameLength          = 100
	MaxEmailLength         = 254
	MaxDriverLicenseLength = 50
	MaxNationalIDLength    = 50
	MaxRentalDays          = 365
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не занимают автомобиль
// Используется для фильтрации при проверке пересечений и построении календаря
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// OccupyingStatuses статусы бронирований, которые занимают автомобиль
var OccupyingStatuses = []BookingStatus{
	StatusReserved,
	StatusActive,
	StatusCompleted,
}
