package extend_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrNotExtendable возвращается, когда бронирование в статусе, не допускающем продление
	ErrNotExtendable = errors.New("extend_booking: booking cannot be extended in its current status")

	// ErrInvalidDates возвращается, когда новая дата возврата не позже текущей
	ErrInvalidDates = errors.New("extend_booking: new dropoff must be after current dropoff")

	// ErrRentalTooLong возвращается, когда после продления срок аренды превышает допустимый
	ErrRentalTooLong = errors.New("extend_booking: rental period is too long")

	// ErrOverlap возвращается, когда продленный период пересекается с другим бронированием
	ErrOverlap = errors.New("extend_booking: vehicle is already booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_booking: internal error")
)
